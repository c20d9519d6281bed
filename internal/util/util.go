package util

import (
	"github.com/google/uuid"
)

func GenUUID() string {
	return uuid.New().String()
}

// IsUUID reports whether s is a well formed UUID.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
