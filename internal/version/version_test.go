package version

import (
	"testing"

	"github.com/Xunop/e-livraria/internal/config"
)

func TestGetCurrentVersion(t *testing.T) {
	config.GetDefaultOptions()
	config.Opts.Version = "1.4.2"
	if v := GetCurrentVersion(); v != "1.4.2" {
		t.Errorf("Expected 1.4.2, got %s", v)
	}

	config.Opts.Version = "not-a-version"
	if v := GetCurrentVersion(); v != Version {
		t.Errorf("Expected the build version %s, got %s", Version, v)
	}
}

func TestGetMinorVersion(t *testing.T) {
	for input, want := range map[string]string{
		"0.1.0":  "0.1",
		"v2.3.9": "2.3",
		"bogus":  "",
	} {
		if got := GetMinorVersion(input); got != want {
			t.Errorf("GetMinorVersion(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestIsVersionGreaterThan(t *testing.T) {
	if !IsVersionGreaterThan("0.10.0", "0.9.1") {
		t.Error("0.10.0 should be greater than 0.9.1")
	}
	if IsVersionGreaterThan("0.1.0", "0.1.0") {
		t.Error("Equal versions are not greater")
	}
}
