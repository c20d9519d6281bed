package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "LIVRARIA"

var Opts *Options

// GetConfig returns the default options with environment overrides applied.
func GetConfig() (*Options, error) {
	GetDefaultOptions()

	v := newViper()
	if err := v.Unmarshal(Opts); err != nil {
		return nil, errors.Wrap(err, "unable to decode environment")
	}

	catalog, err := checkCatalogPath(Opts.Catalog)
	if err != nil {
		return nil, err
	}
	Opts.Catalog = catalog

	return Opts, nil
}

// ParseFile loads a config file on top of the defaults.
func ParseFile(file string) (*Options, error) {
	if Opts == nil {
		GetDefaultOptions()
	}
	if _, err := os.Stat(file); err != nil {
		return nil, errors.Wrapf(err, "unable to access config file %s", file)
	}

	v := newViper()
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "unable to read config file %s", file)
	}
	if err := v.Unmarshal(Opts); err != nil {
		return nil, errors.Wrapf(err, "unable to decode config file %s", file)
	}

	catalog, err := checkCatalogPath(Opts.Catalog)
	if err != nil {
		return nil, err
	}
	Opts.Catalog = catalog

	return Opts, nil
}

// PageSize returns the page size used by a view mode name.
func PageSize(view string) int {
	if Opts == nil {
		GetDefaultOptions()
	}
	if view == "grid" {
		return Opts.GridPageSize
	}
	return Opts.ListPageSize
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only applies to keys viper already knows about.
	for _, key := range []string{
		"log_file", "log_level", "log_file_max_size", "log_file_max_backups",
		"log_file_max_age", "log_compress", "port", "host", "catalog",
		"session_ttl", "rate_limit", "rate_burst", "price_min", "price_max",
		"list_page_size", "grid_page_size", "compression", "version",
	} {
		_ = v.BindEnv(key)
	}
	return v
}

// checkCatalogPath makes a relative catalog path absolute. A missing
// catalog is not an error, the store serves an empty catalog instead.
func checkCatalogPath(catalog string) (string, error) {
	if catalog == "" {
		return "", nil
	}
	if filepath.IsAbs(catalog) {
		return catalog, nil
	}
	abs, err := filepath.Abs(catalog)
	if err != nil {
		return "", errors.Wrapf(err, "unable to resolve catalog path %s", catalog)
	}
	return abs, nil
}
