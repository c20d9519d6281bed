package config

import "time"

const (
	defaultLogFile           = "livraria.log"
	defaultLogLevel          = "info"
	defaultLogFileMaxSize    = 20
	defaultLogFileMaxBackups = 3
	defaultLogFileMaxAge     = 28
	defaultLogCompress       = false
	defaultPort              = 8080
	defaultHost              = "0.0.0.0"
	defaultCatalog           = "books.json"
	defaultSessionTTL        = 2 * time.Hour
	defaultRateLimit         = 20
	defaultRateBurst         = 40
	defaultPriceMin          = 0.0
	defaultPriceMax          = 300.0
	defaultListPageSize      = 6
	defaultGridPageSize      = 8
	defaultCompression       = true
	defaultVersion           = "0.1.0"
)

// Viper decodes with mapstructure, json tags are ignored here.
type Options struct {
	// LogFile is the file to write logs to
	LogFile string `mapstructure:"log_file"`
	// LogLevel is the level of logging to show
	LogLevel string `mapstructure:"log_level"`
	// LogFileMaxSize is the maximum size of the log file before it is rotated
	LogFileMaxSize int `mapstructure:"log_file_max_size"`
	// LogFileMaxBackups is the maximum number of log files to keep
	LogFileMaxBackups int `mapstructure:"log_file_max_backups"`
	// LogFileMaxAge is the maximum number of days to keep a log file
	LogFileMaxAge int `mapstructure:"log_file_max_age"`
	// LogCompress is whether or not to compress the log files
	LogCompress bool `mapstructure:"log_compress"`
	// port is the port to listen on
	Port int `mapstructure:"port"`
	// host is the host to listen on
	Host string `mapstructure:"host"`
	// Catalog is the path of the book catalog, a JSON file or a SQLite database.
	Catalog string `mapstructure:"catalog"`
	// SessionTTL is how long an idle session (and its cart) is kept.
	SessionTTL time.Duration `mapstructure:"session_ttl"`
	// RateLimit is the number of requests per second allowed per client, 0 disables it.
	RateLimit float64 `mapstructure:"rate_limit"`
	RateBurst int     `mapstructure:"rate_burst"`
	// PriceMin and PriceMax bound the price filter when the client sends none.
	PriceMin     float64 `mapstructure:"price_min"`
	PriceMax     float64 `mapstructure:"price_max"`
	ListPageSize int     `mapstructure:"list_page_size"`
	GridPageSize int     `mapstructure:"grid_page_size"`
	// Compression enables brotli responses for clients that accept them.
	Compression bool   `mapstructure:"compression"`
	Version     string `mapstructure:"version"`
}

func GetDefaultOptions() *Options {
	Opts = &Options{
		LogFile:           defaultLogFile,
		LogLevel:          defaultLogLevel,
		LogFileMaxSize:    defaultLogFileMaxSize,
		LogFileMaxBackups: defaultLogFileMaxBackups,
		LogFileMaxAge:     defaultLogFileMaxAge,
		LogCompress:       defaultLogCompress,
		Port:              defaultPort,
		Host:              defaultHost,
		Catalog:           defaultCatalog,
		SessionTTL:        defaultSessionTTL,
		RateLimit:         defaultRateLimit,
		RateBurst:         defaultRateBurst,
		PriceMin:          defaultPriceMin,
		PriceMax:          defaultPriceMax,
		ListPageSize:      defaultListPageSize,
		GridPageSize:      defaultGridPageSize,
		Compression:       defaultCompression,
		Version:           defaultVersion,
	}
	return Opts
}
