// Package config resolves run settings from flags, environment variables
// and an optional .env file. Flags win over the environment; the
// environment wins over built-in defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/orayew2002/fkemployee/domain"
)

// Built-in defaults.
const (
	DefaultCount     = 100
	DefaultOutput    = "employee_data.csv"
	DefaultBucket    = "bkt-fkemployee-data"
	DefaultObjectKey = "employee_data.csv"
	DefaultSource    = domain.SourceJaswdr
)

// Config holds all settings for one run.
type Config struct {
	// Count is the number of records to generate.
	Count int
	// Output is the local CSV path.
	Output string
	// XLSXPath, when set, also writes the records to an Excel workbook.
	XLSXPath string
	// Source names the fake-data source (jaswdr, bxcodec).
	Source string
	// Seed drives the random generators. Zero means time-based.
	Seed           int64
	PasswordLength int

	Bucket        string
	ObjectKey     string
	SkipUpload    bool
	UploadTimeout time.Duration
	S3            S3Config

	Logging LoggingConfig
}

// S3Config holds object-store connection settings.
type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	PathStyle bool
}

type LoggingConfig struct {
	Level  string
	Format string
}

// LoadDotEnv loads variables from path into the environment without
// overriding ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ErrFlags marks errors reported by the flag set. The flag package has
// already printed them together with the usage text.
var ErrFlags = errors.New("invalid flags")

// Load parses args (without the program name) on top of environment
// defaults and validates the result.
func Load(args []string) (*Config, error) {
	env := &envReader{}
	cfg := &Config{
		Count:          env.integer("FKEMP_COUNT", DefaultCount),
		Output:         env.str("FKEMP_OUTPUT", DefaultOutput),
		XLSXPath:       env.str("FKEMP_XLSX_PATH", ""),
		Source:         env.str("FKEMP_SOURCE", DefaultSource),
		Seed:           env.integer64("FKEMP_SEED", 0),
		PasswordLength: env.integer("FKEMP_PASSWORD_LENGTH", domain.DefaultPasswordLength),
		Bucket:         env.str("FKEMP_BUCKET", DefaultBucket),
		ObjectKey:      env.str("FKEMP_OBJECT_KEY", DefaultObjectKey),
		SkipUpload:     env.boolean("FKEMP_SKIP_UPLOAD", false),
		UploadTimeout:  env.duration("FKEMP_UPLOAD_TIMEOUT", 0),
		S3: S3Config{
			Endpoint:  env.str("FKEMP_S3_ENDPOINT", ""),
			Region:    env.str("FKEMP_S3_REGION", ""),
			AccessKey: env.str("FKEMP_S3_ACCESS_KEY", ""),
			SecretKey: env.str("FKEMP_S3_SECRET_KEY", ""),
			PathStyle: env.boolean("FKEMP_S3_PATH_STYLE", false),
		},
		Logging: LoggingConfig{
			Level:  env.str("LOG_LEVEL", "info"),
			Format: env.str("LOG_FORMAT", "text"),
		},
	}
	if env.err != nil {
		return nil, fmt.Errorf("config env: %w", env.err)
	}

	flags := flag.NewFlagSet("fkemployee", flag.ContinueOnError)
	flags.IntVar(&cfg.Count, "count", cfg.Count, "number of employee records to generate")
	flags.StringVar(&cfg.Output, "output", cfg.Output, "path to the output CSV file")
	flags.StringVar(&cfg.XLSXPath, "xlsx", cfg.XLSXPath, "optional path to an additional Excel export")
	flags.StringVar(&cfg.Source, "source", cfg.Source, "fake data source: jaswdr or bxcodec")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = time based)")
	flags.IntVar(&cfg.PasswordLength, "password-length", cfg.PasswordLength, "length of generated passwords")
	flags.StringVar(&cfg.Bucket, "bucket", cfg.Bucket, "destination bucket")
	flags.StringVar(&cfg.ObjectKey, "key", cfg.ObjectKey, "destination object key")
	flags.BoolVar(&cfg.SkipUpload, "skip-upload", cfg.SkipUpload, "write the file but do not upload it")
	flags.DurationVar(&cfg.UploadTimeout, "upload-timeout", cfg.UploadTimeout, "upload deadline (0 = none)")
	flags.StringVar(&cfg.S3.Endpoint, "endpoint", cfg.S3.Endpoint, "S3-compatible endpoint URL, e.g. https://storage.googleapis.com")
	flags.StringVar(&cfg.S3.Region, "region", cfg.S3.Region, "object store region")
	flags.BoolVar(&cfg.S3.PathStyle, "path-style", cfg.S3.PathStyle, "use path-style bucket addressing")
	flags.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "debug, info, warn or error")
	flags.StringVar(&cfg.Logging.Format, "log-format", cfg.Logging.Format, "text or json")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrFlags, err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Count <= 0:
		return fmt.Errorf("count must be positive, got %d", c.Count)
	case c.PasswordLength <= 0:
		return fmt.Errorf("password length must be positive, got %d", c.PasswordLength)
	case strings.TrimSpace(c.Output) == "":
		return errors.New("output path is required")
	case c.Source != domain.SourceJaswdr && c.Source != domain.SourceBxcodec:
		return fmt.Errorf("unknown source %q", c.Source)
	case c.UploadTimeout < 0:
		return fmt.Errorf("upload timeout must not be negative, got %s", c.UploadTimeout)
	}

	if !c.SkipUpload {
		if c.Bucket == "" {
			return errors.New("bucket is required")
		}
		if c.ObjectKey == "" {
			return errors.New("object key is required")
		}
		if (c.S3.AccessKey == "") != (c.S3.SecretKey == "") {
			return errors.New("access key and secret key must be set together")
		}
	}

	return nil
}

// envReader reads typed environment values, keeping the first parse error.
type envReader struct {
	err error
}

func (r *envReader) str(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func (r *envReader) integer(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(key, err)
		return def
	}
	return n
}

func (r *envReader) integer64(key string, def int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		r.fail(key, err)
		return def
	}
	return n
}

func (r *envReader) boolean(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.fail(key, err)
		return def
	}
	return b
}

func (r *envReader) duration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.fail(key, err)
		return def
	}
	return d
}

func (r *envReader) fail(key string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("%s: %w", key, err)
	}
}
