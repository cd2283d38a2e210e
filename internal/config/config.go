// Package config resolves the run configuration for fmlint from flags,
// the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Defaults used when neither a flag nor the environment sets a value.
const (
	DefaultRoot = "docs/blog/posts"
	DefaultExt  = ".md"
	DefaultJobs = 1
)

// Environment variable names.
const (
	EnvRoot = "FMLINT_ROOT"
	EnvExt  = "FMLINT_EXT"
	EnvJobs = "FMLINT_JOBS"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("invalid configuration")

// Config is the resolved configuration for one run.
type Config struct {
	Root string `validate:"required"`
	Ext  string `validate:"required,startswith=.,excludesall=/"`
	Jobs int    `validate:"min=1,max=64"`
}

// Validate checks c against its field constraints.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s fails %q (got %v)", strings.ToLower(fe.Field()), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Getenv looks up an environment variable.
type Getenv func(key string) string

// LoadDotenv loads variables from the given .env files into the process
// environment without overriding variables that are already set. Missing
// files are ignored.
func LoadDotenv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// FromEnv returns a Config populated from defaults overlaid with the
// environment. It does not validate.
func FromEnv(getenv Getenv) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	c := Config{Root: DefaultRoot, Ext: DefaultExt, Jobs: DefaultJobs}
	if v := getenv(EnvRoot); v != "" {
		c.Root = v
	}
	if v := getenv(EnvExt); v != "" {
		c.Ext = v
	}
	if v := getenv(EnvJobs); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, EnvJobs, v)
		}
		c.Jobs = n
	}
	return c, nil
}
