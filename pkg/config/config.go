package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"reflect"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrNotPointer is returned when Load is given something other than a struct pointer.
var ErrNotPointer = errors.New("config: target must be a non-nil pointer")

type options struct {
	file    string
	dotenv  []string
	skipEnv bool
}

// Option configures Load.
type Option func(*options)

// WithFile reads a YAML file before the environment is applied.
// An empty path is ignored.
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
	}
}

// WithDotEnv sets the .env files to load. Defaults to ".env".
// Missing files are ignored; variables already set in the process win.
func WithDotEnv(files ...string) Option {
	return func(o *options) {
		o.dotenv = files
	}
}

// WithoutEnv skips .env files and environment variables, leaving only the
// struct defaults and the YAML file.
func WithoutEnv() Option {
	return func(o *options) {
		o.skipEnv = true
	}
}

// Load fills cfg in three layers: the values already in cfg act as defaults,
// then the YAML file (if any), then environment variables named by `env` tags.
// Environment variables that are not set leave the field untouched.
//
// Example:
//
//	cfg := Config{Address: ":8080"}
//	if err := config.Load(&cfg, config.WithFile("cookiepack.yaml")); err != nil {
//		return err
//	}
func Load(cfg any, opts ...Option) error {
	if v := reflect.ValueOf(cfg); v.Kind() != reflect.Pointer || v.IsNil() {
		return ErrNotPointer
	}

	o := &options{dotenv: []string{".env"}}
	for _, opt := range opts {
		opt(o)
	}

	if o.file != "" {
		if err := loadFile(o.file, cfg); err != nil {
			return err
		}
	}

	if o.skipEnv {
		return nil
	}

	for _, file := range o.dotenv {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", file, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse environment: %w", err)
	}
	return nil
}

// MustLoad is like Load but panics on error. Useful at startup.
func MustLoad(cfg any, opts ...Option) {
	if err := Load(cfg, opts...); err != nil {
		panic(err)
	}
}

func loadFile(path string, cfg any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	return nil
}
