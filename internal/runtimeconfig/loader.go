package runtimeconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load builds a Config from DefaultConfig, an optional YAML file and the
// process environment, in that order of precedence (environment wins).
//
// Before reading the environment, .env files are loaded: the file named by
// ENV_FILE when set, otherwise .env.local then .env. Missing files are
// ignored and variables already set in the process are never replaced.
// An empty path skips the YAML step.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if err := loadEnvFiles(); err != nil {
		return cfg, err
	}

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("portfolio config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("portfolio config: parse %s: %w", path, err)
		}
	}

	applyEnv(reflect.ValueOf(&cfg).Elem())
	return cfg, nil
}

func loadEnvFiles() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		return loadEnvFile(envFile)
	}
	for _, name := range []string{".env.local", ".env"} {
		if err := loadEnvFile(name); err != nil {
			return err
		}
	}
	return nil
}

func loadEnvFile(name string) error {
	if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("portfolio config: load %s: %w", name, err)
	}
	return nil
}

var durationType = reflect.TypeOf(time.Duration(0))

// applyEnv walks the struct and overrides every field carrying an env tag
// whose variable is set and parses cleanly.
func applyEnv(v reflect.Value) {
	if v.Kind() != reflect.Struct {
		return
	}
	t := v.Type()
	for i := range v.NumField() {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}
		if field.Kind() == reflect.Struct {
			applyEnv(field)
			continue
		}
		name := t.Field(i).Tag.Get("env")
		if name == "" {
			continue
		}
		if raw, ok := os.LookupEnv(name); ok && raw != "" {
			setFromString(field, raw)
		}
	}
}

func setFromString(field reflect.Value, raw string) {
	switch {
	case field.Type() == durationType:
		if d, err := time.ParseDuration(raw); err == nil {
			field.SetInt(int64(d))
		}
	case field.Kind() == reflect.String:
		field.SetString(raw)
	case field.Kind() == reflect.Bool:
		if b, err := strconv.ParseBool(raw); err == nil {
			field.SetBool(b)
		}
	case field.Kind() >= reflect.Int && field.Kind() <= reflect.Int64:
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			field.SetInt(n)
		}
	}
}
