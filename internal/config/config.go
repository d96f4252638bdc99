// Package config resolves the settings of a gosummary run from built-in
// defaults, GOSUMMARY_* environment variables (optionally loaded from a .env
// file), a YAML project file and command-line flags, in increasing order of
// precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/itsmostafa/gosummary/internal/summary"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFile is read from the working directory when no --config is given.
	DefaultFile = ".gosummary.yaml"

	// EnvFile is loaded into the environment before resolving.
	EnvFile = ".env"

	envTrimStr       = "GOSUMMARY_TRIM_STR"
	envTitleFromName = "GOSUMMARY_TITLE_FROM_NAME"
	envCreateReadmes = "GOSUMMARY_CREATE_READMES"
	envVerbose       = "GOSUMMARY_VERBOSE"
)

// Values is a partial configuration. Nil fields are left unset.
type Values struct {
	BasePath      *string `yaml:"base_path"`
	Verbose       *bool   `yaml:"verbose"`
	TrimStr       *string `yaml:"trim_str"`
	TitleFromName *bool   `yaml:"title_from_name"`
	CreateReadmes *bool   `yaml:"create_readmes"`
}

// Apply copies the set fields onto cfg.
func (v Values) Apply(cfg *summary.Config) {
	if v.BasePath != nil {
		cfg.BasePath = *v.BasePath
	}
	if v.Verbose != nil {
		cfg.Verbose = *v.Verbose
	}
	if v.TrimStr != nil {
		cfg.TrimStr = *v.TrimStr
	}
	if v.TitleFromName != nil {
		cfg.TitleFromName = *v.TitleFromName
	}
	if v.CreateReadmes != nil {
		cfg.CreateReadmes = *v.CreateReadmes
	}
}

// LoadEnvFile loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// FromEnv reads the GOSUMMARY_* variables through lookup.
func FromEnv(lookup func(string) (string, bool)) (Values, error) {
	var v Values
	if s, ok := lookup(envTrimStr); ok {
		v.TrimStr = &s
	}

	bools := []struct {
		key string
		dst **bool
	}{
		{envTitleFromName, &v.TitleFromName},
		{envCreateReadmes, &v.CreateReadmes},
		{envVerbose, &v.Verbose},
	}
	for _, b := range bools {
		s, ok := lookup(b.key)
		if !ok || s == "" {
			continue
		}
		parsed, err := strconv.ParseBool(s)
		if err != nil {
			return Values{}, fmt.Errorf("config: %s: %w", b.key, err)
		}
		*b.dst = &parsed
	}
	return v, nil
}

// LoadFile decodes the YAML project file at path. When required is false a
// missing file yields empty Values.
func LoadFile(path string, required bool) (Values, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return Values{}, nil
		}
		return Values{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	v, err := Parse(data)
	if err != nil {
		return Values{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return v, nil
}

// Parse decodes YAML project settings, rejecting unknown keys.
func Parse(data []byte) (Values, error) {
	var v Values
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&v); err != nil && !errors.Is(err, io.EOF) {
		return Values{}, err
	}
	return v, nil
}

// Sources lists the inputs of Resolve.
type Sources struct {
	// ConfigFile is the project file; DefaultFile when empty.
	ConfigFile string
	// ConfigRequired makes a missing ConfigFile an error.
	ConfigRequired bool
	// Lookup reads environment variables; os.LookupEnv when nil.
	Lookup func(string) (string, bool)
	// Flags holds the values given explicitly on the command line.
	Flags Values
}

// Resolve builds the run configuration from defaults, environment, project
// file and flags.
func Resolve(src Sources) (summary.Config, error) {
	cfg := summary.DefaultConfig()

	lookup := src.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	env, err := FromEnv(lookup)
	if err != nil {
		return summary.Config{}, err
	}
	env.Apply(&cfg)

	file := src.ConfigFile
	if file == "" {
		file = DefaultFile
	}
	fileValues, err := LoadFile(file, src.ConfigRequired)
	if err != nil {
		return summary.Config{}, err
	}
	fileValues.Apply(&cfg)

	src.Flags.Apply(&cfg)
	return cfg, nil
}
