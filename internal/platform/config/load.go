package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load builds the boardd configuration for profile. Later layers win:
//
//  0. built-in defaults
//  1. {configDir}/base.yaml
//  2. {configDir}/{profile}.yaml
//  3. APP_ environment variables
//
// Env names are matched against the known keys so underscores inside a
// field survive (APP_SESSION_JWT_SECRET is session.jwt_secret, not
// session.jwt.secret). List keys take a comma-separated value:
//
//	APP_WORKFLOW_STAGES=backlog,doing,done
//	APP_SESSION_REDIS_ADDR=redis:6379
//	APP_STORE_DRIVER=sqlite
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	// Seeding defaults also makes every key known to the env lookup. A
	// key whose default is a list takes a comma-separated env value.
	lists := make(map[string]bool)
	for key, val := range defaults() {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
		if _, ok := val.([]string); ok {
			lists[key] = true
		}
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envTransform(k.Keys(), lists),
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// envTransform maps APP_FOO_BAR to the matching koanf key and splits values
// of the keys in lists on commas. Unknown names fall back to replacing every
// underscore with a dot.
func envTransform(keys []string, lists map[string]bool) func(key, value string) (string, any) {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(key, value string) (string, any) {
		name := strings.ToLower(strings.TrimPrefix(key, envPrefix))
		koanfKey, ok := lookup[name]
		if !ok {
			return strings.ReplaceAll(name, "_", "."), value
		}
		if lists[koanfKey] {
			return koanfKey, splitList(value)
		}
		return koanfKey, value
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// validateProfile rejects empty profile names and anything that could
// escape the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
