package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Keys whose environment value is a comma-separated list, e.g.
// APP_MONGO_SEEDS=mongo1:27017,mongo2:27017.
var listKeys = map[string]bool{
	"mongo.seeds": true,
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
	envFiles  []string
}

// WithConfigDir points Load at a directory other than ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) { o.configDir = dir }
}

// WithEnvFiles names dotenv files to merge into the process environment
// before APP_ variables are read. Missing files are ignored and variables
// that are already set win over the file.
func WithEnvFiles(paths ...string) Option {
	return func(o *loadOptions) { o.envFiles = paths }
}

// Load builds the Config for profile. Later layers override earlier ones:
//
//  1. defaults()
//  2. {configDir}/base.yaml
//  3. {configDir}/{profile}.yaml
//  4. APP_* environment variables (after any dotenv files)
//
// An environment variable maps to the known key whose dotted path matches it
// with dots read as underscores, so field names containing underscores
// survive:
//
//	APP_MONGO_REPLICA_SET                -> mongo.replica_set
//	APP_MONGO_CONNECT_RETRY_MAX_ATTEMPTS -> mongo.connect_retry.max_attempts
//	APP_HEALTH_TIMEOUT                   -> health.timeout
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	if err := loadEnvFiles(o.envFiles); err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	// Keys are complete once the files are merged, so every env var can be
	// matched against them.
	mapper := newEnvMapper(k.Keys())
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: mapper.transform,
	}), nil); err != nil {
		return nil, fmt.Errorf("loading %s* environment: %w", envPrefix, err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", profile, err)
	}
	return &cfg, nil
}

// envMapper resolves APP_ variable names to koanf keys.
type envMapper struct {
	known map[string]string // "mongo_replica_set" -> "mongo.replica_set"
}

func newEnvMapper(keys []string) envMapper {
	known := make(map[string]string, len(keys))
	for _, key := range keys {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}
	return envMapper{known: known}
}

func (m envMapper) transform(name, value string) (string, any) {
	flat := strings.ToLower(strings.TrimPrefix(name, envPrefix))

	key, ok := m.known[flat]
	if !ok {
		// Unknown names nest one level per underscore.
		return strings.ReplaceAll(flat, "_", "."), value
	}
	if listKeys[key] {
		return key, splitList(value)
	}
	return key, value
}

func loadEnvFiles(paths []string) error {
	for _, p := range paths {
		err := godotenv.Load(p)
		switch {
		case err == nil:
		case errors.Is(err, fs.ErrNotExist):
		default:
			return fmt.Errorf("loading env file %s: %w", p, err)
		}
	}
	return nil
}

// validateProfile rejects names that could escape the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`) || strings.Contains(profile, ".."):
		return fmt.Errorf("profile %q must be a bare name", profile)
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for p := range strings.SplitSeq(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
