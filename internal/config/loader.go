package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "ARBOR_"

// configNames are the file names searched for, in order.
var configNames = []string{"arbor.toml", "arbor.yaml", "arbor.yml"}

// flagKeys maps CLI flag names to config keys. Other flags are ignored.
var flagKeys = map[string]string{
	"log-level": "log.level",
	"log-file":  "log.file",
	"document":  "document",
}

// Options controls where Load looks for configuration.
type Options struct {
	// File is an explicit config file. It must exist.
	File string

	// SearchDirs are searched for arbor.toml/arbor.yaml when File is
	// empty. Nil means the working directory and then the user config
	// directory.
	SearchDirs []string

	// Flags are applied last. Only flags the user changed are used.
	Flags *pflag.FlagSet
}

// Result is a loaded configuration and where it came from.
type Result struct {
	Config *Config

	// File is the config file that was loaded, or "".
	File string
}

// Load reads configuration from defaults, file, environment and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func Load(opts Options) (*Result, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	path, err := findConfigFile(opts.File, opts.SearchDirs)
	if err != nil {
		return nil, err
	}
	fileK := koanf.New(".")
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := fileK.Load(file.Provider(path), parser); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		if err := k.Merge(fileK); err != nil {
			return nil, fmt.Errorf("failed to merge %s: %w", path, err)
		}
	}

	// 3. Environment variables: ARBOR_LOG_LEVEL -> log.level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if opts.Flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(opts.Flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(opts.Flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	// A relative document named by the config file is relative to that file.
	if doc := fileK.String("document"); doc != "" && doc == cfg.Document && !filepath.IsAbs(doc) {
		cfg.Document = filepath.Join(filepath.Dir(path), doc)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Result{Config: &cfg, File: path}, nil
}

// findConfigFile resolves the file to load.
// Priority: explicit path > first match in the search directories.
func findConfigFile(explicit string, dirs []string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", fmt.Errorf("%w: %s", ErrFileNotFound, explicit)
			}
			return "", err
		}
		return explicit, nil
	}
	if dirs == nil {
		dirs = defaultSearchDirs()
	}
	for _, dir := range dirs {
		for _, name := range configNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
	}
	return "", nil
}

func defaultSearchDirs() []string {
	dirs := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "arbor"))
	}
	return dirs
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOMLParser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}
