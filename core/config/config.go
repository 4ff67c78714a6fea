package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	"github.com/lwaldron/repath/core/logger"
)

// StringList accepts either a single yaml scalar or a sequence, matching the
// "string or array of strings" shape of the project_root setting.
type StringList []string

func (sl *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		*sl = StringList{single}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := value.Decode(&many); err != nil {
			return err
		}
		*sl = StringList(many)
		return nil
	default:
		return fmt.Errorf("project_root must be a string or a list of strings")
	}
}

type Config struct {
	ProjectRoot         StringList `yaml:"project_root"`
	OnlyPathAliases     bool       `yaml:"only_path_aliases"`
	OnlyAbsoluteImports bool       `yaml:"only_absolute_imports"`
	Exclude             []string   `yaml:"exclude"`
}

func Default() *Config {
	return &Config{
		Exclude: []string{"node_modules/**", ".git/**"},
	}
}

func Load() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working dir: %w", err)
	}
	return LoadFrom(filepath.Join(wd, "repath.yaml"))
}

func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		logger.Debug("No config file at %s, using default config", path)
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	logger.Debug("Config file found: %s", path)
	logger.Debug("Config: %+v", cfg)

	return cfg, nil
}

// CompileExcludes compiles the exclude patterns for path matching in watch
// mode. Patterns match slash-separated paths relative to the watched root.
func (c *Config) CompileExcludes() ([]glob.Glob, error) {
	compiled := make([]glob.Glob, 0, len(c.Exclude))
	for _, pattern := range c.Exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		compiled = append(compiled, g)
	}
	return compiled, nil
}
