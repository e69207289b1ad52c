package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vango-dev/reflow/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "reflow.json"

	// DefaultIterations is the default number of timed runs per bench case.
	DefaultIterations = 50

	// DefaultSeed seeds the shuffle scenario.
	DefaultSeed = 1

	// DefaultLogLevel is the default log level of the CLI.
	DefaultLogLevel = "info"

	// DefaultNamespace is the default Prometheus namespace.
	DefaultNamespace = "reflow"
)

// DefaultSizes are the list sizes benched when none are configured.
var DefaultSizes = []int{100, 1000}

// Scenarios are the list workloads the bench command knows, in run order.
var Scenarios = []string{
	"append",
	"prepend",
	"reverse",
	"shuffle",
	"swap",
	"remove-every-other",
	"clear",
}

// Config represents the complete reflow.json configuration.
type Config struct {
	// Bench contains list reconcile benchmark settings.
	Bench BenchConfig `json:"bench,omitempty"`

	// Render contains renderer settings.
	Render RenderConfig `json:"render,omitempty"`

	// Metrics contains Prometheus settings.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// BenchConfig contains benchmark settings.
type BenchConfig struct {
	// Sizes are the list lengths to bench.
	Sizes []int `json:"sizes,omitempty"`

	// Iterations is the number of timed runs per size and scenario.
	Iterations int `json:"iterations,omitempty"`

	// Scenarios selects workloads by name. Empty runs all of them.
	Scenarios []string `json:"scenarios,omitempty"`

	// Seed seeds the shuffle scenario.
	Seed uint64 `json:"seed,omitempty"`
}

// RenderConfig contains renderer settings.
type RenderConfig struct {
	// Diagnostics enables goroutine affinity checks on values.
	Diagnostics bool `json:"diagnostics,omitempty"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `json:"logLevel,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from the specified directory.
// It looks for reflow.json in the directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("R100").
				WithDetail("No reflow.json found in " + filepath.Dir(path)).
				WithSuggestion("Create reflow.json or run without a config to use the defaults")
		}
		return nil, errors.New("R102").Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("R102").
			WithDetail("Failed to parse reflow.json: " + err.Error()).
			WithSuggestion("Check that reflow.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("R102").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("R102").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	// Bench
	if len(c.Bench.Sizes) == 0 {
		c.Bench.Sizes = slices.Clone(DefaultSizes)
	}
	if c.Bench.Iterations == 0 {
		c.Bench.Iterations = DefaultIterations
	}
	if len(c.Bench.Scenarios) == 0 {
		c.Bench.Scenarios = slices.Clone(Scenarios)
	}
	if c.Bench.Seed == 0 {
		c.Bench.Seed = DefaultSeed
	}

	// Render
	if c.Render.LogLevel == "" {
		c.Render.LogLevel = DefaultLogLevel
	}

	// Metrics
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	for _, size := range c.Bench.Sizes {
		if size <= 0 {
			return invalid("bench.sizes", size, "Sizes must be positive")
		}
	}
	if c.Bench.Iterations < 0 {
		return invalid("bench.iterations", c.Bench.Iterations, "Iterations must be positive")
	}
	for _, s := range c.Bench.Scenarios {
		if !slices.Contains(Scenarios, s) {
			return invalid("bench.scenarios", s, "Known scenarios: "+strings.Join(Scenarios, ", "))
		}
	}
	if _, err := ParseLevel(c.Render.LogLevel); err != nil {
		return err
	}
	if !validMetricName(c.Metrics.Namespace) {
		return invalid("metrics.namespace", c.Metrics.Namespace, "Use letters, digits and underscores, not starting with a digit")
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() slog.Level {
	l, err := ParseLevel(c.Render.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// ParseLevel parses a log level name.
func ParseLevel(name string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return 0, invalid("render.logLevel", name, "Use debug, info, warn or error")
	}
	return l, nil
}

func invalid(field string, value any, detail string) *errors.Error {
	return errors.New("R101").
		WithField("field", field).
		WithField("value", fmt.Sprint(value)).
		WithDetail(detail)
}

func validMetricName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing reflow.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("R100").
				WithDetail("No reflow.json found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working
// directory or its nearest parent holding reflow.json. Without one it
// returns the defaults.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return New(), nil
	}

	return Load(root)
}
