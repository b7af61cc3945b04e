package puzzle

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config carries the run settings threaded from the command line into the
// loader and runner.
type Config struct {
	Example  bool
	Timing   bool
	InputDir string
	Workers  int
	Verbose  bool
	Output   io.Writer
	Logger   *logrus.Logger
}

// Option mutates Config.
type Option func(*Config)

// WithExample reads day<N>.test.txt instead of day<N>.txt.
func WithExample(on bool) Option { return func(c *Config) { c.Example = on } }

// WithTiming prints the elapsed time after each day.
func WithTiming(on bool) Option { return func(c *Config) { c.Timing = on } }

// WithInputDir sets the directory holding input files.
func WithInputDir(dir string) Option { return func(c *Config) { c.InputDir = dir } }

// WithWorkers bounds the goroutines a solver may use; n <= 0 keeps the default.
func WithWorkers(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.Workers = n
		}
	}
}

// WithVerbose enables debug logging.
func WithVerbose(on bool) Option { return func(c *Config) { c.Verbose = on } }

// WithOutput redirects answers; logs are unaffected.
func WithOutput(w io.Writer) Option { return func(c *Config) { c.Output = w } }

// WithLogger replaces the default stderr logger.
func WithLogger(l *logrus.Logger) Option { return func(c *Config) { c.Logger = l } }

// DefaultConfig reads real inputs from ./resources with one worker per CPU.
func DefaultConfig() Config {
	return Config{
		InputDir: "resources",
		Workers:  runtime.GOMAXPROCS(0),
		Output:   os.Stdout,
	}
}

// NewConfig applies opts over DefaultConfig.
func NewConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if c.Logger == nil {
		c.Logger = logrus.New()
		c.Logger.SetOutput(os.Stderr)
	}
	if c.Verbose {
		c.Logger.SetLevel(logrus.DebugLevel)
	}

	return c
}

// fileConfig is the YAML shape of a config file. Pointers distinguish an
// absent key from a zero value.
type fileConfig struct {
	Example  *bool   `yaml:"example"`
	Timing   *bool   `yaml:"timing"`
	InputDir *string `yaml:"input_dir"`
	Workers  *int    `yaml:"workers"`
	Verbose  *bool   `yaml:"verbose"`
}

// ParseConfig decodes YAML into options for the keys present. Unknown keys
// are rejected.
func ParseConfig(r io.Reader) ([]Option, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("puzzle: parse config: %w", err)
	}

	var opts []Option
	if fc.Example != nil {
		opts = append(opts, WithExample(*fc.Example))
	}
	if fc.Timing != nil {
		opts = append(opts, WithTiming(*fc.Timing))
	}
	if fc.InputDir != nil {
		opts = append(opts, WithInputDir(*fc.InputDir))
	}
	if fc.Workers != nil {
		opts = append(opts, WithWorkers(*fc.Workers))
	}
	if fc.Verbose != nil {
		opts = append(opts, WithVerbose(*fc.Verbose))
	}

	return opts, nil
}

// LoadConfigFile reads a YAML config file into options. Apply them before
// command-line options so flags win.
func LoadConfigFile(path string) ([]Option, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle: open config: %w", err)
	}
	defer f.Close()

	return ParseConfig(f)
}
