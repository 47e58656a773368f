package dwavemcp

import (
	"log/slog"
)

// Default identity advertised during MCP initialization.
const (
	DefaultServerName    = "mcp-dwave-quantum"
	DefaultServerVersion = "0.1.0"
)

// Options holds the configurable pieces of a Server.
type Options struct {
	// Logger receives per-invocation dispatch logging. Nil means silent.
	Logger *slog.Logger

	// Name and Version identify the server during MCP initialization.
	Name    string
	Version string

	// Simulator is the configuration the registry starts with.
	Simulator SimulatorConfig
}

// Option configures a Server using the functional options pattern.
type Option func(*Options)

// applyOptions applies functional options over the defaults.
func applyOptions(opts []Option) *Options {
	options := &Options{
		Name:      DefaultServerName,
		Version:   DefaultServerVersion,
		Simulator: DefaultSimulatorConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	if options.Logger == nil {
		options.Logger = NopLogger()
	}

	return options
}

// WithLogger sets the logger for dispatch logging.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithImplementation overrides the name and version advertised during MCP
// initialization.
func WithImplementation(name, version string) Option {
	return func(o *Options) {
		o.Name = name
		o.Version = version
	}
}

// WithSimulatorConfig sets the initial simulator configuration.
func WithSimulatorConfig(config SimulatorConfig) Option {
	return func(o *Options) {
		o.Simulator = config
	}
}

// WithUseSimulator toggles the simulator flag of the initial configuration,
// leaving the simulator type at its default.
func WithUseSimulator(use bool) Option {
	return func(o *Options) {
		o.Simulator.UseSimulator = use
	}
}
