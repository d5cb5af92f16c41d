// Package cli parses the spinchain command line and optional YAML
// configuration into a validated Options value. Flags override file
// values; defaults reproduce the canonical demonstration run
// (100 steps, 25 spins, dt=0.05, img.png).
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spinchain/trotter"
)

// Sentinel errors for cli parsing.
var (
	// ErrBadSteps indicates a non-positive -steps value.
	ErrBadSteps = errors.New("cli: -steps must be positive")
	// ErrBadSpins indicates a -spins value below two.
	ErrBadSpins = errors.New("cli: -spins must be at least 2")
	// ErrBadDt indicates a non-positive -dt value.
	ErrBadDt = errors.New("cli: -dt must be positive")
	// ErrBadPlotPath indicates an empty -plot value.
	ErrBadPlotPath = errors.New("cli: -plot must be non-empty")
)

// DefaultPlotPath is where the timing figure lands unless overridden.
const DefaultPlotPath = "img.png"

// Options holds every CLI parameter after flag and file merging.
type Options struct {
	Steps int     `yaml:"steps"`
	Spins int     `yaml:"spins"`
	Dt    float64 `yaml:"dt"`

	Jx    float64 `yaml:"jx"`
	Jy    float64 `yaml:"jy"`
	Jz    float64 `yaml:"jz"`
	Omega float64 `yaml:"omega"`

	PlotPath string `yaml:"plot"`
	Quiet    bool   `yaml:"quiet"`
	Verbose  bool   `yaml:"verbose"`
}

// defaults returns the demonstration constants.
func defaults() Options {
	return Options{
		Steps:    trotter.DefaultSteps,
		Spins:    trotter.DefaultSpins,
		Dt:       trotter.DefaultDt,
		Jx:       1,
		Jy:       1,
		Jz:       1,
		Omega:    0, // 0 means "not set"; app maps it to heisenberg.DefaultOmega
		PlotPath: DefaultPlotPath,
	}
}

// NewFlagSet returns a configured FlagSet with custom usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: Trotterized time evolution of a driven Heisenberg spin chain

Simulates first-order Trotter steps on a statevector, records the
average magnetization per step, and plots per-step wall time.

Usage of %s:
`, name, name)
		fs.PrintDefaults()
	}

	return fs
}

// ParseArgs registers and parses all flags over fs, merges an optional
// -config YAML file (flags win), validates, and returns Options.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	def := defaults()
	var (
		opt        = def
		configPath string
	)

	fs.IntVar(&opt.Steps, "steps", def.Steps, "number of Trotter steps")
	fs.IntVar(&opt.Spins, "spins", def.Spins, "number of spins in the chain")
	fs.Float64Var(&opt.Dt, "dt", def.Dt, "time increment per step")
	fs.Float64Var(&opt.Jx, "jx", def.Jx, "X-X bond coupling")
	fs.Float64Var(&opt.Jy, "jy", def.Jy, "X-Y bond coupling")
	fs.Float64Var(&opt.Jz, "jz", def.Jz, "X-Z bond coupling")
	fs.Float64Var(&opt.Omega, "omega", def.Omega, "drive angular frequency (0 = 2π)")
	fs.StringVar(&opt.PlotPath, "plot", def.PlotPath, "output path for the timing plot")
	fs.StringVar(&configPath, "config", "", "YAML configuration file (flags override)")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress logging")
	fs.BoolVar(&opt.Verbose, "v", false, "per-step debug logging")

	if err := fs.Parse(argv); err != nil {
		return Options{}, err
	}

	if configPath != "" {
		fileOpt, err := loadConfig(configPath)
		if err != nil {
			return Options{}, err
		}
		opt = merge(fileOpt, opt, explicitFlags(fs))
	}

	if err := opt.validate(); err != nil {
		return Options{}, err
	}

	return opt, nil
}

// validate enforces parameter ranges shared by flag and file input.
func (o Options) validate() error {
	if o.Steps < 1 {
		return ErrBadSteps
	}
	if o.Spins < 2 {
		return ErrBadSpins
	}
	if o.Dt <= 0 {
		return ErrBadDt
	}
	if o.PlotPath == "" {
		return ErrBadPlotPath
	}

	return nil
}

// loadConfig reads a YAML file into an Options overlay. Fields absent
// from the file keep their zero values; merge resolves precedence.
func loadConfig(path string) (Options, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("cli: reading config: %w", err)
	}
	opt := defaults()
	if err = yaml.Unmarshal(raw, &opt); err != nil {
		return Options{}, fmt.Errorf("cli: parsing config: %w", err)
	}

	return opt, nil
}

// explicitFlags reports which flags the user actually set.
func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	return set
}

// merge layers configuration sources: the YAML file (itself loaded
// over defaults), then any flag the user explicitly set.
func merge(file, flags Options, explicit map[string]bool) Options {
	out := file
	if explicit["steps"] {
		out.Steps = flags.Steps
	}
	if explicit["spins"] {
		out.Spins = flags.Spins
	}
	if explicit["dt"] {
		out.Dt = flags.Dt
	}
	if explicit["jx"] {
		out.Jx = flags.Jx
	}
	if explicit["jy"] {
		out.Jy = flags.Jy
	}
	if explicit["jz"] {
		out.Jz = flags.Jz
	}
	if explicit["omega"] {
		out.Omega = flags.Omega
	}
	if explicit["plot"] {
		out.PlotPath = flags.PlotPath
	}
	if explicit["quiet"] {
		out.Quiet = flags.Quiet
	}
	if explicit["v"] {
		out.Verbose = flags.Verbose
	}

	return out
}
