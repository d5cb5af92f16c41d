// Package heisenberg: chain parameters, options, and sentinel errors.
package heisenberg

import (
	"errors"
	"math"
)

// Sentinel errors for heisenberg operations.
var (
	// ErrTooFewSpins indicates a chain with fewer than two spins.
	ErrTooFewSpins = errors.New("heisenberg: chain requires at least two spins")
)

// DEFAULTS - single source of truth for the model parameters. These
// mirror the demonstration constants of the evolution driver.
const (
	// DefaultJx is the X-X bond coupling.
	DefaultJx = 1.0
	// DefaultJy is the X-Y bond coupling.
	DefaultJy = 1.0
	// DefaultJz is the X-Z bond coupling.
	DefaultJz = 1.0
)

// DefaultOmega is the transverse-drive angular frequency, one full
// period per unit of simulation time.
var DefaultOmega = 2 * math.Pi

// Chain holds the fixed parameters of a driven spin chain. It is
// immutable once built; construct via NewChain.
type Chain struct {
	spins int
	jx    float64
	jy    float64
	jz    float64
	omega float64
}

// Option customizes a Chain during construction.
type Option func(*Chain)

// WithCouplings sets the three bond couplings Jx, Jy, Jz.
func WithCouplings(jx, jy, jz float64) Option {
	return func(c *Chain) {
		c.jx, c.jy, c.jz = jx, jy, jz
	}
}

// WithOmega sets the transverse-drive angular frequency.
func WithOmega(omega float64) Option {
	return func(c *Chain) {
		c.omega = omega
	}
}

// NewChain builds a chain of the given spin count with the supplied
// options applied over the documented defaults.
// Returns ErrTooFewSpins for spins < 2.
func NewChain(spins int, opts ...Option) (*Chain, error) {
	if spins < 2 {
		return nil, ErrTooFewSpins
	}
	c := &Chain{
		spins: spins,
		jx:    DefaultJx,
		jy:    DefaultJy,
		jz:    DefaultJz,
		omega: DefaultOmega,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Spins returns the chain length.
func (c *Chain) Spins() int { return c.spins }

// Couplings returns the bond couplings (Jx, Jy, Jz).
func (c *Chain) Couplings() (jx, jy, jz float64) { return c.jx, c.jy, c.jz }

// Omega returns the drive angular frequency.
func (c *Chain) Omega() float64 { return c.omega }
