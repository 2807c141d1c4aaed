// File: options.go
// Role: functional options and the resolved builder configuration.
// Option constructors panic on nil arguments; runtime paths return errors.

package builder

import (
	"fmt"
	"math/rand"
)

const (
	// DefaultGas is the gas of a plain value transfer.
	DefaultGas uint64 = 21000
	// DefaultGasPrice is used when no gas price is configured.
	DefaultGasPrice uint64 = 1
)

// Option customizes a BuildGraph call.
type Option func(*config)

// config is the resolved option set shared by every Constructor of one build.
type config struct {
	idFn     func(int) string
	rng      *rand.Rand
	gasFn    func(*rand.Rand) uint64
	valueFn  func(*rand.Rand) float64
	gasPrice uint64

	// next is the running vertex counter fed to idFn.
	next int
}

func newConfig(opts ...Option) *config {
	c := &config{
		idFn:     HexAddress,
		gasFn:    func(*rand.Rand) uint64 { return DefaultGas },
		valueFn:  func(*rand.Rand) float64 { return 0 },
		gasPrice: DefaultGasPrice,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// HexAddress renders i as a zero-padded 20-byte hex address.
func HexAddress(i int) string { return fmt.Sprintf("0x%040x", i) }

// WithIDScheme sets the vertex address generator.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) { c.idFn = fn }
}

// WithRand attaches an existing random source.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed attaches a new random source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithGasFn sets the per-edge gas generator. fn receives the configured
// random source, which may be nil for deterministic shapes.
func WithGasFn(fn func(*rand.Rand) uint64) Option {
	if fn == nil {
		panic("builder: WithGasFn(nil)")
	}
	return func(c *config) { c.gasFn = fn }
}

// WithValueFn sets the per-edge transferred value generator.
func WithValueFn(fn func(*rand.Rand) float64) Option {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}
	return func(c *config) { c.valueFn = fn }
}

// WithGasPrice sets the gas price stamped on every generated transaction.
func WithGasPrice(p uint64) Option {
	return func(c *config) { c.gasPrice = p }
}

// UniformGas returns a gas generator drawing uniformly from [lo, hi].
// It falls back to lo when no random source is configured.
func UniformGas(lo, hi uint64) func(*rand.Rand) uint64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return func(r *rand.Rand) uint64 {
		if r == nil || hi == lo {
			return lo
		}
		return lo + uint64(r.Int63n(int64(hi-lo+1)))
	}
}
