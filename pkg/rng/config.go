// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rng

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Config for a Factory. Create it with Build, set the options and call Done.
//
// Example:
//
//	factory, err := rng.Build(rng.NewSeededEntropy(42)).Kind(rng.KindPCG).Batch(numWorkers).Done()
//	if err != nil { ... }
//	factory.Reseed()
type Config struct {
	entropy    EntropySource
	kind       Kind
	numStreams int
	legacy     bool
	err        error
}

// Build starts the configuration of a Factory drawing from entropy.
//
// The default is a batch Tausworthe factory with a single stream.
func Build(entropy EntropySource) *Config {
	return &Config{
		entropy:    entropy,
		kind:       KindTau,
		numStreams: 1,
	}
}

// Kind of generators to create. See KindValues.
func (c *Config) Kind(kind Kind) *Config {
	c.kind = kind
	return c
}

// KindName sets the kind of generators from its name ("tau", "pcg" or "deterministic").
// An invalid name is reported by Done.
func (c *Config) KindName(name string) *Config {
	kind, err := KindString(name)
	if err != nil {
		c.err = errors.Wrapf(err, "rng.Config.KindName(%q): valid values are %v", name, KindStrings())
		return c
	}
	c.kind = kind
	return c
}

// Batch selects a batch factory with a pool for numStreams streams. This is the default, with
// numStreams=1.
//
// Batch factories are returned unseeded: Reseed must be called before Create.
func (c *Config) Batch(numStreams int) *Config {
	c.legacy = false
	c.numStreams = numStreams
	return c
}

// Legacy selects the non-batch factory: seeded on creation, with streams derived from the value
// passed to Create.
func (c *Config) Legacy() *Config {
	c.legacy = true
	return c
}

// Done validates the configuration and returns the Factory.
func (c *Config) Done() (Factory, error) {
	if c.err != nil {
		return nil, c.err
	}
	if !c.kind.IsAKind() {
		return nil, errors.Errorf("rng.Config: invalid generator kind %s", c.kind)
	}
	if c.kind == KindDeterministic {
		return DeterministicFactory{}, nil
	}
	if c.entropy == nil {
		return nil, errors.Errorf("rng.Config: generator kind %s requires an entropy source", c.kind)
	}
	if c.legacy {
		klog.V(1).Infof("rng: creating legacy %s factory", c.kind)
		if c.kind == KindTau {
			return NewTauFactory(c.entropy), nil
		}
		return NewPCGFactory(c.entropy), nil
	}
	if c.numStreams < 1 {
		return nil, errors.Errorf("rng.Config: batch factory requires at least one stream, got %d", c.numStreams)
	}
	klog.V(1).Infof("rng: creating batch %s factory with %d streams", c.kind, c.numStreams)
	if c.kind == KindTau {
		return NewBatchTauFactory(c.entropy, c.numStreams), nil
	}
	return NewBatchPCGFactory(c.entropy, c.numStreams), nil
}
