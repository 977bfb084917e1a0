package receipt

import (
	"fmt"
	"maps"

	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/circuit"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/engine"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/utils"
)

// VerifierContext carries everything receipt verification depends on: the
// circuit version, hash suites, the proof engine and the verifier parameters.
// A context is immutable; the With methods return modified copies, so one
// context can be shared by any number of goroutines.
type VerifierContext struct {
	version   *circuit.Version
	suites    map[string]core.HashFn
	engine    engine.Engine
	maxPo2    int
	segment   *SegmentVerifierParameters
	succinct  *SuccinctVerifierParameters
	composite *CompositeVerifierParameters
}

func newContext(v *circuit.Version) *VerifierContext {
	segment := NewSegmentVerifierParameters(v, core.DefaultMaxPo2)
	succinct := NewSuccinctVerifierParameters(v)
	composite := NewCompositeVerifierParameters(segment)

	return &VerifierContext{
		version:   v,
		suites:    core.DefaultSuites(),
		engine:    engine.Default(),
		maxPo2:    core.DefaultMaxPo2,
		segment:   &segment,
		succinct:  &succinct,
		composite: &composite,
	}
}

// V1_0 returns a context for receipts produced by 1.0 provers
func V1_0() *VerifierContext { return newContext(circuit.V1_0()) }

// V1_1 returns a context for receipts produced by 1.1 provers
func V1_1() *VerifierContext { return newContext(circuit.V1_1()) }

// V1_2 returns a context for receipts produced by 1.2 provers
func V1_2() *VerifierContext { return newContext(circuit.V1_2()) }

// Default returns the context used by Proof.Verify. It is pinned to V1_2;
// receipts of other versions need an explicit context.
func Default() *VerifierContext { return V1_2() }

// ForVersion returns the context for a version name such as "v1.1"
func ForVersion(name string) (*VerifierContext, error) {
	v, ok := circuit.LookupVersion(name)
	if !ok {
		return nil, fmt.Errorf("unsupported circuit version %q", name)
	}
	return newContext(v), nil
}

// FromConfig builds a context from verifier configuration
func FromConfig(cfg *utils.Config) (*VerifierContext, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	ctx, err := ForVersion(cfg.Version)
	if err != nil {
		return nil, err
	}
	return ctx.WithMaxPo2(cfg.MaxPo2), nil
}

func (c *VerifierContext) clone() *VerifierContext {
	clone := *c
	clone.suites = maps.Clone(c.suites)
	return &clone
}

// WithEngine returns a copy verifying seals with e
func (c *VerifierContext) WithEngine(e engine.Engine) *VerifierContext {
	clone := c.clone()
	clone.engine = e
	return clone
}

// WithSuites returns a copy that only accepts the given hash functions
func (c *VerifierContext) WithSuites(suites map[string]core.HashFn) *VerifierContext {
	clone := c.clone()
	clone.suites = maps.Clone(suites)
	return clone
}

// WithMaxPo2 returns a copy whose segment and composite parameters allow
// segments up to maxPo2
func (c *VerifierContext) WithMaxPo2(maxPo2 int) *VerifierContext {
	clone := c.clone()
	segment := NewSegmentVerifierParameters(c.version, maxPo2)
	composite := NewCompositeVerifierParameters(segment)
	clone.maxPo2 = maxPo2
	clone.segment = &segment
	clone.composite = &composite
	return clone
}

// WithControlRoot returns a copy whose succinct parameters use root. Assumptions
// naming a control root are verified under such a context.
func (c *VerifierContext) WithControlRoot(root core.Digest) *VerifierContext {
	clone := c.clone()
	succinct := NewSuccinctVerifierParameters(c.version)
	succinct.ControlRoot = root
	clone.succinct = &succinct
	return clone
}

// WithSegmentParameters returns a copy with p as segment parameters; nil removes them
func (c *VerifierContext) WithSegmentParameters(p *SegmentVerifierParameters) *VerifierContext {
	clone := c.clone()
	clone.segment = p
	return clone
}

// WithSuccinctParameters returns a copy with p as succinct parameters; nil removes them
func (c *VerifierContext) WithSuccinctParameters(p *SuccinctVerifierParameters) *VerifierContext {
	clone := c.clone()
	clone.succinct = p
	return clone
}

// WithCompositeParameters returns a copy with p as composite parameters; nil removes them
func (c *VerifierContext) WithCompositeParameters(p *CompositeVerifierParameters) *VerifierContext {
	clone := c.clone()
	clone.composite = p
	return clone
}

// Version returns the circuit version
func (c *VerifierContext) Version() *circuit.Version { return c.version }

// Engine returns the proof engine
func (c *VerifierContext) Engine() engine.Engine { return c.engine }

// MaxPo2 returns the largest segment po2 the segment parameters allow
func (c *VerifierContext) MaxPo2() int { return c.maxPo2 }

// Suite looks up a supported hash function by name
func (c *VerifierContext) Suite(name string) (core.HashFn, bool) {
	h, ok := c.suites[name]
	return h, ok
}

// SegmentParameters returns the segment parameters, if any
func (c *VerifierContext) SegmentParameters() (SegmentVerifierParameters, bool) {
	if c.segment == nil {
		return SegmentVerifierParameters{}, false
	}
	return *c.segment, true
}

// SuccinctParameters returns the succinct parameters, if any
func (c *VerifierContext) SuccinctParameters() (SuccinctVerifierParameters, bool) {
	if c.succinct == nil {
		return SuccinctVerifierParameters{}, false
	}
	return *c.succinct, true
}

// CompositeParameters returns the composite parameters, if any
func (c *VerifierContext) CompositeParameters() (CompositeVerifierParameters, bool) {
	if c.composite == nil {
		return CompositeVerifierParameters{}, false
	}
	return *c.composite, true
}

func (c *VerifierContext) segmentDigest() (core.Digest, error) {
	p, ok := c.SegmentParameters()
	if !ok {
		return core.Digest{}, core.Errorf(core.ErrVerifierParametersMissing, "context has no segment verifier parameters")
	}
	return p.Digest(), nil
}

func (c *VerifierContext) succinctDigest() (core.Digest, error) {
	p, ok := c.SuccinctParameters()
	if !ok {
		return core.Digest{}, core.Errorf(core.ErrVerifierParametersMissing, "context has no succinct verifier parameters")
	}
	return p.Digest(), nil
}

func (c *VerifierContext) compositeDigest() (core.Digest, error) {
	p, ok := c.CompositeParameters()
	if !ok {
		return core.Digest{}, core.Errorf(core.ErrVerifierParametersMissing, "context has no composite verifier parameters")
	}
	return p.Digest(), nil
}

// checkParameters compares a receipt's parameter digest with the context's
func checkParameters(expected func() (core.Digest, error), received core.Digest) error {
	want, err := expected()
	if err != nil {
		return err
	}
	if want != received {
		return core.Mismatch(core.ErrVerifierParametersMismatch, want, received, "receipt was produced for other verifier parameters")
	}
	return nil
}
