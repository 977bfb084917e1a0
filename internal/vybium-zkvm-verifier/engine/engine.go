// Package engine defines the boundary to the STARK proof engine. A receipt
// hands its seal to an Engine, which either attests to the seal's globals or
// rejects it; everything above this boundary is structural checking.
package engine

import (
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/circuit"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"
)

// Engine verifies seals against a circuit
type Engine interface {
	// Verify returns nil only if seal is a valid proof for the circuit described by
	// taps and info. A nil result attests to the values returned by seal.Globals.
	Verify(taps *circuit.TapSet, info circuit.Info, seal Seal) error
}

// Func adapts a function to the Engine interface
type Func func(taps *circuit.TapSet, info circuit.Info, seal Seal) error

// Verify calls f
func (f Func) Verify(taps *circuit.TapSet, info circuit.Info, seal Seal) error {
	return f(taps, info, seal)
}

// CheckProtocol rejects seals produced by a different circuit
func CheckProtocol(info circuit.Info, seal Seal) error {
	if seal.Protocol != info.Protocol {
		return core.Mismatch(core.ErrCircuitInfoMismatch, info.Protocol.Digest(), seal.Protocol.Digest(),
			"seal protocol "+seal.Protocol.String()+" does not match circuit "+info.Protocol.String())
	}
	return nil
}

// Rejecting is an engine that accepts nothing
type Rejecting struct{}

// Verify always fails
func (Rejecting) Verify(_ *circuit.TapSet, info circuit.Info, _ Seal) error {
	return core.Errorf(core.ErrInvalidProof, "engine rejects all seals for %s", info.Protocol)
}

// Unconfigured is the engine of contexts that were not given one. It fails
// every seal until a real engine is installed with WithEngine.
type Unconfigured struct{}

// Verify always fails
func (Unconfigured) Verify(_ *circuit.TapSet, info circuit.Info, _ Seal) error {
	return core.Errorf(core.ErrInvalidProof, "no proof engine configured for %s", info.Protocol)
}

// Default returns the engine used by contexts that were not given one
func Default() Engine {
	return Unconfigured{}
}
