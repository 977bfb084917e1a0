package claim

import (
	"fmt"

	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"
)

// SystemState is the machine state at a segment boundary
type SystemState struct {
	// PC is the program counter
	PC uint32 `json:"pc"`

	// MerkleRoot commits to the memory image
	MerkleRoot core.Digest `json:"merkle_root"`
}

// Digest hashes the state as a tagged struct
func (s SystemState) Digest() core.Digest {
	return core.TaggedStruct(core.Sha256, "risc0.SystemState", []core.Digest{s.MerkleRoot}, []uint32{s.PC})
}

// SystemExitCode classifies how a segment or session ended
type SystemExitCode uint8

const (
	// Halted means the guest finished; User holds its exit code
	Halted SystemExitCode = iota
	// Paused means the guest paused and may be resumed
	Paused
	// SystemSplit ends every segment but the last of a session
	SystemSplit
	// SessionLimit means the cycle limit was hit
	SessionLimit
)

func (c SystemExitCode) String() string {
	switch c {
	case Halted:
		return "Halted"
	case Paused:
		return "Paused"
	case SystemSplit:
		return "SystemSplit"
	case SessionLimit:
		return "SessionLimit"
	default:
		return fmt.Sprintf("SystemExitCode(%d)", uint32(c))
	}
}

// ExitCode is the outcome of an execution
type ExitCode struct {
	System SystemExitCode `json:"system"`
	User   uint8          `json:"user"`
}

// ExitHalted returns Halted with the given user code
func ExitHalted(user uint8) ExitCode {
	return ExitCode{System: Halted, User: user}
}

// ExitSplit is the exit code of a non-final segment
var ExitSplit = ExitCode{System: SystemSplit}

// Words returns the exit code as it is packed into a claim digest. Each
// code occupies the top byte of its word.
func (e ExitCode) Words() []uint32 {
	return []uint32{uint32(e.System) << 24, uint32(e.User) << 24}
}

// Expects reports whether a continuation is expected after this exit
func (e ExitCode) Expects() bool {
	return e.System == Paused || e.System == SystemSplit
}

func (e ExitCode) String() string {
	switch e.System {
	case Halted, Paused:
		return fmt.Sprintf("%s(%d)", e.System, e.User)
	default:
		return e.System.String()
	}
}
