package circuit

import (
	"fmt"

	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"
)

// ProtocolInfoSize is the fixed length of a protocol tag
const ProtocolInfoSize = 16

// ProtocolInfo is a 16-byte ASCII tag naming a circuit or proof system and its
// revision. It is bound into every seal so a proof for one circuit can never be
// checked against another circuit's parameters.
type ProtocolInfo [ProtocolInfoSize]byte

// NewProtocolInfo converts a 16-character tag. It panics on any other length,
// since tags are compile-time constants.
func NewProtocolInfo(tag string) ProtocolInfo {
	if len(tag) != ProtocolInfoSize {
		panic(fmt.Sprintf("protocol info must be %d bytes, got %q", ProtocolInfoSize, tag))
	}
	var p ProtocolInfo
	copy(p[:], tag)
	return p
}

// String returns the tag text
func (p ProtocolInfo) String() string {
	return string(p[:])
}

// Digest hashes the tag, one word per byte
func (p ProtocolInfo) Digest() core.Digest {
	words := make([]uint32, ProtocolInfoSize)
	for i, b := range p {
		words[i] = uint32(b)
	}
	return core.TaggedStruct(core.Sha256, "risc0.ProtocolInfo", nil, words)
}

// MarshalText implements encoding.TextMarshaler
func (p ProtocolInfo) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *ProtocolInfo) UnmarshalText(text []byte) error {
	if len(text) != ProtocolInfoSize {
		return fmt.Errorf("protocol info must be %d bytes, got %d", ProtocolInfoSize, len(text))
	}
	copy(p[:], text)
	return nil
}

// ProofSystemInfo tags the STARK proof system shared by all circuits
var ProofSystemInfo = NewProtocolInfo("ZKVM_STARK:v1___")

// TapSet references the generated tap table of a circuit: the polynomial
// evaluation points the proof engine checks. The table itself lives with the
// engine; the verifier only passes the reference through.
type TapSet struct {
	Name        string
	Fingerprint core.Digest
}

// Info is the metadata of one circuit revision
type Info struct {
	// Protocol names the circuit and revision
	Protocol ProtocolInfo

	// OutputSize is the number of field elements of public output (globals)
	OutputSize int

	// MixSize is the number of field elements of verifier randomness mixed into the constraints
	MixSize int

	// Taps is the tap set the engine checks for this circuit
	Taps *TapSet
}
