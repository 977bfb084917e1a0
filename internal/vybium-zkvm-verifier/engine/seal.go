package engine

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/circuit"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"
)

// GlobalsSize is the length of the public globals header at the start of a seal
const GlobalsSize = 4 + 2*core.DigestSize

// Seal is the cryptographic proof of one receipt together with the protocol
// tag of the circuit that produced it
type Seal struct {
	Protocol circuit.ProtocolInfo `json:"protocol"`
	Bytes    hexutil.Bytes        `json:"bytes"`
}

// Globals are the public values every seal attests to
type Globals struct {
	// Po2 is the log2 of the segment cycle count; zero for recursion seals
	Po2 uint32

	// ControlID identifies the program the circuit ran
	ControlID core.Digest

	// ClaimDigest is the digest of the claim the seal proves
	ClaimDigest core.Digest
}

// EncodeGlobals serializes the globals header
func EncodeGlobals(g Globals) []byte {
	buf := make([]byte, 0, GlobalsSize)
	buf = binary.LittleEndian.AppendUint32(buf, g.Po2)
	buf = append(buf, g.ControlID[:]...)
	buf = append(buf, g.ClaimDigest[:]...)
	return buf
}

// Globals decodes the header. It does not check that the seal is valid.
func (s Seal) Globals() (Globals, error) {
	if len(s.Bytes) < GlobalsSize {
		return Globals{}, core.Errorf(core.ErrReceiptFormat, "seal is %d bytes, need at least %d for globals", len(s.Bytes), GlobalsSize)
	}

	var g Globals
	g.Po2 = binary.LittleEndian.Uint32(s.Bytes[0:4])
	copy(g.ControlID[:], s.Bytes[4:4+core.DigestSize])
	copy(g.ClaimDigest[:], s.Bytes[4+core.DigestSize:GlobalsSize])
	return g, nil
}
