package engine

import (
	"encoding/binary"

	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/circuit"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"
)

// Commitment is a development engine. A seal is valid when it ends with a hash
// commitment over the circuit identity and every preceding seal byte:
//
//	globals || body || H(proof system || protocol || taps || sizes || globals || body)
//
// Flipping any bit invalidates the seal. It proves nothing about execution and
// exists so the receipt layer can be exercised end to end without a prover.
type Commitment struct {
	hash core.HashFn
}

// NewCommitment creates a commitment engine over h
func NewCommitment(h core.HashFn) *Commitment {
	return &Commitment{hash: h}
}

// Verify implements Engine
func (c *Commitment) Verify(taps *circuit.TapSet, info circuit.Info, seal Seal) error {
	if err := CheckProtocol(info, seal); err != nil {
		return err
	}
	if taps == nil {
		return core.Errorf(core.ErrInvalidProof, "no tap set for %s", info.Protocol)
	}

	n := len(seal.Bytes)
	if n < GlobalsSize+core.DigestSize {
		return core.Errorf(core.ErrInvalidProof, "seal too short: %d bytes", n)
	}

	payload := seal.Bytes[:n-core.DigestSize]
	var received core.Digest
	copy(received[:], seal.Bytes[n-core.DigestSize:])

	expected := c.commit(taps, info, payload)
	if expected != received {
		return core.Mismatch(core.ErrInvalidProof, expected, received, "seal commitment does not match")
	}
	return nil
}

// Seal builds a seal this engine accepts
func (c *Commitment) Seal(taps *circuit.TapSet, info circuit.Info, globals Globals, body []byte) Seal {
	payload := append(EncodeGlobals(globals), body...)
	commitment := c.commit(taps, info, payload)
	return Seal{
		Protocol: info.Protocol,
		Bytes:    append(payload, commitment[:]...),
	}
}

func (c *Commitment) commit(taps *circuit.TapSet, info circuit.Info, payload []byte) core.Digest {
	proofSystem := circuit.ProofSystemInfo.Digest()
	protocol := info.Protocol.Digest()

	buf := make([]byte, 0, 3*core.DigestSize+8+len(payload))
	buf = append(buf, proofSystem[:]...)
	buf = append(buf, protocol[:]...)
	buf = append(buf, taps.Fingerprint[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(info.OutputSize))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(info.MixSize))
	buf = append(buf, payload...)
	return c.hash.HashBytes(buf)
}
