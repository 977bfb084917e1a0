package core

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// DigestSize is the byte length of a Digest
const DigestSize = 32

// DigestWords is the number of little-endian 32-bit words in a Digest
const DigestWords = DigestSize / 4

// Digest is a 32-byte hash value. It identifies programs (image IDs), claims,
// control programs and verifier parameter sets.
type Digest [DigestSize]byte

// ZeroDigest is the all-zero digest. It stands in for absent values
// (no input, no output, empty assumption list).
var ZeroDigest Digest

// NewDigest copies b into a Digest. b must be exactly DigestSize bytes.
func NewDigest(b []byte) (Digest, error) {
	var d Digest
	if len(b) != DigestSize {
		return d, fmt.Errorf("digest must be %d bytes, got %d", DigestSize, len(b))
	}
	copy(d[:], b)
	return d, nil
}

// ParseDigest parses a hex digest with or without the 0x prefix
func ParseDigest(s string) (Digest, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return Digest{}, fmt.Errorf("invalid digest %q: %w", s, err)
	}
	return NewDigest(b)
}

// MustParseDigest is ParseDigest for package-level tables; it panics on malformed input.
func MustParseDigest(s string) Digest {
	d, err := ParseDigest(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DigestFromWords builds a digest from little-endian words
func DigestFromWords(words [DigestWords]uint32) Digest {
	var d Digest
	for i, w := range words {
		binary.LittleEndian.PutUint32(d[i*4:], w)
	}
	return d
}

// Words returns the digest as little-endian 32-bit words
func (d Digest) Words() [DigestWords]uint32 {
	var words [DigestWords]uint32
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(d[i*4:])
	}
	return words
}

// Bytes returns a copy of the digest bytes
func (d Digest) Bytes() []byte {
	return append([]byte(nil), d[:]...)
}

// IsZero reports whether d is the zero digest
func (d Digest) IsZero() bool {
	return d == ZeroDigest
}

// String returns the 0x-prefixed hex form
func (d Digest) String() string {
	return hexutil.Encode(d[:])
}

// MarshalText implements encoding.TextMarshaler
func (d Digest) MarshalText() ([]byte, error) {
	return hexutil.Bytes(d[:]).MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Digest) UnmarshalText(input []byte) error {
	var b hexutil.Bytes
	if err := b.UnmarshalText(input); err != nil {
		return fmt.Errorf("invalid digest: %w", err)
	}
	parsed, err := NewDigest(b)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
