package receipt

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"
)

// DecodeProof parses a JSON proof or full receipt document
func DecodeProof(data []byte) (*Proof, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var p Proof
	if err := dec.Decode(&p); err != nil {
		return nil, core.Wrap(core.ErrReceiptFormat, err, "malformed receipt")
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, core.Errorf(core.ErrReceiptFormat, "trailing data after receipt")
	}
	if p.Inner.Kind() == KindNone {
		return nil, core.Errorf(core.ErrReceiptFormat, "receipt has no inner receipt")
	}

	return &p, nil
}

// EncodeProof serializes a proof as JSON
func EncodeProof(p *Proof) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, core.Wrap(core.ErrReceiptFormat, err, "cannot encode receipt")
	}
	return data, nil
}
