package receipt

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/log"

	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/claim"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"
)

// Kind identifies the variant held by an inner receipt
type Kind uint8

const (
	// KindNone is the zero value: no receipt
	KindNone Kind = iota
	// KindComposite is a chain of segment receipts
	KindComposite
	// KindSuccinct is a single recursion proof
	KindSuccinct
)

func (k Kind) String() string {
	switch k {
	case KindComposite:
		return "composite"
	case KindSuccinct:
		return "succinct"
	default:
		return "none"
	}
}

// InnerReceipt holds exactly one of a composite or succinct receipt proving
// a ReceiptClaim
type InnerReceipt struct {
	composite *CompositeReceipt
	succinct  *SuccinctReceipt[claim.ReceiptClaim]
}

// NewSuccinctInner wraps a succinct receipt
func NewSuccinctInner(r *SuccinctReceipt[claim.ReceiptClaim]) InnerReceipt {
	return InnerReceipt{succinct: r}
}

// Kind reports the variant
func (r InnerReceipt) Kind() Kind {
	switch {
	case r.composite != nil:
		return KindComposite
	case r.succinct != nil:
		return KindSuccinct
	default:
		return KindNone
	}
}

// Composite returns the composite arm
func (r InnerReceipt) Composite() (*CompositeReceipt, error) {
	if r.composite == nil {
		return nil, core.Errorf(core.ErrReceiptFormat, "receipt is %s, not composite", r.Kind())
	}
	return r.composite, nil
}

// Succinct returns the succinct arm
func (r InnerReceipt) Succinct() (*SuccinctReceipt[claim.ReceiptClaim], error) {
	if r.succinct == nil {
		return nil, core.Errorf(core.ErrReceiptFormat, "receipt is %s, not succinct", r.Kind())
	}
	return r.succinct, nil
}

// VerifyIntegrityWithContext checks that the receipt's seal proves its claim
func (r InnerReceipt) VerifyIntegrityWithContext(ctx *VerifierContext) error {
	log.Debug("Verifying inner receipt", "kind", r.Kind())

	switch r.Kind() {
	case KindComposite:
		return r.composite.VerifyIntegrityWithContext(ctx)
	case KindSuccinct:
		return r.succinct.VerifyIntegrityWithContext(ctx)
	default:
		return core.Errorf(core.ErrReceiptFormat, "empty inner receipt")
	}
}

// Claim returns the claim the receipt proves
func (r InnerReceipt) Claim() (claim.MaybePruned[claim.ReceiptClaim], error) {
	switch r.Kind() {
	case KindComposite:
		c, err := r.composite.Claim()
		if err != nil {
			return claim.MaybePruned[claim.ReceiptClaim]{}, err
		}
		return claim.Value(c), nil
	case KindSuccinct:
		return r.succinct.Claim, nil
	default:
		return claim.MaybePruned[claim.ReceiptClaim]{}, core.Errorf(core.ErrReceiptFormat, "empty inner receipt")
	}
}

// VerifierParameters returns the parameter digest the receipt was produced for
func (r InnerReceipt) VerifierParameters() core.Digest {
	switch r.Kind() {
	case KindComposite:
		return r.composite.VerifierParameters
	case KindSuccinct:
		return r.succinct.VerifierParameters
	default:
		return core.ZeroDigest
	}
}

// Assumption converts the receipt for use as an assumption receipt. A succinct
// claim is erased to its digest and cannot be recovered.
func (r InnerReceipt) Assumption() InnerAssumptionReceipt {
	switch r.Kind() {
	case KindComposite:
		return InnerAssumptionReceipt{composite: r.composite}
	case KindSuccinct:
		return InnerAssumptionReceipt{succinct: r.succinct.IntoUnknown()}
	default:
		return InnerAssumptionReceipt{}
	}
}

type innerJSON[S any] struct {
	Composite *CompositeReceipt `json:"composite,omitempty"`
	Succinct  *S                `json:"succinct,omitempty"`
}

func marshalInner[S any](composite *CompositeReceipt, succinct *S) ([]byte, error) {
	if composite == nil && succinct == nil {
		return nil, core.Errorf(core.ErrReceiptFormat, "cannot encode an empty receipt")
	}
	return json.Marshal(innerJSON[S]{Composite: composite, Succinct: succinct})
}

func unmarshalInner[S any](data []byte) (*CompositeReceipt, *S, error) {
	var raw innerJSON[S]
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, err
	}
	if (raw.Composite == nil) == (raw.Succinct == nil) {
		return nil, nil, fmt.Errorf("receipt must hold exactly one of composite or succinct")
	}
	return raw.Composite, raw.Succinct, nil
}

// MarshalJSON encodes {"composite": ...} or {"succinct": ...}
func (r InnerReceipt) MarshalJSON() ([]byte, error) {
	return marshalInner(r.composite, r.succinct)
}

// UnmarshalJSON decodes the tagged envelope
func (r *InnerReceipt) UnmarshalJSON(data []byte) error {
	composite, succinct, err := unmarshalInner[SuccinctReceipt[claim.ReceiptClaim]](data)
	if err != nil {
		return err
	}
	*r = InnerReceipt{composite: composite, succinct: succinct}
	return nil
}

// InnerAssumptionReceipt is like InnerReceipt but may prove a claim of any
// type, so only the claim digest is available
type InnerAssumptionReceipt struct {
	composite *CompositeReceipt
	succinct  *SuccinctReceipt[claim.Unknown]
}

// NewSuccinctAssumption wraps a type-erased succinct receipt
func NewSuccinctAssumption(r *SuccinctReceipt[claim.Unknown]) InnerAssumptionReceipt {
	return InnerAssumptionReceipt{succinct: r}
}

// Kind reports the variant
func (r InnerAssumptionReceipt) Kind() Kind {
	switch {
	case r.composite != nil:
		return KindComposite
	case r.succinct != nil:
		return KindSuccinct
	default:
		return KindNone
	}
}

// Composite returns the composite arm
func (r InnerAssumptionReceipt) Composite() (*CompositeReceipt, error) {
	if r.composite == nil {
		return nil, core.Errorf(core.ErrReceiptFormat, "assumption receipt is %s, not composite", r.Kind())
	}
	return r.composite, nil
}

// Succinct returns the succinct arm
func (r InnerAssumptionReceipt) Succinct() (*SuccinctReceipt[claim.Unknown], error) {
	if r.succinct == nil {
		return nil, core.Errorf(core.ErrReceiptFormat, "assumption receipt is %s, not succinct", r.Kind())
	}
	return r.succinct, nil
}

// VerifyIntegrityWithContext checks that the receipt's seal proves its claim
func (r InnerAssumptionReceipt) VerifyIntegrityWithContext(ctx *VerifierContext) error {
	log.Debug("Verifying assumption receipt", "kind", r.Kind())

	switch r.Kind() {
	case KindComposite:
		return r.composite.VerifyIntegrityWithContext(ctx)
	case KindSuccinct:
		return r.succinct.VerifyIntegrityWithContext(ctx)
	default:
		return core.Errorf(core.ErrReceiptFormat, "empty assumption receipt")
	}
}

// ClaimDigest returns the digest of the proven claim
func (r InnerAssumptionReceipt) ClaimDigest() (core.Digest, error) {
	switch r.Kind() {
	case KindComposite:
		c, err := r.composite.Claim()
		if err != nil {
			return core.Digest{}, err
		}
		return c.Digest(), nil
	case KindSuccinct:
		return r.succinct.Claim.Digest(), nil
	default:
		return core.Digest{}, core.Errorf(core.ErrReceiptFormat, "empty assumption receipt")
	}
}

// VerifierParameters returns the parameter digest the receipt was produced for
func (r InnerAssumptionReceipt) VerifierParameters() core.Digest {
	switch r.Kind() {
	case KindComposite:
		return r.composite.VerifierParameters
	case KindSuccinct:
		return r.succinct.VerifierParameters
	default:
		return core.ZeroDigest
	}
}

// MarshalJSON encodes {"composite": ...} or {"succinct": ...}
func (r InnerAssumptionReceipt) MarshalJSON() ([]byte, error) {
	return marshalInner(r.composite, r.succinct)
}

// UnmarshalJSON decodes the tagged envelope
func (r *InnerAssumptionReceipt) UnmarshalJSON(data []byte) error {
	composite, succinct, err := unmarshalInner[SuccinctReceipt[claim.Unknown]](data)
	if err != nil {
		return err
	}
	*r = InnerAssumptionReceipt{composite: composite, succinct: succinct}
	return nil
}
