package claim

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"
)

// ErrPruned is returned when the value of a pruned field is requested
var ErrPruned = errors.New("value is pruned")

// Digestible is implemented by every value that can sit behind a MaybePruned
type Digestible interface {
	Digest() core.Digest
}

// valueless marks types that can only ever be carried as a digest
type valueless interface {
	valueless()
}

// MaybePruned holds either a full value or only its digest. Both forms hash
// to the same digest, so a claim built from a pruned field is equivalent to one
// built from the value. Pruning is one-way.
type MaybePruned[T Digestible] struct {
	value  T
	digest core.Digest
	pruned bool
}

// Value wraps a full value
func Value[T Digestible](v T) MaybePruned[T] {
	return MaybePruned[T]{value: v}
}

// Pruned wraps a digest standing in for a value
func Pruned[T Digestible](digest core.Digest) MaybePruned[T] {
	return MaybePruned[T]{digest: digest, pruned: true}
}

// IsPruned reports whether only the digest is held
func (m MaybePruned[T]) IsPruned() bool {
	return m.pruned
}

// Value returns the held value, or ErrPruned
func (m MaybePruned[T]) Value() (T, error) {
	if m.pruned {
		var zero T
		return zero, ErrPruned
	}
	return m.value, nil
}

// Digest returns the digest of the value, hashing it if it is present
func (m MaybePruned[T]) Digest() core.Digest {
	if m.pruned {
		return m.digest
	}
	return m.value.Digest()
}

// Prune returns the digest-only form
func (m MaybePruned[T]) Prune() MaybePruned[T] {
	return Pruned[T](m.Digest())
}

type maybePrunedJSON struct {
	Value  json.RawMessage `json:"value,omitempty"`
	Pruned *core.Digest    `json:"pruned,omitempty"`
}

// MarshalJSON encodes {"value": ...} or {"pruned": "0x..."}
func (m MaybePruned[T]) MarshalJSON() ([]byte, error) {
	if _, ok := any(m.value).(valueless); ok || m.pruned {
		d := m.Digest()
		return json.Marshal(maybePrunedJSON{Pruned: &d})
	}

	value, err := json.Marshal(m.value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(maybePrunedJSON{Value: value})
}

// UnmarshalJSON decodes exactly one of the value or pruned forms
func (m *MaybePruned[T]) UnmarshalJSON(data []byte) error {
	var raw maybePrunedJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.Pruned != nil && raw.Value != nil:
		return fmt.Errorf("maybe pruned: both value and pruned are set")
	case raw.Pruned != nil:
		*m = Pruned[T](*raw.Pruned)
		return nil
	case raw.Value != nil:
		var v T
		if _, ok := any(v).(valueless); ok {
			return fmt.Errorf("maybe pruned: %T can only be decoded in pruned form", v)
		}
		if err := json.Unmarshal(raw.Value, &v); err != nil {
			return err
		}
		*m = Value(v)
		return nil
	default:
		return fmt.Errorf("maybe pruned: neither value nor pruned is set")
	}
}
