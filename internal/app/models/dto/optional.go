package dto

import (
	"bytes"
	"encoding/json"
)

// Optional distinguishes an absent JSON field (Set == false) from an
// explicit null (Set == true, Value == nil) in partial updates.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// UnmarshalJSON is only invoked when the key is present.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// MarshalJSON writes the value or null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// Some returns a set Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns a set Optional holding an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// Or returns the value when set, otherwise current.
func (o Optional[T]) Or(current *T) *T {
	if o.Set {
		return o.Value
	}
	return current
}
