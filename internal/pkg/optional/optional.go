// Package optional distinguishes a JSON field that was left out from one
// that was sent as null.
package optional

import (
	"bytes"
	"encoding/json"

	"github.com/caffeine-junky/jobconnect/internal/pkg/apperr"
)

type Value[T any] struct {
	set   bool
	null  bool
	value T
}

func Of[T any](v T) Value[T] {
	return Value[T]{set: true, value: v}
}

func Null[T any]() Value[T] {
	return Value[T]{set: true, null: true}
}

// IsSet reports whether the field was present, including as null.
func (v Value[T]) IsSet() bool { return v.set }

func (v Value[T]) IsNull() bool { return v.set && v.null }

// Get returns the value when it was present and not null.
func (v Value[T]) Get() (T, bool) {
	if !v.set || v.null {
		var zero T
		return zero, false
	}
	return v.value, true
}

// Ptr returns nil for absent or null, otherwise a pointer to a copy.
func (v Value[T]) Ptr() *T {
	if val, ok := v.Get(); ok {
		return &val
	}
	return nil
}

func (v *Value[T]) UnmarshalJSON(b []byte) error {
	v.set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		v.null = true
		var zero T
		v.value = zero
		return nil
	}
	v.null = false
	return json.Unmarshal(b, &v.value)
}

func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.set || v.null {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}

// NonNull returns the value when present. Absent yields ok=false; null on a
// non-nullable field yields a bad request naming field.
func NonNull[T any](v Value[T], field string) (val T, ok bool, err error) {
	if v.IsNull() {
		return val, false, apperr.BadRequestf("%s cannot be null", field)
	}
	val, ok = v.Get()
	return val, ok, nil
}
