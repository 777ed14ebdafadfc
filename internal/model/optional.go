package model

import (
	"encoding/json"
	"fmt"
)

// NotFoundLabel is shown in place of a value that is missing from the source document.
const NotFoundLabel = "Não encontrado"

// Optional holds a value that may be absent. The zero value is absent.
type Optional[T any] struct {
	value T
	ok    bool
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, ok: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Optional[T]) Present() bool {
	return o.ok
}

func (o Optional[T]) OrElse(fallback T) T {
	if !o.ok {
		return fallback
	}
	return o.value
}

// String renders the value, or NotFoundLabel when absent.
func (o Optional[T]) String() string {
	if !o.ok {
		return NotFoundLabel
	}
	return fmt.Sprint(o.value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[T]()
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*o = Some(value)
	return nil
}
