// Package widgets holds one data source per dashboard widget.
package widgets

import (
	"context"
	"encoding/json"
)

// Source produces the payload of a single widget.
type Source interface {
	Name() string
	Title() string
	Fetch(ctx context.Context) (any, error)
	// Decode restores a payload previously produced by Fetch and stored as JSON.
	Decode(data []byte) (any, error)
}

// Fallback is implemented by sources that show built-in data instead of an
// error when their upstream fails.
type Fallback interface {
	Fallback() any
}

// ErrorMessage is implemented by sources that surface a fixed user-facing
// message when their upstream fails.
type ErrorMessage interface {
	ErrorMessage() string
}

func decodeAs[T any](data []byte) (any, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
