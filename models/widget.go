package models

import "time"

type WidgetStatus string

const (
	StatusLoading WidgetStatus = "loading"
	StatusReady   WidgetStatus = "ready"
	StatusError   WidgetStatus = "error"
)

// WidgetState is the loading/error/data triple a single widget renders from.
type WidgetState struct {
	Name      string       `json:"name"`
	Title     string       `json:"title"`
	Status    WidgetStatus `json:"status"`
	Data      any          `json:"data,omitempty"`
	Error     string       `json:"error,omitempty"`
	Fallback  bool         `json:"fallback,omitempty"` // data is the widget's built-in default
	UpdatedAt time.Time    `json:"updatedAt"`
}

func (s WidgetState) Loading() bool { return s.Status == StatusLoading }
func (s WidgetState) Failed() bool  { return s.Status == StatusError }
