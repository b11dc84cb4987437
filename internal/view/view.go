// Package view holds the per-instance state of the list and detail views.
// Each mount gets a fresh state with a unique ID; responses addressed to an
// older instance are dropped instead of mutating state nobody displays.
package view

import "sync/atomic"

// Status is the lifecycle phase of a view instance
type Status int

const (
	StatusLoading Status = iota
	StatusReady          // list: records loaded; detail: character found
	StatusError
)

// String returns the status name used in logs
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// ID identifies one mounted view instance
type ID uint64

var lastID atomic.Uint64

// NextID returns a process-unique view instance ID
func NextID() ID {
	return ID(lastID.Add(1))
}
