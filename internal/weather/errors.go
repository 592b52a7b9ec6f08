package weather

import (
	"errors"
	"fmt"
)

// RegionNotCoveredError means the points lookup returned 404, which the
// NWS API uses to signal coordinates outside its coverage area.
type RegionNotCoveredError struct {
	Latitude  float64
	Longitude float64
}

func (e *RegionNotCoveredError) Error() string {
	return fmt.Sprintf("coordinates (%v, %v) are outside the NWS coverage area", e.Latitude, e.Longitude)
}

// StatusError is a non-404 HTTP failure from either stage of the chain.
type StatusError struct {
	Stage string // "points" or "forecast"
	Code  int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("NWS %s request failed: HTTP %d", e.Stage, e.Code)
}

// NetworkError wraps a transport-level failure (DNS, connect, timeout).
type NetworkError struct {
	Stage string
	Err   error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("NWS %s request: network error: %v", e.Stage, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// MalformedResponseError means a response parsed but was missing a field
// the chain depends on.
type MalformedResponseError struct {
	Stage  string
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("NWS %s response invalid: %s", e.Stage, e.Reason)
}

// IsRegionNotCovered reports whether err is a coverage-area miss.
func IsRegionNotCovered(err error) bool {
	var target *RegionNotCoveredError
	return errors.As(err, &target)
}

// IsStatus extracts a StatusError from err if present.
func IsStatus(err error) (*StatusError, bool) {
	var target *StatusError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// IsNetwork extracts a NetworkError from err if present.
func IsNetwork(err error) (*NetworkError, bool) {
	var target *NetworkError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// IsMalformed extracts a MalformedResponseError from err if present.
func IsMalformed(err error) (*MalformedResponseError, bool) {
	var target *MalformedResponseError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
