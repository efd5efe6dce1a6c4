package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by adapters; services map them to the typed
// errors below before they reach a handler.
var (
	// ErrNoMatch: the geocoder returned zero candidates for an address.
	ErrNoMatch = errors.New("no geocoding match")

	// ErrNoRoute: the routing provider found no drivable path.
	ErrNoRoute = errors.New("no route found")
)

// ValidationError: client input missing or malformed. Always a 400;
// the message is safe to show to the end user.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// AddressNotFoundError: geocoding resolved zero candidates for one of the
// two addresses. Field is "depart" or "arrivee".
type AddressNotFoundError struct {
	Field string
}

func (e *AddressNotFoundError) Error() string {
	return fmt.Sprintf("address not found: %s", e.Field)
}

// ConfigError: a required credential or connection string is absent.
// Missing names the variable for server-side logs; it is never echoed
// to the client.
type ConfigError struct {
	Missing string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing configuration: %s", e.Missing)
}

// UpstreamError: a third-party call failed. Stage is "geocode" or "route".
type UpstreamError struct {
	Stage string
	Err   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s failure: %v", e.Stage, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// DeliveryError: the notification provider rejected the send.
// Status and Body are diagnostics for server-side logs only.
type DeliveryError struct {
	Status int
	Body   string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery failed: status %d: %s", e.Status, e.Body)
}
