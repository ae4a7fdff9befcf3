package geocode

import "errors"

// Upstream status values in the geocoding response envelope.
const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// ErrNoResults indicates the upstream found no location for the address.
var ErrNoResults = errors.New("address not found")

// Error is the single error kind the adapter emits. It wraps the cause
// (transport error, ErrNoResults) when one exists.
type Error struct {
	msg string
	err error
}

func (e *Error) Error() string {
	if e.err != nil {
		return "geocode: " + e.msg + ": " + e.err.Error()
	}
	return "geocode: " + e.msg
}

func (e *Error) Unwrap() error { return e.err }

// response is the wire shape of a geocoding lookup.
type response struct {
	Status  string   `json:"status"`
	Results []result `json:"results"`
}

type result struct {
	FormattedAddress string   `json:"formatted_address"`
	Geometry         geometry `json:"geometry"`
}

type geometry struct {
	Location coordinates `json:"location"`
}

type coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
