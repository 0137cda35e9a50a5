package models

import "encoding/json"

// OptionalString is a free-text field that may be absent. Absent values
// serialize as the JSON literal false; existing API consumers test
// fields with `=== false`, so the sentinel cannot change to null.
type OptionalString struct {
	Value string
	Set   bool
}

// Comment wraps a non-empty string as a present OptionalString.
func Comment(s string) OptionalString {
	return OptionalString{Value: s, Set: true}
}

// MarshalJSON implements json.Marshaler.
func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("false"), nil
	}
	return json.Marshal(o.Value)
}

// OptionalSeconds is a Unix-seconds timestamp that may be absent.
// Serializes like OptionalString: the value when set, false otherwise.
type OptionalSeconds struct {
	Value int64
	Set   bool
}

// Expiry wraps a Unix timestamp as a present OptionalSeconds.
func Expiry(ts int64) OptionalSeconds {
	return OptionalSeconds{Value: ts, Set: true}
}

// MarshalJSON implements json.Marshaler.
func (o OptionalSeconds) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("false"), nil
	}
	return json.Marshal(o.Value)
}

// UserListEntry is one user's moderation listing as exposed by the API.
type UserListEntry struct {
	Type    string          `json:"type"`
	Comment OptionalString  `json:"comment"`
	Expiry  OptionalSeconds `json:"expiry"`
	Adder   string          `json:"adder"`
}

// PageListEntry is one globally watched page as exposed by the API.
type PageListEntry struct {
	Comment OptionalString  `json:"comment"`
	Expiry  OptionalSeconds `json:"expiry"`
	Adder   string          `json:"adder"`
}

// LookupResponse is the lookup endpoint's payload. Users and Pages are
// keyed objects and must stay objects even when empty, so a requested
// section is an allocated (possibly empty) map and an unrequested one is
// nil. omitzero drops only the nil maps; omitempty would also drop the
// empty ones and erase the distinction.
type LookupResponse struct {
	Users      map[string]UserListEntry `json:"users,omitzero"`
	Pages      map[string]PageListEntry `json:"pages,omitzero"`
	LastUpdate int64                    `json:"lastUpdate"`
	Warnings   []string                 `json:"warnings,omitempty"`
}

// ErrorResponse is the body of every client-error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
