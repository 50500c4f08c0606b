// Package jsonenc is the repository's JSON codec. Every caller goes through
// this one import point so the underlying implementation can change without
// touching call sites.
package jsonenc

import "github.com/bytedance/sonic"

// Marshal returns the JSON encoding of v.
func Marshal(v any) ([]byte, error) {
	return sonic.Marshal(v)
}

// MarshalIndent is like Marshal but indents nested values.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return sonic.MarshalIndent(v, prefix, indent)
}

// Unmarshal parses JSON-encoded data into v.
func Unmarshal(data []byte, v any) error {
	return sonic.Unmarshal(data, v)
}

// UnmarshalString parses a JSON-encoded string into v.
func UnmarshalString(s string, v any) error {
	return sonic.UnmarshalString(s, v)
}
