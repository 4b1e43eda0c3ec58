// Package utils contains small helper functions used across the
// project.
package utils

// Ptr returns a pointer to v. Handy for building partial-update
// payloads whose optional fields are pointers.
func Ptr[T any](v T) *T {
	return &v
}
