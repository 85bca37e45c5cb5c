// Package ptr contains small helpers for working with pointers to values.
package ptr

// Ptr returns a pointer to the given value
func Ptr[T any](v T) *T {
	return &v
}
