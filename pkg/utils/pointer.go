package utils

// Ptr returns a pointer to the value, for optional request fields.
func Ptr[T any](v T) *T {
	return &v
}
