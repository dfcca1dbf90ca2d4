package helpers

// Ptr returns a pointer to v, e.g. for the optional short name of a flag. A nil v yields a nil pointer.
func Ptr[T any](v T) *T {
	if any(v) == nil {
		return nil
	}
	return &v
}
