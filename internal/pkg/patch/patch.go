package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalescePtr keeps the existing optional value unless an update is supplied.
func CoalescePtr[T any](update *T, existing *T) *T {
	if update != nil {
		return update
	}
	return existing
}
