package ptr

func To[T any](v T) *T {
	return &v
}

// ValueOr returns the pointed-to value, or fallback for nil.
func ValueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
