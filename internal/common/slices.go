package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// FindFirstSome returns the first non-nil candidate in left-to-right order,
// or nil if every candidate is absent.
func FindFirstSome[T any](candidates ...*T) *T {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}

	return nil
}

// TrySkipMap applies f to every item in order and collects the produced values.
//
// When f reports ok == false the item is skipped. The first error stops the
// iteration and is returned as is, together with a nil slice. On success the
// returned slice is never nil.
func TrySkipMap[S ~[]T, T, U any](items S, f func(T) (U, bool, error)) ([]U, error) {
	out := make([]U, 0, len(items))
	for _, item := range items {
		v, ok, err := f(item)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, v)
		}
	}

	return out, nil
}
