package lib

// Replace swaps the value behind a pointer for v and returns a function that
// restores the original value. Intended for tests that temporarily redirect
// package-level outputs:
//
//	defer Replace(&output, &buf)()
func Replace[T any](k *T, v T) func() {
	value := *k
	*k = v
	return func() {
		*k = value
	}
}
