package util

// Unpack copies the elements of src into the given pointers, in order.
// Pointers without a matching element are left alone, surplus elements are
// ignored. Handy for splitting command words into named variables.
func Unpack[T any](src []T, into ...*T) {
	n := min(len(src), len(into))
	for i := 0; i < n; i++ {
		*into[i] = src[i]
	}
}
