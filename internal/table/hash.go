package table

// Hash maps value onto [0, size). Negative values are normalized so that
// -1 lands in the last bucket rather than producing a negative index.
func Hash(value, size int) int {
	return ((value % size) + size) % size
}
