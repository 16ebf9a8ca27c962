package normalize

// bptIndexOf returns the position of the pool's own token within the token
// address list, or -1 when the pool does not hold its own liquidity token.
// The comparison is exact: addresses are expected to carry the casing the
// upstream source applies uniformly.
func bptIndexOf(poolAddress string, tokens []string) int {
	for i, token := range tokens {
		if token == poolAddress {
			return i
		}
	}
	return -1
}

// withoutIndex returns a copy of values omitting the given position. A
// negative index yields an empty slice, never a copy of the full array.
func withoutIndex[T any](values []T, index int) []T {
	if index < 0 || index >= len(values) {
		return []T{}
	}
	out := make([]T, 0, len(values)-1)
	out = append(out, values[:index]...)
	out = append(out, values[index+1:]...)
	return out
}
