package assets

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// NativeAsset is the reserved sentinel address a chain's native asset is
// represented by once a wrapped-native token has been unwrapped.
var NativeAsset = common.Address{}.Hex()

// Reorderer arranges parallel per-token arrays into canonical address order.
// All arrays cross this boundary as strings so that arbitrary-precision
// values survive the round trip without loss; callers reparse afterwards.
type Reorderer struct {
	WrappedNative string
	Unwrap        bool
}

// Rewrite maps the wrapped native asset to the native sentinel when
// unwrapping is requested. Any other address passes through unchanged.
func (r Reorderer) Rewrite(address string) string {
	if r.Unwrap && r.WrappedNative != "" && address == r.WrappedNative {
		return NativeAsset
	}
	return address
}

// Sort returns the token addresses and every companion array reordered by a
// single permutation derived from the rewritten addresses, compared
// case-insensitively. Inputs are never mutated. When no wrapped native
// address is configured the original order is preserved.
func (r Reorderer) Sort(tokens []string, companions ...[]string) ([]string, [][]string, error) {
	for i, companion := range companions {
		if len(companion) != len(tokens) {
			return nil, nil, fmt.Errorf("companion %d has %d entries, want %d", i, len(companion), len(tokens))
		}
	}

	rewritten := make([]string, len(tokens))
	for i, token := range tokens {
		rewritten[i] = r.Rewrite(token)
	}

	order := make([]int, len(tokens))
	for i := range order {
		order[i] = i
	}
	if r.WrappedNative != "" {
		sort.SliceStable(order, func(a, b int) bool {
			return strings.ToLower(rewritten[order[a]]) < strings.ToLower(rewritten[order[b]])
		})
	}

	sortedTokens := make([]string, len(tokens))
	for dst, src := range order {
		sortedTokens[dst] = rewritten[src]
	}

	sortedCompanions := make([][]string, len(companions))
	for c, companion := range companions {
		sorted := make([]string, len(companion))
		for dst, src := range order {
			sorted[dst] = companion[src]
		}
		sortedCompanions[c] = sorted
	}

	return sortedTokens, sortedCompanions, nil
}
