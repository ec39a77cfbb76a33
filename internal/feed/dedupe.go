package feed

import (
	"github.com/gabapcia/chainscope/internal/pkg/types"
)

// Deduplicate returns items with every repeated hash removed, keeping the
// first occurrence and the original order. The input is not modified.
func Deduplicate(items []DecodedTx) []DecodedTx {
	seen := types.NewSet[string]()
	out := make([]DecodedTx, 0, len(items))
	for _, item := range items {
		if seen.Insert(string(item.Hash)) {
			out = append(out, item)
		}
	}

	return out
}
