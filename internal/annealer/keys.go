package annealer

import (
	"fmt"
	"strconv"
	"strings"
)

// Pair identifies a pairwise coefficient by its two variable indices.
// Diagonal entries use I == J. Pairs are stored exactly as given; no
// canonical ordering is applied, so (0,1) and (1,0) are distinct keys.
type Pair struct {
	I int
	J int
}

// ParsePair parses a textual coefficient key of the form "i,j", optionally
// parenthesized, into a Pair. Whitespace around the indices is tolerated,
// so "0,1", "(0,1)" and "( 0, 1 )" all parse to the same value.
func ParsePair(key string) (Pair, error) {
	trimmed := strings.Trim(strings.TrimSpace(key), "()")

	left, right, found := strings.Cut(trimmed, ",")
	if !found {
		return Pair{}, invalidKeyError(key)
	}

	i, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return Pair{}, invalidKeyError(key)
	}

	j, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return Pair{}, invalidKeyError(key)
	}

	return Pair{I: i, J: j}, nil
}

// parseIndex parses a textual linear-bias key into a variable index.
func parseIndex(key string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil {
		return 0, &InvalidArgumentError{
			Reason: fmt.Sprintf("Invalid variable index %q: expected an integer", key),
		}
	}

	return i, nil
}

func invalidKeyError(key string) *InvalidArgumentError {
	return &InvalidArgumentError{
		Reason: fmt.Sprintf("Invalid coefficient key %q: expected 'i,j' or '(i,j)'", key),
	}
}
