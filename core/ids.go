package core

import (
	"fmt"
	"strings"
)

// ParseSignedID splits a signed id into its bare id and orientation.
//
// A well-formed id is a non-empty bare id followed by exactly one '+' or '-'.
// "12+" and "utig4-1-" are valid; "12", "+", "12+-" are not.
func ParseSignedID(id string) (string, Sign, error) {
	if len(id) < 2 {
		return "", 0, fmt.Errorf("%w: %q", ErrMalformedID, id)
	}
	sign := Sign(id[len(id)-1])
	if sign != Plus && sign != Minus {
		return "", 0, fmt.Errorf("%w: %q has no trailing sign", ErrMalformedID, id)
	}
	bare := id[:len(id)-1]
	if strings.HasSuffix(bare, "+") || strings.HasSuffix(bare, "-") {
		return "", 0, fmt.Errorf("%w: %q has more than one sign", ErrMalformedID, id)
	}

	return bare, sign, nil
}

// FlipID returns id with its orientation reversed.
func FlipID(id string) (string, error) {
	bare, sign, err := ParseSignedID(id)
	if err != nil {
		return "", err
	}
	return bare + sign.Opposite().String(), nil
}

// EdgeKey is the lookup key of a directed adjacency from a to b.
func EdgeKey(from, to string) string {
	return from + "->" + to
}
