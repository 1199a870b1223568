package common

import (
	"slices"
	"strings"
	"unicode"
)

// UniqueSeqs normalises inline sequences: whitespace anywhere is removed,
// letters are uppercased, and empty or repeated entries are dropped. Order
// of first appearance is kept.
func UniqueSeqs(in []string) []string {
	var out []string
	for _, s := range in {
		u := strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return unicode.ToUpper(r)
		}, s)
		if u != "" && !slices.Contains(out, u) {
			out = append(out, u)
		}
	}
	return out
}
