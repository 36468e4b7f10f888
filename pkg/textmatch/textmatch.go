// Copyright (c) 2026 Quran API. All rights reserved.

// Package textmatch implements the substring predicates used when searching
// Quran text, tafsir and reciter names outside of the database.
//
// # Semantics
//
// [ContainsFold] mirrors a MongoDB $regex with the "i" option over an escaped
// pattern: the needle is a literal, and comparison uses Unicode case folding.
// Arabic script has no case, so folding only affects Latin transliterations
// and English translations.
package textmatch

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns the Unicode case-folded form of s.
func Fold(s string) string {
	// A Caser holds state, so one is built per call.
	return cases.Fold().String(s)
}

// ContainsFold reports whether needle occurs in haystack ignoring case.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}

// AnyContainsFold reports whether needle occurs in any of the haystacks.
func AnyContainsFold(needle string, haystacks ...string) bool {
	folded := Fold(needle)
	for _, haystack := range haystacks {
		if strings.Contains(Fold(haystack), folded) {
			return true
		}
	}
	return false
}

// AnyContains is the case-sensitive variant of [AnyContainsFold].
func AnyContains(needle string, haystacks ...string) bool {
	for _, haystack := range haystacks {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
