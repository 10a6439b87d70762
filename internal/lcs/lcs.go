// Package lcs finds the longest common run of words shared by a set of
// names. Buildgen uses it to trim a noisy common prefix or suffix from
// member names when deriving setter names, so that fields like UserName,
// UserAge, and UserEmail produce the setters Name, Age, and Email.
package lcs

import (
	"cmp"
	"slices"
	"strings"
)

// CommonWordPrefix returns the longest common prefix of the names based on
// word boundaries detected by [SplitWords]. It never cuts a word in half:
// the common prefix of MemberName and MemberNationality is "Member", not
// "MemberNa".
func CommonWordPrefix(names []string) string {
	var words [][]string
	for _, name := range names {
		words = append(words, SplitWords(name))
	}
	return strings.Join(commonWords(words), "")
}

// CommonWordSuffix returns the longest common suffix of the names based on
// word boundaries detected by [SplitWords].
func CommonWordSuffix(names []string) string {
	var words [][]string
	for _, name := range names {
		reversed := SplitWords(name)
		slices.Reverse(reversed)
		words = append(words, reversed)
	}

	suffix := commonWords(words)
	slices.Reverse(suffix)
	return strings.Join(suffix, "")
}

// commonWords returns the longest common prefix of the word slices. The
// longest common prefix of a set equals the longest common prefix of its
// lexicographically smallest and largest elements, so only those two need
// to be compared.
func commonWords(words [][]string) []string {
	if len(words) == 0 {
		return nil
	}

	cmpFn := func(a, b []string) int {
		for i := 0; i < min(len(a), len(b)); i++ {
			if c := cmp.Compare(a[i], b[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(a), len(b))
	}

	lo := slices.MinFunc(words, cmpFn)
	hi := slices.MaxFunc(words, cmpFn)

	for i := range lo {
		if i >= len(hi) || lo[i] != hi[i] {
			return lo[:i]
		}
	}
	return lo
}

// SplitWords splits a name into words at character transitions:
//   - uppercase after lowercase: "userID" -> "user" + "ID"
//   - uppercase before lowercase: "HTTPServer" -> "HTTP" + "Server"
//   - around underscores: "send_nowait" -> "send" + "_" + "nowait"
//   - between letters and digits: "file2name" -> "file" + "2" + "name"
func SplitWords(name string) []string {
	var words []string

	start := 0
	for i := 1; i < len(name); i++ {
		var next byte
		if i+1 < len(name) {
			next = name[i+1]
		}

		if isWordBoundary(name[i-1], name[i], next) {
			words = append(words, name[start:i])
			start = i
		}
	}
	if start < len(name) {
		words = append(words, name[start:])
	}
	return words
}

// isWordBoundary reports whether a word boundary lies between prev and
// curr. next is the byte after curr, or zero at the end of the name.
func isWordBoundary(prev, curr, next byte) bool {
	switch {
	case isLower(prev) && isUpper(curr):
		// camelCase transition
		return true
	case isUpper(curr) && isLower(next):
		// end of an uppercase acronym: "HTTPServer" -> "HTTP" | "Server"
		return true
	case prev != '_' && curr == '_', prev == '_' && curr != '_':
		return true
	case isLetter(prev) && isDigit(curr), isDigit(prev) && isLetter(curr):
		return true
	}
	return false
}

func isLower(b byte) bool  { return b >= 'a' && b <= 'z' }
func isUpper(b byte) bool  { return b >= 'A' && b <= 'Z' }
func isLetter(b byte) bool { return isLower(b) || isUpper(b) }
func isDigit(b byte) bool  { return b >= '0' && b <= '9' }
