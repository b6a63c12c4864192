// Package strtask holds small string helpers: joining, trimming, casing,
// splitting and a playing-card index lookup.
package strtask

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrNegativeCount = errors.New("negative repeat count")

func Concat(a, b string) string { return a + b }

// Length counts runes, not bytes.
func Length(s string) int { return utf8.RuneCountInString(s) }

// Greeting returns "Hello, <first> <last>!".
func Greeting(first, last string) string {
	return fmt.Sprintf("Hello, %s %s!", first, last)
}

// ExtractName undoes Greeting.
func ExtractName(s string) string {
	s = strings.Replace(s, "Hello, ", "", 1)
	s = strings.Replace(s, "!", "", 1)
	return strings.TrimSpace(s)
}

// FirstChar returns the first rune of s, or "" when s is empty.
func FirstChar(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}

func Trim(s string) string { return strings.TrimSpace(s) }

func Repeat(s string, n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	return strings.Repeat(s, n), nil
}

// RemoveFirst removes the first literal occurrence of sub from s.
func RemoveFirst(s, sub string) string {
	return strings.Replace(s, sub, "", 1)
}

var nonWord = regexp.MustCompile(`\W`)

// UnbracketTag strips every non-word character, so "<div>" becomes "div".
func UnbracketTag(s string) string {
	return nonWord.ReplaceAllString(s, "")
}

func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// SplitEmails splits a semicolon-delimited address list.
func SplitEmails(s string) []string {
	return strings.Split(s, ";")
}

// IsString reports whether v is a string or a non-nil *string.
func IsString(v any) bool {
	switch t := v.(type) {
	case string:
		return true
	case *string:
		return t != nil
	default:
		return false
	}
}
