// Package validate holds the signup and profile-update field checks. All
// three predicates are total over string input and carry the exact rules the
// frontend forms were written against.
package validate

import (
	"regexp"
	"strings"
	"unicode"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,7}$`)

// symbols is the closed set of special characters a password may contain.
const symbols = "~`!@#$%^&*()_-+={[}]|:;'<,>.?/"

// IsValidEmail reports whether s is a well-formed address of the shape
// local@domain.tld with a 2-7 letter final label. The whole string must
// match; partial matches are rejected.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPhone reports whether s is an 8-digit phone number. Spaces are
// stripped before checking, so "1234 5678" is accepted.
func IsValidPhone(s string) bool {
	s = strings.ReplaceAll(s, " ", "")
	if len(s) != 8 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsStrongPassword reports whether s is at least 8 characters long and
// contains at least one lowercase letter, one uppercase letter, one digit and
// one symbol from the fixed set. Every character must fall into exactly one
// of those four classes, so anything outside the closed alphabet (whitespace,
// unusual punctuation) rejects the password.
func IsStrongPassword(s string) bool {
	runes := []rune(s)
	if len(runes) < 8 {
		return false
	}

	var lower, upper, digit, symbol int
	for _, r := range runes {
		switch {
		case unicode.IsLower(r):
			lower++
		case unicode.IsUpper(r):
			upper++
		case unicode.IsDigit(r):
			digit++
		case strings.ContainsRune(symbols, r):
			symbol++
		}
	}

	return lower >= 1 && upper >= 1 && digit >= 1 && symbol >= 1 &&
		lower+upper+digit+symbol == len(runes)
}
