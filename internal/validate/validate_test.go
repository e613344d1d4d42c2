package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"dora@gmail.com", true},
		{"dora.explorer+sg@my-mail.co", true},
		{"a@b.io", true},
		{"", false},
		{"bad@domain", false},
		{"@gmail.com", false},
		{"dora@sub.gmail.com", true},
		{"dora@.com", false},
		{"dora@gmail.c", false},
		{"dora@gmail.abcdefgh", false}, // final label longer than 7 letters
		{"dora@gmail.c0m", false},      // final label must be alphabetic
		{"dora gmail.com", false},
		{" dora@gmail.com", false}, // whole-string match, no trimming
		{"dora@gmail.com ", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidEmail(tt.email), "email: %q", tt.email)
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"12345678", true},
		{"1234 5678", true},
		{" 1 2 3 4 5 6 7 8 ", true},
		{"", false},
		{"        ", false},
		{"123456789", false},
		{"1234567", false},
		{"1234567a", false},
		{"1234-5678", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidPhone(tt.phone), "phone: %q", tt.phone)
	}
}

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"DoraPW@123", true},
		{"Aa1~Aa1~", true},
		{"", false},
		{"Short1!", false},          // length 7
		{"alllowercase1!", false},   // no uppercase
		{"ALLUPPERCASE1!", false},   // no lowercase
		{"NoDigits!!", false},       // no digit
		{"NoSymbols11", false},      // no symbol
		{"With Space1!", false},     // space is outside the closed alphabet
		{"WithQuote\"1!Aa", false},  // double quote is not in the symbol set
		{"Tab\tChar1!Aa", false},    // control characters rejected
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsStrongPassword(tt.password), "password: %q", tt.password)
	}
}
