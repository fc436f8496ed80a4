package errors

import (
	"unicode"
	"unicode/utf8"
)

// ValidateSeparator checks that r can delimit cells of an adjacency matrix.
//
// A separator must be a single printable rune that cannot appear inside a
// weight or terminate a row:
//   - No line breaks (rows are newline-terminated)
//   - No digits, '+' or '-' (they belong to weights)
//   - No whitespace (cells are trimmed before parsing)
//   - No invalid runes
func ValidateSeparator(r rune) error {
	if r == utf8.RuneError || !utf8.ValidRune(r) {
		return New(ErrCodeInvalidInput, "separator is not a valid character")
	}
	if r == '\n' || r == '\r' {
		return New(ErrCodeInvalidInput, "separator cannot be a line break")
	}
	if unicode.IsSpace(r) || unicode.IsControl(r) {
		return New(ErrCodeInvalidInput, "separator cannot be whitespace or a control character")
	}
	if unicode.IsDigit(r) || r == '+' || r == '-' {
		return New(ErrCodeInvalidInput, "separator %q would be read as part of a weight", r)
	}
	return nil
}

// ParseSeparator converts a user-supplied string (flag, env, config) into a
// separator rune. The string must hold exactly one character.
func ParseSeparator(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, New(ErrCodeInvalidInput, "separator must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if err := ValidateSeparator(r); err != nil {
		return 0, err
	}
	return r, nil
}

// ValidateVertexNumber rejects negative vertex numbers.
func ValidateVertexNumber(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "vertex number must not be negative, got %d", n)
	}
	return nil
}
