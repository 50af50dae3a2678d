// Package crypto contains substitution cipher encryption and decryption
package crypto

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const alphabetSize = 26

// ErrInvalidKey is matched by every *InvalidKeyError via errors.Is.
var ErrInvalidKey = errors.New("invalid key")

// ErrKeyAndShift is returned by New when both a key and a shift are given.
var ErrKeyAndShift = errors.New("key and shift are mutually exclusive")

// InvalidKeyError reports a key that cannot be normalized into a shift schedule.
type InvalidKeyError struct {
	Key    string
	Reason string
}

func (e *InvalidKeyError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("invalid key: %s", e.Reason)
	}
	return fmt.Sprintf("invalid key %q: %s", e.Key, e.Reason)
}

func (e *InvalidKeyError) Is(target error) bool {
	return target == ErrInvalidKey
}

// SubstitutionCipher shifts each ASCII letter by the key schedule entry at
// the character's position. Every character, letter or not, consumes one
// schedule position. A SubstitutionCipher is immutable and safe for
// concurrent use.
type SubstitutionCipher struct {
	shifts []int
}

// NewSubstitutionCipher builds a polyalphabetic cipher from an alphabetic key.
func NewSubstitutionCipher(key string) (*SubstitutionCipher, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	shifts := make([]int, 0, len(key))
	for _, r := range key {
		shifts = append(shifts, int(toUpper(r)-'A'))
	}

	return &SubstitutionCipher{shifts: shifts}, nil
}

// NewShiftCipher builds the monoalphabetic (Caesar) cipher. Negative shifts
// are normalized to their non-negative residue.
func NewShiftCipher(shift int) *SubstitutionCipher {
	return &SubstitutionCipher{shifts: []int{normalizeShift(shift)}}
}

// New picks the monoalphabetic form when shift is set and the polyalphabetic
// form otherwise. Setting both is an error.
func New(key string, shift *int) (*SubstitutionCipher, error) {
	switch {
	case key != "" && shift != nil:
		return nil, ErrKeyAndShift
	case shift != nil:
		return NewShiftCipher(*shift), nil
	}
	return NewSubstitutionCipher(key)
}

// ValidateKey validates if the key is suitable for the substitution cipher
func ValidateKey(key string) error {
	if len(key) == 0 {
		return &InvalidKeyError{Reason: "key cannot be empty"}
	}
	for i, r := range key {
		if !isASCIILetter(r) {
			return &InvalidKeyError{
				Key:    key,
				Reason: fmt.Sprintf("non-alphabetic symbol %q at byte offset %d", r, i),
			}
		}
	}
	return nil
}

// Encrypt shifts each letter by the schedule entry at its position.
func (sc *SubstitutionCipher) Encrypt(plaintext string) string {
	return transform(plaintext, sc.shifts)
}

// Decrypt runs the encryption transform with the complemented schedule.
func (sc *SubstitutionCipher) Decrypt(ciphertext string) string {
	return transform(ciphertext, inverseShifts(sc.shifts))
}

// Inverse returns the cipher whose Encrypt is this cipher's Decrypt.
func (sc *SubstitutionCipher) Inverse() *SubstitutionCipher {
	return &SubstitutionCipher{shifts: inverseShifts(sc.shifts)}
}

// Key returns the normalized uppercase key.
func (sc *SubstitutionCipher) Key() string {
	var b strings.Builder
	b.Grow(len(sc.shifts))
	for _, s := range sc.shifts {
		b.WriteByte(byte('A' + s))
	}
	return b.String()
}

// Shifts returns a copy of the shift schedule.
func (sc *SubstitutionCipher) Shifts() []int {
	out := make([]int, len(sc.shifts))
	copy(out, sc.shifts)
	return out
}

// IsMonoalphabetic reports whether the schedule has a single entry.
func (sc *SubstitutionCipher) IsMonoalphabetic() bool {
	return len(sc.shifts) == 1
}

func transform(text string, shifts []int) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	keyLen := len(shifts)

	for i := 0; len(text) > 0; i++ {
		r, size := utf8.DecodeRuneInString(text)
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(shiftRune(r, 'A', shifts[i%keyLen]))
		case r >= 'a' && r <= 'z':
			b.WriteRune(shiftRune(r, 'a', shifts[i%keyLen]))
		default:
			// invalid UTF-8 bytes are copied verbatim
			b.WriteString(text[:size])
		}
		text = text[size:]
	}

	return b.String()
}

func shiftRune(r, base rune, shift int) rune {
	return (r-base+rune(shift))%alphabetSize + base
}

func inverseShifts(shifts []int) []int {
	inv := make([]int, len(shifts))
	for i, s := range shifts {
		inv[i] = (alphabetSize - s) % alphabetSize
	}
	return inv
}

func normalizeShift(shift int) int {
	return ((shift % alphabetSize) + alphabetSize) % alphabetSize
}

func isASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
