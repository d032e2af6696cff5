// Package identity derives the pseudonymous join key that links
// pre-registration cleaning activity to a member account after sign-up.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash computes the deterministic identity hash for a person: the first three
// letters of the first and last names plus the last four phone digits,
// uppercased, concatenated and SHA-256 hashed to lowercase hex.
//
// The function is total: empty or short inputs simply produce a shorter
// concatenation before hashing. The reduced input space makes collisions
// between distinct people possible; that is an accepted property of this
// scheme, which is a convenience join key rather than an identifier.
func Hash(firstName, lastName, phoneNumber string) string {
	key := joinKey(firstName, lastName, phoneNumber)
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// joinKey builds the normalized pre-hash concatenation.
func joinKey(firstName, lastName, phoneNumber string) string {
	return strings.ToUpper(firstLetters(firstName, 3)+firstLetters(lastName, 3)) + lastDigits(phoneNumber, 4)
}

// firstLetters strips non-alphabetic characters and keeps at most n of the
// remainder. No padding when fewer are available.
func firstLetters(s string, n int) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
			if b.Len() == n {
				break
			}
		}
	}
	return b.String()
}

// lastDigits strips non-digit characters and keeps at most n from the end.
func lastDigits(s string, n int) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) > n {
		return digits[len(digits)-n:]
	}
	return digits
}
