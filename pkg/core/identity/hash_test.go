package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinKey(t *testing.T) {
	tests := []struct {
		name        string
		firstName   string
		lastName    string
		phoneNumber string
		want        string
	}{
		{"plain", "David", "Ulbrich", "801-971-9802", "DAVULB9802"},
		{"already short", "Al", "Po", "42", "ALPO42"},
		{"punctuation stripped", "Mary-Jane", "O'Neill", "(555) 123-4567", "MARONE4567"},
		{"digits in names ignored", "D4vid", "Ulbr1ch", "9802", "DVIULB9802"},
		{"empty inputs", "", "", "", ""},
		{"phone only", "", "", "801-971-9802", "9802"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, joinKey(tt.firstName, tt.lastName, tt.phoneNumber))
		})
	}
}

func TestHash_KnownVector(t *testing.T) {
	// sha256("DAVULB9802")
	const want = "957652c0fd0982889395cf96679cdd8d8235d57a00acc862fa72d6560c04d00b"
	assert.Equal(t, want, Hash("David", "Ulbrich", "801-971-9802"))
}

func TestHash_Deterministic(t *testing.T) {
	first := Hash("David", "Ulbrich", "801-971-9802")
	second := Hash("David", "Ulbrich", "801-971-9802")
	assert.Equal(t, first, second)
}

func TestHash_NormalizationCollapsesEquivalentInputs(t *testing.T) {
	a := Hash("david", "ULBRICH", "8019719802")
	b := Hash("David R.", "Ulbrich-Smith", "+1 801 971 9802")
	assert.Equal(t, a, b, "inputs that normalize identically must hash identically")
}

func TestHash_EmptyInputsStillHash(t *testing.T) {
	// sha256("")
	const want = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	assert.Equal(t, want, Hash("", "", ""))
}
