package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"+221771234567",
		"+33 6 12 34 56 78",
		"(221) 77-123-4567",
	}
	for _, phone := range valid {
		assert.True(t, ValidatePhone(phone), "expected %q to be valid", phone)
	}

	invalid := []string{
		"",
		"abc",
		"++221771234567",
		"+0123456",
	}
	for _, phone := range invalid {
		assert.False(t, ValidatePhone(phone), "expected %q to be invalid", phone)
	}
}

func TestGenerateRandomString(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		ref := GenerateRandomString(6)
		assert.Len(t, ref, 6)
		for _, ch := range ref {
			assert.Contains(t, referenceAlphabet, string(ch))
		}
		seen[ref] = true
	}
	// Collisions across 20 draws of a 32^6 space would point at a broken generator
	assert.Greater(t, len(seen), 1)
}
