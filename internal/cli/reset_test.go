package cli

import (
	"strings"
	"testing"
)

func TestGenerateTemporaryPasswordLengths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		requested int
		wantLen   int
	}{
		{name: "below floor", requested: 4, wantLen: 8},
		{name: "at floor", requested: 8, wantLen: 8},
		{name: "reset default", requested: 12, wantLen: 12},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			password, err := generateTemporaryPassword(test.requested)
			if err != nil {
				t.Fatalf("generateTemporaryPassword(%d) returned error: %v", test.requested, err)
			}
			if len(password) != test.wantLen {
				t.Fatalf("generateTemporaryPassword(%d) len = %d, want %d", test.requested, len(password), test.wantLen)
			}
		})
	}
}

func TestGenerateTemporaryPasswordSkipsAmbiguousCharacters(t *testing.T) {
	t.Parallel()

	// The password is read over the shoulder or dictated, so look-alike
	// characters stay out of the alphabet.
	password, err := generateTemporaryPassword(64)
	if err != nil {
		t.Fatalf("generateTemporaryPassword returned error: %v", err)
	}
	for _, char := range password {
		if strings.ContainsRune("Il1O0", char) {
			t.Fatalf("password %q contains ambiguous char %q", password, char)
		}
	}
}
