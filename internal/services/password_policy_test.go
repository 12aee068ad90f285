package services

import "testing"

func TestValidatePasswordStrength(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"strong", "Secret1pass", false},
		{"too short", "Ab1", true},
		{"no digit", "Secretpass", true},
		{"no upper", "secret1pass", true},
		{"no lower", "SECRET1PASS", true},
	}
	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			err := ValidatePasswordStrength(testCase.password)
			if (err != nil) != testCase.wantErr {
				t.Fatalf("ValidatePasswordStrength(%q) = %v", testCase.password, err)
			}
		})
	}
}
