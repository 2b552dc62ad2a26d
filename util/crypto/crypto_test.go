package crypto

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "simple password", password: "fzx"},
		{name: "long password", password: "correct horse battery staple with extra length"},
		{name: "empty password", password: ""},
		{name: "unicode password", password: "пароль密码🔑"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored, err := HashPassword(tt.password)
			if err != nil {
				t.Fatalf("HashPassword() error = %v", err)
			}
			if !CheckPasswordHash(stored, tt.password) {
				t.Error("CheckPasswordHash() = false for matching password")
			}
			if CheckPasswordHash(stored, tt.password+"x") {
				t.Error("CheckPasswordHash() = true for wrong password")
			}
		})
	}
}

func TestHashPasswordStoredForm(t *testing.T) {
	stored, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	hashPart, saltPart, ok := strings.Cut(stored, ".")
	if !ok {
		t.Fatalf("stored form %q missing separator", stored)
	}
	if len(hashPart) != keyBytes*2 {
		t.Errorf("hash part length = %d, expected %d hex chars", len(hashPart), keyBytes*2)
	}
	if len(saltPart) != saltBytes*2 {
		t.Errorf("salt part length = %d, expected %d hex chars", len(saltPart), saltBytes*2)
	}
}

func TestHashPasswordDistinctSalts(t *testing.T) {
	first, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	second, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password produced identical stored forms")
	}
	if !CheckPasswordHash(first, "secret") || !CheckPasswordHash(second, "secret") {
		t.Error("both stored forms must verify against the original password")
	}
}

func TestCheckPasswordHashMalformedInput(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{name: "empty", stored: ""},
		{name: "no separator", stored: "deadbeef"},
		{name: "empty hash", stored: ".abcdef"},
		{name: "empty salt", stored: "deadbeef."},
		{name: "non-hex hash", stored: "zzzz.abcdef"},
		{name: "wrong key length", stored: "deadbeef.abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if CheckPasswordHash(tt.stored, "anything") {
				t.Errorf("CheckPasswordHash(%q) = true, expected false", tt.stored)
			}
		})
	}
}
