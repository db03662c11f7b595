package password

import (
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "regular password", password: "password123"},
		{name: "password with symbols", password: "p@ssw0rd#$%^&+="},
		{name: "long password", password: "verylongpasswordwithmorethanfiftycharactersinsideit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := Hash(tt.password)
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}
			if hash == "" {
				t.Fatal("Hash() returned empty hash")
			}
			if hash == tt.password {
				t.Fatal("Hash() must not store the raw password")
			}

			if err := Verify(hash, tt.password); err != nil {
				t.Errorf("Verify() failed for original password: %v", err)
			}
			if err := Verify(hash, tt.password+"x"); err == nil {
				t.Error("Verify() succeeded for wrong password")
			}
		})
	}
}

func TestVerify_EmptyPassword(t *testing.T) {
	hash, err := Hash("correct_password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if err := Verify(hash, ""); err == nil {
		t.Error("Verify() should fail for empty password")
	}
}

func TestHash_DifferentPasswordsProduceDifferentHashes(t *testing.T) {
	h1, err := Hash("password1")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	h2, err := Hash("password2")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if h1 == h2 {
		t.Error("different passwords produced identical hashes")
	}
}
