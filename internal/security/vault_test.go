package security_test

import (
	"testing"

	"github.com/ljacquet/patrimoine-backend/internal/security"
)

const testKey = "cw_0x689RpI-jtRR7oE8h_eQsKImvJapLeSbXpwF4e4="

// TestVault tests the credential encryption round trip.
//
// WHY: Exchange secrets are stored encrypted at rest; the vault must round
// trip plaintext through a fernet token and reject tokens minted under a
// different key.
func TestVault(t *testing.T) {
	t.Run("round trips plaintext", func(t *testing.T) {
		vault, err := security.NewVault(testKey)
		if err != nil {
			t.Fatalf("NewVault() returned unexpected error: %v", err)
		}

		token, err := vault.Encrypt("my-api-secret")
		if err != nil {
			t.Fatalf("Encrypt() returned unexpected error: %v", err)
		}
		if token == "my-api-secret" {
			t.Fatal("Encrypt() returned the plaintext")
		}

		plaintext, err := vault.Decrypt(token)
		if err != nil {
			t.Fatalf("Decrypt() returned unexpected error: %v", err)
		}
		if plaintext != "my-api-secret" {
			t.Errorf("Expected round-tripped secret, got %q", plaintext)
		}
	})

	t.Run("rejects tokens from another key", func(t *testing.T) {
		vault, err := security.NewVault(testKey)
		if err != nil {
			t.Fatalf("NewVault() returned unexpected error: %v", err)
		}
		other, err := security.NewVault("UGF0cmltb2luZVRlc3RLZXlQYXRyaW1vaW5lVGVzdCE=")
		if err != nil {
			t.Fatalf("NewVault() with second key returned unexpected error: %v", err)
		}

		token, err := other.Encrypt("secret")
		if err != nil {
			t.Fatalf("Encrypt() returned unexpected error: %v", err)
		}

		if _, err := vault.Decrypt(token); err == nil {
			t.Error("Expected decryption under the wrong key to fail")
		}
	})

	t.Run("rejects an invalid key", func(t *testing.T) {
		if _, err := security.NewVault("not-a-key"); err == nil {
			t.Error("Expected error for malformed key")
		}
	})
}
