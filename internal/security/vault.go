// Package security wraps fernet symmetric encryption for secrets at rest.
// Exchange API credentials are the only consumers; plaintext never reaches
// the repository layer.
package security

import (
	"fmt"

	"github.com/fernet/fernet-go"
)

// Vault encrypts and decrypts short secrets with a single fernet key.
type Vault struct {
	key *fernet.Key
}

// NewVault creates a Vault from a base64-encoded fernet key.
func NewVault(encodedKey string) (*Vault, error) {
	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode fernet key: %w", err)
	}
	return &Vault{key: key}, nil
}

// Encrypt returns the fernet token for a plaintext secret.
func (v *Vault) Encrypt(plaintext string) (string, error) {
	token, err := fernet.EncryptAndSign([]byte(plaintext), v.key)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt secret: %w", err)
	}
	return string(token), nil
}

// Decrypt verifies and decrypts a fernet token. Tokens do not expire; the
// stored credentials stay valid until the user replaces them.
func (v *Vault) Decrypt(token string) (string, error) {
	plaintext := fernet.VerifyAndDecrypt([]byte(token), 0, []*fernet.Key{v.key})
	if plaintext == nil {
		return "", fmt.Errorf("failed to decrypt secret: invalid token")
	}
	return string(plaintext), nil
}
