package middleware

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/voyantic/sojourn/pkg/domain"
	"github.com/voyantic/sojourn/pkg/ports"
)

const encryptedPrefix = "enc:"

// EncryptionConfig holds the keys for encryption and decryption.
type EncryptionConfig struct {
	// ActiveKey is the key used for encrypting new data.
	// Must be 32 bytes for AES-256.
	ActiveKey []byte

	// FallbackKeys is a list of old keys to try when decryption fails.
	// This enables zero-downtime key rotation.
	FallbackKeys [][]byte
}

type encryptionMiddleware struct {
	next   ports.Store
	config EncryptionConfig
}

// NewEncryptionMiddleware creates a middleware that stores claim reasons
// encrypted with AES-GCM. Reasons are the only free-text field in the
// store and the only one that can carry sensitive details.
func NewEncryptionMiddleware(config EncryptionConfig) Middleware {
	if len(config.ActiveKey) != 32 {
		panic("active key must be 32 bytes (AES-256)")
	}
	return func(next ports.Store) ports.Store {
		return &encryptionMiddleware{next: next, config: config}
	}
}

func (m *encryptionMiddleware) PutClaim(ctx context.Context, c domain.Claim) error {
	ciphertext, err := encrypt([]byte(c.Reason), m.config.ActiveKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt claim reason: %w", err)
	}

	sealed := c
	sealed.Reason = encryptedPrefix + base64.StdEncoding.EncodeToString(ciphertext)
	return m.next.PutClaim(ctx, sealed)
}

func (m *encryptionMiddleware) Claim(ctx context.Context, id string) (domain.Claim, error) {
	c, err := m.next.Claim(ctx, id)
	if err != nil {
		return domain.Claim{}, err
	}
	return m.openClaim(c)
}

func (m *encryptionMiddleware) Claims(ctx context.Context) ([]domain.Claim, error) {
	claims, err := m.next.Claims(ctx)
	if err != nil {
		return nil, err
	}
	for i, c := range claims {
		opened, err := m.openClaim(c)
		if err != nil {
			return nil, err
		}
		claims[i] = opened
	}
	return claims, nil
}

func (m *encryptionMiddleware) openClaim(c domain.Claim) (domain.Claim, error) {
	encoded, ok := strings.CutPrefix(c.Reason, encryptedPrefix)
	if !ok {
		// Claim written before encryption was enabled. Fail secure:
		// enabling encryption on a store with plaintext claims is a
		// configuration error.
		return domain.Claim{}, errors.New("claim reason is missing encrypted envelope")
	}

	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return domain.Claim{}, fmt.Errorf("failed to decode ciphertext base64: %w", err)
	}

	plaintext, err := decryptWithRotation(ciphertext, m.config.ActiveKey, m.config.FallbackKeys)
	if err != nil {
		return domain.Claim{}, fmt.Errorf("failed to decrypt claim reason: %w", err)
	}

	c.Reason = string(plaintext)
	return c, nil
}

func (m *encryptionMiddleware) CurrentQuote(ctx context.Context) (*domain.Quote, error) {
	return m.next.CurrentQuote(ctx)
}

func (m *encryptionMiddleware) SetCurrentQuote(ctx context.Context, q domain.Quote) error {
	return m.next.SetCurrentQuote(ctx, q)
}

func (m *encryptionMiddleware) AppendPolicy(ctx context.Context, p domain.Policy) error {
	return m.next.AppendPolicy(ctx, p)
}

func (m *encryptionMiddleware) Policies(ctx context.Context) ([]domain.Policy, error) {
	return m.next.Policies(ctx)
}

// Helpers

func encrypt(plaintext []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decryptWithRotation(ciphertext []byte, activeKey []byte, fallbackKeys [][]byte) ([]byte, error) {
	// Try active key first
	if plain, err := decrypt(ciphertext, activeKey); err == nil {
		return plain, nil
	}

	// Try fallbacks in order
	for _, key := range fallbackKeys {
		if plain, err := decrypt(ciphertext, key); err == nil {
			return plain, nil
		}
	}

	return nil, errors.New("decryption failed with all available keys")
}

func decrypt(ciphertext []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce := ciphertext[:gcm.NonceSize()]
	ciphertextBytes := ciphertext[gcm.NonceSize():]

	return gcm.Open(nil, nonce, ciphertextBytes, nil)
}
