package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/argon2"
)

// ErrVaultNotFound is returned by [TokenVault.Open] when no vault file has
// been written yet.
var ErrVaultNotFound = errors.New("token vault not found")

// ErrWrongPassphrase is returned by [TokenVault.Open] when the GCM
// authentication tag does not verify, which almost always means the
// passphrase was wrong.
var ErrWrongPassphrase = errors.New("wrong vault passphrase")

// TokenVault stores the RAW GitHub token encrypted at rest, next to the
// profile file. The profile itself only ever holds the irreversible
// obfuscated value; the vault is what makes authenticated API calls
// actually work.
//
// The sealing key is derived from a user passphrase with Argon2id and the
// token is wrapped with AES-256-GCM: blob = nonce ‖ ciphertext.
type TokenVault struct {
	path string

	// Argon2id tuning parameters. Kept in the struct so they can be
	// lowered for constrained mobile devices.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// vaultFile is the on-disk JSON layout of a sealed vault.
type vaultFile struct {
	Salt string `json:"salt"`
	Blob string `json:"blob"`
}

// NewTokenVault constructs a [TokenVault] persisting to path, with Argon2id
// parameters suitable for phone-class hardware (32 MiB, 1 iteration,
// 2 threads, 256-bit key).
func NewTokenVault(path string) *TokenVault {
	return &TokenVault{
		path:         path,
		argonTime:    1,
		argonMemory:  32 * 1024, // 32 MiB
		argonThreads: 2,
		argonKeyLen:  32, // 256 bits
	}
}

// Seal encrypts rawToken under a key derived from passphrase and writes the
// vault file, creating the containing directory if needed. Any previous
// vault content is replaced.
func (v *TokenVault) Seal(rawToken, passphrase string) error {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return fmt.Errorf("generate vault salt: %w", err)
	}

	key := v.deriveKey(passphrase, salt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}

	// Prepend the nonce so Open can split it out again.
	blob := append(nonce, gcm.Seal(nil, nonce, []byte(rawToken), nil)...)

	payload, err := json.MarshalIndent(vaultFile{
		Salt: base64.StdEncoding.EncodeToString(salt),
		Blob: base64.StdEncoding.EncodeToString(blob),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode vault: %w", err)
	}

	if dir := filepath.Dir(v.path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create vault dir: %w", err)
		}
	}

	if err = os.WriteFile(v.path, payload, 0o600); err != nil {
		return fmt.Errorf("write vault file: %w", err)
	}

	return nil
}

// Open reads the vault file and decrypts the raw token with a key derived
// from passphrase. Returns [ErrVaultNotFound] if no vault exists and
// [ErrWrongPassphrase] if authentication fails.
func (v *TokenVault) Open(passphrase string) (string, error) {
	data, err := os.ReadFile(v.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrVaultNotFound
		}
		return "", fmt.Errorf("read vault file: %w", err)
	}

	var vf vaultFile
	if err = json.Unmarshal(data, &vf); err != nil {
		return "", fmt.Errorf("decode vault file: %w", err)
	}

	salt, err := base64.StdEncoding.DecodeString(vf.Salt)
	if err != nil {
		return "", fmt.Errorf("decode vault salt: %w", err)
	}
	blob, err := base64.StdEncoding.DecodeString(vf.Blob)
	if err != nil {
		return "", fmt.Errorf("decode vault blob: %w", err)
	}

	key := v.deriveKey(passphrase, salt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	if len(blob) < gcm.NonceSize() {
		return "", fmt.Errorf("vault blob too short")
	}

	nonce, ciphertext := blob[:gcm.NonceSize()], blob[gcm.NonceSize():]

	// An auth-tag mismatch here almost always means a wrong passphrase.
	token, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrWrongPassphrase
	}

	return string(token), nil
}

// Exists reports whether a vault file has been written.
func (v *TokenVault) Exists() bool {
	_, err := os.Stat(v.path)
	return err == nil
}

func (v *TokenVault) deriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(passphrase),
		salt,
		v.argonTime,
		v.argonMemory,
		v.argonThreads,
		v.argonKeyLen,
	)
}
