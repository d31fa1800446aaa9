package crypto

import (
	"crypto/sha256"
	"encoding/base64"
)

// obfuscationSalt is the fixed salt the original profile format mixed into
// the token hash. Changing it would invalidate every persisted profile.
const obfuscationSalt = "github_termux_salt_2024"

// obfuscatedLen is the persisted width of the obfuscated token.
const obfuscatedLen = 32

// Obfuscate derives the stored stand-in for a raw token:
// base64(SHA-256(raw+salt)) truncated to 32 characters.
//
// The function is deterministic and pure: the same raw input always yields
// the same output. The result is one-way — it cannot be reversed into the
// raw token and it is NOT a usable GitHub credential. It exists only for
// compatibility with the original profile format; real authentication
// material belongs in the [TokenVault].
func Obfuscate(raw string) string {
	h := sha256.New()
	h.Write([]byte(raw))
	h.Write([]byte(obfuscationSalt))
	sum := h.Sum(nil)

	encoded := base64.StdEncoding.EncodeToString(sum)
	return encoded[:obfuscatedLen]
}
