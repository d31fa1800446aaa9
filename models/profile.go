package models

// Profile is the persisted local user identity record. It is created on
// first run, loaded once at startup, and treated as read-only afterwards;
// re-running the setup flow is the only way to change it.
type Profile struct {
	// Account is the GitHub account name entered during setup.
	Account string `json:"account"`

	// ObfuscatedToken is a one-way, hash-derived stand-in for the raw
	// token: base64(SHA-256(token+salt)) truncated to 32 characters.
	// It is NOT reversible and is not a usable GitHub credential; it is
	// kept for compatibility with the original profile format.
	ObfuscatedToken string `json:"obfuscated_token"`

	// CreatedAt is the profile creation timestamp in RFC 3339 form.
	CreatedAt string `json:"created_at"`

	// Notifications toggles termux-notification style alerts after
	// long-running commands. Persisted so the choice survives restarts.
	Notifications bool `json:"notifications"`
}

// IsComplete reports whether the profile carries the minimum fields a
// loaded profile must have. Load falls back to the setup flow when false.
func (p Profile) IsComplete() bool {
	return p.Account != "" && len(p.ObfuscatedToken) == 32
}
