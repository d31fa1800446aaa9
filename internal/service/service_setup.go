package service

import (
	"context"

	"github.com/ghpocket/ghpocket/internal/config"
	"github.com/ghpocket/ghpocket/internal/crypto"
	"github.com/ghpocket/ghpocket/internal/logger"
	"github.com/ghpocket/ghpocket/models"
)

type setupService struct {
	profiles *config.ProfileStore
	vault    *crypto.TokenVault
	logger   *logger.Logger
}

// NewSetupService wires the profile store and token vault into a
// [SetupService].
func NewSetupService(profiles *config.ProfileStore, vault *crypto.TokenVault, log *logger.Logger) SetupService {
	return &setupService{profiles: profiles, vault: vault, logger: log}
}

func (s *setupService) EnsureProfile(ctx context.Context) (models.Profile, error) {
	return s.profiles.Load(ctx)
}

func (s *setupService) VaultExists() bool {
	return s.vault.Exists()
}

// Credential prefers the raw token from the vault. When no vault exists,
// the passphrase is empty, or unsealing fails, it falls back to the
// profile's obfuscated token; API calls made with it fail authentication
// and surface as empty results.
func (s *setupService) Credential(profile models.Profile, passphrase string) string {
	if passphrase != "" && s.vault.Exists() {
		raw, err := s.vault.Open(passphrase)
		if err == nil {
			s.logger.Debug().Str("func", "Credential").Msg("vault unsealed, using raw token")
			return raw
		}
		s.logger.Warn().Err(err).Str("func", "Credential").Msg("vault unseal failed, falling back to stored token")
	}

	return profile.ObfuscatedToken
}
