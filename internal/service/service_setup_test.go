package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghpocket/ghpocket/internal/crypto"
	"github.com/ghpocket/ghpocket/internal/logger"
	"github.com/ghpocket/ghpocket/models"
)

func newTestSetupSvc(t *testing.T) (*setupService, *crypto.TokenVault) {
	t.Helper()
	vault := crypto.NewTokenVault(filepath.Join(t.TempDir(), "vault.json"))
	svc := NewSetupService(nil, vault, logger.Nop()).(*setupService)
	return svc, vault
}

func TestSetupService_Credential_NoVaultFallsBack(t *testing.T) {
	svc, _ := newTestSetupSvc(t)

	profile := models.Profile{Account: "octocat", ObfuscatedToken: "obfuscated-token-value-32-chars!"}

	got := svc.Credential(profile, "passphrase")
	assert.Equal(t, profile.ObfuscatedToken, got)
	assert.False(t, svc.VaultExists())
}

func TestSetupService_Credential_VaultUnseals(t *testing.T) {
	svc, vault := newTestSetupSvc(t)
	require.NoError(t, vault.Seal("ghp_realtoken", "correct horse"))

	profile := models.Profile{Account: "octocat", ObfuscatedToken: "obfuscated-token-value-32-chars!"}

	got := svc.Credential(profile, "correct horse")
	assert.Equal(t, "ghp_realtoken", got)
	assert.True(t, svc.VaultExists())
}

func TestSetupService_Credential_WrongPassphraseFallsBack(t *testing.T) {
	svc, vault := newTestSetupSvc(t)
	require.NoError(t, vault.Seal("ghp_realtoken", "correct horse"))

	profile := models.Profile{Account: "octocat", ObfuscatedToken: "obfuscated-token-value-32-chars!"}

	got := svc.Credential(profile, "wrong")
	assert.Equal(t, profile.ObfuscatedToken, got)
}

func TestSetupService_Credential_EmptyPassphraseSkipsVault(t *testing.T) {
	svc, vault := newTestSetupSvc(t)
	require.NoError(t, vault.Seal("ghp_realtoken", "correct horse"))

	profile := models.Profile{Account: "octocat", ObfuscatedToken: "obfuscated-token-value-32-chars!"}

	got := svc.Credential(profile, "")
	assert.Equal(t, profile.ObfuscatedToken, got)
}
