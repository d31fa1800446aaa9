package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ghpocket/ghpocket/internal/crypto"
	"github.com/ghpocket/ghpocket/internal/logger"
	"github.com/ghpocket/ghpocket/internal/validators"
	"github.com/ghpocket/ghpocket/models"
)

// ProfileStore loads, creates, and persists the local user profile.
//
// Load never fails hard: a missing, unreadable, or corrupt profile file
// falls back to the interactive creation flow, so first run and broken
// state look identical to the caller.
type ProfileStore struct {
	path      string
	prompter  Prompter
	vault     *crypto.TokenVault
	validator validators.Validator
	logger    *logger.Logger

	// now is swapped in tests to pin the creation timestamp.
	now func() time.Time
}

// NewProfileStore constructs a [ProfileStore] persisting to path. vault may
// be nil, in which case the raw token is discarded after obfuscation (the
// original behavior, leaving no usable credential behind).
func NewProfileStore(path string, prompter Prompter, vault *crypto.TokenVault, log *logger.Logger) *ProfileStore {
	return &ProfileStore{
		path:      path,
		prompter:  prompter,
		vault:     vault,
		validator: validators.NewProfileValidator(),
		logger:    log,
		now:       time.Now,
	}
}

// Load reads and decodes the profile file. On absence, a read error, a
// decode error, or an incomplete document it silently falls back to
// [ProfileStore.Create]; the underlying cause is only logged at debug
// level because first run and recoverable corruption are expected states.
func (s *ProfileStore) Load(ctx context.Context) (models.Profile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Debug().Err(err).Str("path", s.path).Msg("profile not readable, starting setup")
		return s.Create(ctx)
	}

	var profile models.Profile
	if err = json.Unmarshal(data, &profile); err != nil {
		s.logger.Debug().Err(err).Str("path", s.path).Msg("profile corrupt, starting setup")
		return s.Create(ctx)
	}

	if !profile.IsComplete() {
		s.logger.Debug().Str("path", s.path).Msg("profile incomplete, starting setup")
		return s.Create(ctx)
	}

	return profile, nil
}

// Create runs the interactive setup flow: prompts for the account name and
// raw token, derives the obfuscated token, persists the profile document
// (creating the directory first, idempotently), and optionally seals the
// raw token into the vault. Returns the new profile.
//
// Unlike Load, errors here are real: a failed prompt or write aborts the
// setup and is reported to the caller.
func (s *ProfileStore) Create(ctx context.Context) (models.Profile, error) {
	account, err := s.prompter.PromptString("GitHub account name")
	if err != nil {
		return models.Profile{}, fmt.Errorf("prompt account: %w", err)
	}

	rawToken, err := s.prompter.PromptSecret("Personal access token")
	if err != nil {
		return models.Profile{}, fmt.Errorf("prompt token: %w", err)
	}

	notifications, err := s.prompter.PromptBool("Enable notifications", false)
	if err != nil {
		return models.Profile{}, fmt.Errorf("prompt notifications: %w", err)
	}

	profile := models.Profile{
		Account:         account,
		ObfuscatedToken: crypto.Obfuscate(rawToken),
		CreatedAt:       s.now().UTC().Format(time.RFC3339),
		Notifications:   notifications,
	}

	if err = s.validator.Validate(ctx, profile); err != nil {
		return models.Profile{}, fmt.Errorf("invalid profile: %w", err)
	}

	if err = s.persist(profile); err != nil {
		return models.Profile{}, err
	}

	if s.vault != nil && rawToken != "" {
		if err = s.sealToken(ctx, rawToken); err != nil {
			// The profile itself is already written; a vault failure
			// degrades to the obfuscated-only mode instead of undoing
			// the setup.
			s.logger.Warn().Err(err).Msg("token vault not written")
		}
	}

	return profile, nil
}

// Path returns the profile file location.
func (s *ProfileStore) Path() string {
	return s.path
}

func (s *ProfileStore) persist(profile models.Profile) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create profile dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write profile file: %w", err)
	}

	return nil
}

func (s *ProfileStore) sealToken(_ context.Context, rawToken string) error {
	passphrase, err := s.prompter.PromptSecret("Vault passphrase (empty to skip)")
	if err != nil {
		return fmt.Errorf("prompt vault passphrase: %w", err)
	}
	if passphrase == "" {
		s.logger.Debug().Msg("vault skipped, raw token discarded")
		return nil
	}

	return s.vault.Seal(rawToken, passphrase)
}
