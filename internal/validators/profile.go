package validators

import (
	"context"
	"strings"
	"time"

	"github.com/ghpocket/ghpocket/models"
)

// Field name constants used to specify which fields should be validated.
const (
	// FieldAccount targets the GitHub account name of a profile.
	FieldAccount = "account"

	// FieldObfuscatedToken targets the stored token derivative.
	FieldObfuscatedToken = "obfuscated_token"

	// FieldCreatedAt targets the profile creation timestamp.
	FieldCreatedAt = "created_at"
)

// obfuscatedTokenLen is the fixed length of the stored token derivative.
const obfuscatedTokenLen = 32

// maxAccountLen mirrors the GitHub username length limit.
const maxAccountLen = 39

// ProfileValidator implements the Validator interface for models.Profile.
// It supports both value and pointer receivers and allows optional
// field-level scoping via variadic field name arguments.
type ProfileValidator struct {
}

// NewProfileValidator constructs a new ProfileValidator
// and returns it as the Validator interface.
func NewProfileValidator() Validator {
	return &ProfileValidator{}
}

// Validate dispatches validation to the profile checks. Unsupported value
// types yield ErrUnsupportedType.
func (v *ProfileValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch p := value.(type) {
	case models.Profile:
		return v.validateProfile(ctx, p, fields...)
	case *models.Profile:
		if p == nil {
			return ErrUnsupportedType
		}
		return v.validateProfile(ctx, *p, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ProfileValidator) validateProfile(_ context.Context, profile models.Profile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAccount, FieldObfuscatedToken, FieldCreatedAt}
	}

	for _, field := range fields {
		switch field {
		case FieldAccount:
			if err := validateAccount(profile.Account); err != nil {
				return err
			}
		case FieldObfuscatedToken:
			if len(profile.ObfuscatedToken) != obfuscatedTokenLen {
				return ErrInvalidObfuscatedToken
			}
		case FieldCreatedAt:
			if profile.CreatedAt == "" {
				continue
			}
			if _, err := time.Parse(time.RFC3339, profile.CreatedAt); err != nil {
				return ErrInvalidCreatedAt
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateAccount(account string) error {
	if account == "" {
		return ErrEmptyAccount
	}
	if len(account) > maxAccountLen {
		return ErrInvalidAccount
	}
	if strings.HasPrefix(account, "-") || strings.HasSuffix(account, "-") {
		return ErrInvalidAccount
	}
	for _, r := range account {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
		default:
			return ErrInvalidAccount
		}
	}
	return nil
}
