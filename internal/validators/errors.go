package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyAccount           = errors.New("account name is required")
	ErrInvalidAccount         = errors.New("invalid account name")
	ErrInvalidObfuscatedToken = errors.New("invalid obfuscated token")
	ErrInvalidCreatedAt       = errors.New("invalid creation timestamp")
)
