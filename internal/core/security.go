// AngelaMos | 2026
// security.go

package core

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultPasswordCost = 12

	// UnusablePassword marks accounts that cannot log in until claimed.
	UnusablePassword = "!"

	VerificationTTL = 24 * time.Hour

	passwordSymbols = `!@#$%^&*(),.?":{}|<>`
)

var (
	passwordCost atomic.Int64
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func init() {
	passwordCost.Store(DefaultPasswordCost)
}

// SetPasswordCost changes the bcrypt work factor for new hashes.
func SetPasswordCost(cost int) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return
	}
	passwordCost.Store(int64(cost))
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		int(passwordCost.Load()),
	)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func VerifyPassword(password, encodedHash string) (bool, error) {
	if encodedHash == "" || encodedHash == UnusablePassword {
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("verify password: %w", err)
	}
}

// NeedsRehash reports hashes produced with a different work factor.
func NeedsRehash(encodedHash string) bool {
	cost, err := bcrypt.Cost([]byte(encodedHash))
	if err != nil {
		return false
	}
	return cost != int(passwordCost.Load())
}

var dummyHash []byte

func init() {
	hash, err := bcrypt.GenerateFromPassword(
		[]byte("dummy_password_for_timing_attack_prevention"),
		DefaultPasswordCost,
	)
	if err != nil {
		panic(fmt.Sprintf("security: failed to generate dummy hash: %v", err))
	}
	dummyHash = hash
}

// VerifyPasswordTimingSafe always performs one bcrypt comparison so that
// unknown and placeholder accounts take as long as real ones.
func VerifyPasswordTimingSafe(password string, encodedHash *string) (bool, error) {
	if encodedHash == nil || *encodedHash == "" || *encodedHash == UnusablePassword {
		//nolint:errcheck // result discarded, comparison only burns time
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return false, nil
	}

	return VerifyPassword(password, *encodedHash)
}

type PasswordCheck struct {
	Valid  bool
	Errors []string
}

// ValidatePassword reports every strength rule the password breaks.
func ValidatePassword(password string) PasswordCheck {
	var errs []string

	if len(password) < 8 {
		errs = append(errs, "Password must be at least 8 characters long")
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}

	if !hasUpper {
		errs = append(errs, "Password must contain at least one uppercase letter")
	}
	if !hasLower {
		errs = append(errs, "Password must contain at least one lowercase letter")
	}
	if !hasDigit {
		errs = append(errs, "Password must contain at least one number")
	}
	if !hasSymbol {
		errs = append(errs, "Password must contain at least one special character")
	}

	return PasswordCheck{Valid: len(errs) == 0, Errors: errs}
}

// ValidateEmail is a shape check for local@domain.tld, not an RFC parser.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func GenerateSecureToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}

func GenerateRefreshToken() (string, error) {
	return GenerateSecureToken(32)
}

type VerificationToken struct {
	Token     string
	Hash      string
	ExpiresAt time.Time
}

// GenerateVerificationToken issues an email verification token valid for ttl.
// Only Hash is meant to be persisted.
func GenerateVerificationToken(now time.Time, ttl time.Duration) (*VerificationToken, error) {
	if ttl <= 0 {
		ttl = VerificationTTL
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("generate verification token: %w", err)
	}

	token := base64.RawURLEncoding.EncodeToString(raw)

	return &VerificationToken{
		Token:     token,
		Hash:      HashToken(token),
		ExpiresAt: now.Add(ttl),
	}, nil
}

func HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

func CompareTokenHash(token, hash string) bool {
	tokenHash := HashToken(token)
	return subtle.ConstantTimeCompare([]byte(tokenHash), []byte(hash)) == 1
}
