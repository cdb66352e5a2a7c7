// AngelaMos | 2026
// jwt.go

package auth

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/angelamos/memorial/internal/config"
	"github.com/angelamos/memorial/internal/core"
	"github.com/angelamos/memorial/internal/middleware"
	"github.com/angelamos/memorial/internal/permission"
)

const (
	claimType         = "type"
	claimRole         = "role"
	claimVerified     = "verified"
	claimTokenVersion = "token_version"

	accessTokenType = "access"
)

// JWTManager signs ES256 access tokens and publishes the public half as a
// JWKS so other services can verify moderator tokens offline.
type JWTManager struct {
	privateKey jwk.Key
	publicKey  jwk.Key
	publicJWKS jwk.Set
	config     config.JWTConfig
	now        func() time.Time
}

func NewJWTManager(cfg config.JWTConfig) (*JWTManager, error) {
	pemBytes, err := os.ReadFile(cfg.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read private key: %w", err)
	}

	key, err := jwk.ParseKey(pemBytes, jwk.WithPEM(true))
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	return newJWTManager(cfg, key)
}

// NewJWTManagerFromKey builds a manager around an in-memory key.
func NewJWTManagerFromKey(
	cfg config.JWTConfig,
	key *ecdsa.PrivateKey,
) (*JWTManager, error) {
	imported, err := jwk.Import(key)
	if err != nil {
		return nil, fmt.Errorf("import private key: %w", err)
	}

	return newJWTManager(cfg, imported)
}

func newJWTManager(cfg config.JWTConfig, privateKey jwk.Key) (*JWTManager, error) {
	if err := stampKey(privateKey); err != nil {
		return nil, err
	}

	publicKey, err := privateKey.PublicKey()
	if err != nil {
		return nil, fmt.Errorf("derive public key: %w", err)
	}
	if err := publicKey.Set(jwk.KeyUsageKey, "sig"); err != nil {
		return nil, fmt.Errorf("set key usage: %w", err)
	}

	set := jwk.NewSet()
	if err := set.AddKey(publicKey); err != nil {
		return nil, fmt.Errorf("add key to set: %w", err)
	}

	return &JWTManager{
		privateKey: privateKey,
		publicKey:  publicKey,
		publicJWKS: set,
		config:     cfg,
		now:        time.Now,
	}, nil
}

// stampKey pins the algorithm and gives the key a short id unless the PEM
// already carried one.
func stampKey(key jwk.Key) error {
	if err := key.Set(jwk.AlgorithmKey, jwa.ES256()); err != nil {
		return fmt.Errorf("set algorithm: %w", err)
	}
	if _, ok := key.KeyID(); ok {
		return nil
	}
	if err := key.Set(jwk.KeyIDKey, uuid.New().String()[:8]); err != nil {
		return fmt.Errorf("set key id: %w", err)
	}
	return nil
}

// EnsureKeyPair writes a fresh P-256 pair when the private key file is
// missing. Used outside production so a fresh checkout can boot.
func EnsureKeyPair(privateKeyPath, publicKeyPath string) (bool, error) {
	_, err := os.Stat(privateKeyPath)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat private key: %w", err)
	}

	for _, p := range []string{privateKeyPath, publicKeyPath} {
		if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
			return false, fmt.Errorf("create key dir: %w", err)
		}
	}

	if err := GenerateKeyPair(privateKeyPath, publicKeyPath); err != nil {
		return false, err
	}
	return true, nil
}

func GenerateKeyPair(privateKeyPath, publicKeyPath string) error {
	raw, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}

	private, err := jwk.Import(raw)
	if err != nil {
		return fmt.Errorf("import private key: %w", err)
	}
	if err := stampKey(private); err != nil {
		return err
	}

	privatePEM, err := jwk.Pem(private)
	if err != nil {
		return fmt.Errorf("encode private key: %w", err)
	}
	if err := os.WriteFile(privateKeyPath, privatePEM, 0o600); err != nil {
		return fmt.Errorf("write private key: %w", err)
	}

	public, err := private.PublicKey()
	if err != nil {
		return fmt.Errorf("derive public key: %w", err)
	}
	publicPEM, err := jwk.Pem(public)
	if err != nil {
		return fmt.Errorf("encode public key: %w", err)
	}

	//nolint:gosec // G306: public key is intentionally world-readable
	if err := os.WriteFile(publicKeyPath, publicPEM, 0o644); err != nil {
		return fmt.Errorf("write public key: %w", err)
	}

	return nil
}

type AccessTokenClaims struct {
	UserID       string          `json:"sub"`
	Role         permission.Role `json:"role"`
	Verified     bool            `json:"verified"`
	TokenVersion int             `json:"token_version"`
}

func (m *JWTManager) CreateAccessToken(
	claims AccessTokenClaims,
) (string, error) {
	now := m.now()

	token, err := jwt.NewBuilder().
		JwtID(uuid.New().String()).
		Issuer(m.config.Issuer).
		Audience([]string{m.config.Audience}).
		Subject(claims.UserID).
		IssuedAt(now).
		NotBefore(now).
		Expiration(now.Add(m.config.AccessTokenExpire)).
		Claim(claimType, accessTokenType).
		Claim(claimRole, string(claims.Role)).
		Claim(claimVerified, claims.Verified).
		Claim(claimTokenVersion, claims.TokenVersion).
		Build()
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.ES256(), m.privateKey))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return string(signed), nil
}

// VerifyAccessToken checks signature, issuer, audience and expiry, then
// requires every custom claim. A token minted for a role this build does
// not know is rejected rather than downgraded.
func (m *JWTManager) VerifyAccessToken(
	ctx context.Context,
	raw string,
) (*middleware.AccessTokenClaims, error) {
	token, err := jwt.Parse(
		[]byte(raw),
		jwt.WithKey(jwa.ES256(), m.publicKey),
		jwt.WithValidate(true),
		jwt.WithIssuer(m.config.Issuer),
		jwt.WithAudience(m.config.Audience),
	)
	if err != nil {
		if isExpired(err) {
			return nil, fmt.Errorf("verify token: %w", core.ErrTokenExpired)
		}
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	kind, err := claim[string](token, claimType)
	if err != nil || kind != accessTokenType {
		return nil, fmt.Errorf("verify token: not an access token: %w", core.ErrTokenInvalid)
	}

	subject, ok := token.Subject()
	if !ok || subject == "" {
		return nil, fmt.Errorf("verify token: missing subject: %w", core.ErrTokenInvalid)
	}

	roleName, err := claim[string](token, claimRole)
	if err != nil {
		return nil, err
	}
	role, ok := permission.ParseRole(roleName)
	if !ok {
		return nil, fmt.Errorf("verify token: unknown role %q: %w", roleName, core.ErrTokenInvalid)
	}

	verified, err := claim[bool](token, claimVerified)
	if err != nil {
		return nil, err
	}

	// JSON numbers come back as float64.
	version, err := claim[float64](token, claimTokenVersion)
	if err != nil {
		return nil, err
	}

	jti, _ := token.JwtID()
	exp, _ := token.Expiration()

	return &middleware.AccessTokenClaims{
		TokenID:      jti,
		UserID:       subject,
		Role:         role,
		Verified:     verified,
		TokenVersion: int(version),
		ExpiresAt:    exp,
	}, nil
}

func claim[T any](token jwt.Token, name string) (T, error) {
	var v T
	if err := token.Get(name, &v); err != nil {
		return v, fmt.Errorf("verify token: missing %s claim: %w", name, core.ErrTokenInvalid)
	}
	return v, nil
}

func isExpired(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "exp") && strings.Contains(msg, "not satisfied")
}

func (m *JWTManager) GetJWKSHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "public, max-age=3600")

		if err := json.NewEncoder(w).Encode(m.publicJWKS); err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
	}
}

func (m *JWTManager) AccessTokenTTL() time.Duration {
	return m.config.AccessTokenExpire
}

func (m *JWTManager) GetKeyID() string {
	kid, _ := m.privateKey.KeyID()
	return kid
}

type RefreshTokenData struct {
	Token     string
	Hash      string
	ExpiresAt time.Time
	FamilyID  string
}

// CreateRefreshToken mints an opaque token. An empty familyID starts a new
// rotation family.
func (m *JWTManager) CreateRefreshToken(
	userID, familyID string,
) (*RefreshTokenData, error) {
	token, err := core.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if familyID == "" {
		familyID = uuid.New().String()
	}

	return &RefreshTokenData{
		Token:     token,
		Hash:      core.HashToken(token),
		ExpiresAt: m.now().Add(m.config.RefreshTokenExpire),
		FamilyID:  familyID,
	}, nil
}
