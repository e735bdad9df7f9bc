package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/irabeny89/ebbs-io/config"
	domainerrors "github.com/irabeny89/ebbs-io/internal/domain/errors"
	"github.com/irabeny89/ebbs-io/internal/domain/service"
	"github.com/irabeny89/ebbs-io/internal/errors"
)

const passCodeDigits = 6

// passCodeClaims binds the hashed code to the email it was mailed to.
type passCodeClaims struct {
	Email    string `json:"email"`
	CodeHash string `json:"codeHash"`
	jwt.RegisteredClaims
}

// passCodeService issues short-lived one-time codes. The sealed token is
// signed with the plaintext code itself, so it can only be opened by someone
// who received the mail.
type passCodeService struct {
	issuer string
	ttl    time.Duration
}

// NewPassCodeService is the constructor for passCodeService.
func NewPassCodeService(cfg *config.Config) (service.PassCodeService, error) {
	if cfg.Auth == nil {
		return nil, errors.New("auth config must be provided")
	}

	return &passCodeService{issuer: cfg.Auth.IssuerHost, ttl: cfg.Auth.PassCodeTTL}, nil
}

// Generate produces a fresh numeric code and its sha256 hex digest.
func (s *passCodeService) Generate() (string, string, error) {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(passCodeDigits), nil)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", "", errors.Wrap(err, "generate pass code")
	}

	code := fmt.Sprintf("%0*d", passCodeDigits, n)

	return code, hashCode(code), nil
}

// Seal signs the email and hashed code into a token secured by the plaintext code.
func (s *passCodeService) Seal(email, codeHash, code string) (string, error) {
	now := time.Now()
	claims := &passCodeClaims{
		Email:    email,
		CodeHash: codeHash,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(code))
	if err != nil {
		return "", errors.Wrap(err, "seal pass code")
	}

	return token, nil
}

// Open validates a sealed token against the submitted code. The token only
// parses when the submitted code matches the signing secret, and the hash
// check catches a token resealed under a different code.
func (s *passCodeService) Open(token, code string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &passCodeClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(code), nil
	})
	if err != nil {
		return "", domainerrors.ErrPassCodeInvalid.WrapMessage(err.Error())
	}

	claims, ok := parsed.Claims.(*passCodeClaims)
	if !ok || !parsed.Valid {
		return "", domainerrors.ErrPassCodeInvalid
	}

	if subtle.ConstantTimeCompare([]byte(hashCode(code)), []byte(claims.CodeHash)) != 1 {
		return "", domainerrors.ErrPassCodeInvalid
	}

	return claims.Email, nil
}

func hashCode(code string) string {
	sum := sha256.Sum256([]byte(code))

	return hex.EncodeToString(sum[:])
}
