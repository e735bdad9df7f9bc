package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irabeny89/ebbs-io/internal/domain/service"
)

func newPassCodeService(t *testing.T, ttl time.Duration) service.PassCodeService {
	t.Helper()

	cfg := newTestConfig()
	cfg.Auth.PassCodeTTL = ttl

	svc, err := NewPassCodeService(cfg)
	require.NoError(t, err)

	return svc
}

func TestPassCodeServiceGenerate(t *testing.T) {
	t.Parallel()

	svc := newPassCodeService(t, 10*time.Minute)

	code, hash, err := svc.Generate()
	require.NoError(t, err)

	assert.Len(t, code, passCodeDigits)
	assert.Equal(t, hashCode(code), hash)
}

func TestPassCodeServiceSealAndOpen(t *testing.T) {
	t.Parallel()

	svc := newPassCodeService(t, 10*time.Minute)

	code, hash, err := svc.Generate()
	require.NoError(t, err)

	token, err := svc.Seal("amara@ebbs.test", hash, code)
	require.NoError(t, err)

	t.Run("opens with the mailed code", func(t *testing.T) {
		t.Parallel()

		email, err := svc.Open(token, code)
		require.NoError(t, err)
		assert.Equal(t, "amara@ebbs.test", email)
	})

	t.Run("rejects a wrong code", func(t *testing.T) {
		t.Parallel()

		wrong := "000000"
		if wrong == code {
			wrong = "000001"
		}

		_, err := svc.Open(token, wrong)
		assert.Error(t, err)
	})

	t.Run("rejects a tampered token", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Open(token+"x", code)
		assert.Error(t, err)
	})
}

func TestPassCodeServiceExpiry(t *testing.T) {
	t.Parallel()

	svc := newPassCodeService(t, -time.Minute)

	code, hash, err := svc.Generate()
	require.NoError(t, err)

	token, err := svc.Seal("amara@ebbs.test", hash, code)
	require.NoError(t, err)

	_, err = svc.Open(token, code)
	assert.Error(t, err)
}
