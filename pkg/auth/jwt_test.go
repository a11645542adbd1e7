package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shah-dhwanil/gaatha-salesforce-sub000/internal/domain/member"
)

func newTestService(t *testing.T) *JWTService {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	svc, err := NewJWTService()
	require.NoError(t, err)
	return svc
}

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := NewJWTService()
	assert.ErrorIs(t, err, ErrMissingJWTKey)
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(t)

	m, err := member.NewMember("Asha", "asha@example.com", "s3cret-pass", "")
	require.NoError(t, err)

	token, err := svc.GenerateToken(m)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, m.ID, claims.MemberID)
	assert.Equal(t, m.Email, claims.Email)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestRefreshToken(t *testing.T) {
	svc := newTestService(t)

	m, err := member.NewMember("Asha", "asha@example.com", "s3cret-pass", "")
	require.NoError(t, err)

	token, err := svc.GenerateToken(m)
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(token)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(refreshed)
	require.NoError(t, err)
	assert.Equal(t, m.ID, claims.MemberID)
}
