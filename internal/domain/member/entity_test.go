package member

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMember(t *testing.T) {
	m, err := NewMember("Asha", "asha@example.com", "s3cret-pass", "9800000000")
	require.NoError(t, err)

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "asha@example.com", m.Email)
	assert.True(t, m.IsActive)
	assert.NotEqual(t, "s3cret-pass", m.PasswordHash)
}

func TestNewMemberValidation(t *testing.T) {
	_, err := NewMember("Asha", "", "s3cret-pass", "")
	assert.ErrorIs(t, err, ErrEmptyEmail)

	_, err = NewMember("Asha", "asha@example.com", "", "")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestCheckPassword(t *testing.T) {
	m, err := NewMember("Asha", "asha@example.com", "s3cret-pass", "")
	require.NoError(t, err)

	assert.NoError(t, m.CheckPassword("s3cret-pass"))
	assert.ErrorIs(t, m.CheckPassword("wrong-pass"), ErrInvalidPassword)
}
