package account

import (
	"encoding/json"
	"testing"

	"github.com/caffeine-junky/jobconnect/internal/pkg/apperr"
	"github.com/caffeine-junky/jobconnect/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hasher = password.NewHasher(4)

func TestNewAndVerify(t *testing.T) {
	acc, err := New(" Lerato M ", " Lerato@Example.com ", "0821234567", "s3cretpass", hasher)
	require.NoError(t, err)

	assert.Equal(t, "Lerato M", acc.Fullname)
	assert.Equal(t, "lerato@example.com", acc.Email)
	assert.True(t, acc.IsActive)
	assert.NotEqual(t, "s3cretpass", acc.HashedPassword)

	assert.NoError(t, Verify(acc, "s3cretpass", hasher))
	assert.ErrorIs(t, Verify(acc, "wrong", hasher), ErrInvalidCredentials)

	acc.IsActive = false
	assert.ErrorIs(t, Verify(acc, "s3cretpass", hasher), ErrInvalidCredentials)
}

func TestPatch_Apply(t *testing.T) {
	original, err := New("Lerato", "lerato@example.com", "0821234567", "s3cretpass", hasher)
	require.NoError(t, err)

	t.Run("only supplied fields change", func(t *testing.T) {
		var p Patch
		require.NoError(t, json.Unmarshal([]byte(`{"fullname":"Lerato Mokoena"}`), &p))

		acc := original
		require.NoError(t, p.Apply(&acc, hasher))
		assert.Equal(t, "Lerato Mokoena", acc.Fullname)
		assert.Equal(t, original.Email, acc.Email)
		assert.Equal(t, original.HashedPassword, acc.HashedPassword)
		assert.False(t, p.ChangesIdentity(original))
	})

	t.Run("password is re-hashed", func(t *testing.T) {
		var p Patch
		require.NoError(t, json.Unmarshal([]byte(`{"password":"another-pass"}`), &p))

		acc := original
		require.NoError(t, p.Apply(&acc, hasher))
		assert.NotEqual(t, original.HashedPassword, acc.HashedPassword)
		assert.True(t, hasher.Verify(acc.HashedPassword, "another-pass"))
	})

	t.Run("email change is an identity change", func(t *testing.T) {
		var p Patch
		require.NoError(t, json.Unmarshal([]byte(`{"email":"NEW@example.com"}`), &p))
		assert.True(t, p.ChangesIdentity(original))

		acc := original
		require.NoError(t, p.Apply(&acc, hasher))
		assert.Equal(t, "new@example.com", acc.Email)
	})

	t.Run("null and invalid values are rejected", func(t *testing.T) {
		for _, body := range []string{`{"fullname":null}`, `{"email":"nope"}`, `{"password":"short"}`} {
			var p Patch
			require.NoError(t, json.Unmarshal([]byte(body), &p))
			acc := original
			assert.ErrorIs(t, p.Apply(&acc, hasher), apperr.ErrBadRequest, body)
		}
	})
}

func TestConflictError(t *testing.T) {
	err := ConflictError("Client", "email")
	assert.EqualError(t, err, "Client with email already exists")
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}
