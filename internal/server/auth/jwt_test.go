package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/hopeconnect/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alice = Identity{ID: 1, Email: "a@x.com", Role: RoleUser}

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	iss := NewIssuer([]byte("super-secret"), time.Hour)

	tok, err := iss.Issue(alice)
	require.NoError(t, err)

	got, err := iss.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, alice, got)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	iss := NewIssuer([]byte("secret"), -time.Second)
	tok, err := iss.Issue(alice)
	require.NoError(t, err)

	_, err = iss.Verify(tok)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestVerify_ExpiresAfterValidityWindow(t *testing.T) {
	t.Parallel()

	iss := NewIssuer([]byte("secret"), 24*time.Hour)
	start := time.Now()
	iss.now = func() time.Time { return start }

	tok, err := iss.Issue(alice)
	require.NoError(t, err)

	iss.now = func() time.Time { return start.Add(23 * time.Hour) }
	_, err = iss.Verify(tok)
	require.NoError(t, err)

	iss.now = func() time.Time { return start.Add(25 * time.Hour) }
	_, err = iss.Verify(tok)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewIssuer([]byte("right"), time.Hour).Issue(alice)
	require.NoError(t, err)

	_, err = NewIssuer([]byte("wrong"), time.Hour).Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_TamperedPayload(t *testing.T) {
	t.Parallel()

	iss := NewIssuer([]byte("secret"), time.Hour)
	tok, err := iss.Issue(alice)
	require.NoError(t, err)

	admin, err := NewIssuer([]byte("other"), time.Hour).Issue(Identity{ID: 1, Email: "a@x.com", Role: RoleAdmin})
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	forged := strings.Split(admin, ".")
	_, err = iss.Verify(parts[0] + "." + forged[1] + "." + parts[2])
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_RejectsNoneAlgorithm(t *testing.T) {
	t.Parallel()

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		Identity:         Identity{ID: 9, Role: RoleAdmin},
	})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewIssuer([]byte("secret"), time.Hour).Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	iss := NewIssuer([]byte("k"), time.Hour)
	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		_, err := iss.Verify(tok)
		assert.ErrorIs(t, err, common.ErrInvalidToken, tok)
	}
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, IsAdmin(Identity{Role: RoleAdmin}))
	assert.False(t, IsAdmin(Identity{Role: RoleUser}))
	assert.False(t, IsAdmin(Identity{}))
}
