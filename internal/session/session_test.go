package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/indigenous-connect/server/internal/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExchanger struct {
	identity *upstream.Identity
	err      error
	calls    int
}

func (f *fakeExchanger) Login(_ context.Context, _, _ string) (*upstream.Identity, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.identity, nil
}

func testIdentity() *upstream.Identity {
	return &upstream.Identity{
		ID:       "1",
		Fullname: "Aroha Ngata",
		Email:    "a@x.com",
		Avatar:   "https://cdn.example.com/a.png",
		Whatsapp: "+64211234567",
		Token:    "opaque-upstream-token",
		Role:     RoleUser,
		Status:   StatusActive,
	}
}

func TestAuthenticate_CopiesIdentityVerbatim(t *testing.T) {
	identity := testIdentity()
	mgr := NewManager("secret", "test", &fakeExchanger{identity: identity})

	claims, err := mgr.Authenticate(context.Background(), "a@x.com", "secret1")
	require.NoError(t, err)

	assert.Equal(t, identity.ID, claims.UserID)
	assert.Equal(t, identity.Fullname, claims.Fullname)
	assert.Equal(t, identity.Email, claims.Email)
	assert.Equal(t, identity.Avatar, claims.Avatar)
	assert.Equal(t, identity.Whatsapp, claims.Whatsapp)
	assert.Equal(t, identity.Token, claims.APIToken)
	assert.Equal(t, identity.Role, claims.Role)
	assert.Equal(t, identity.Status, claims.Status)
}

func TestAuthenticate_SingleAttempt(t *testing.T) {
	exchanger := &fakeExchanger{err: fmt.Errorf("connection refused")}
	mgr := NewManager("secret", "test", exchanger)

	_, err := mgr.Authenticate(context.Background(), "a@x.com", "secret1")

	assert.ErrorIs(t, err, ErrAuthFailed)
	assert.Equal(t, 1, exchanger.calls, "failed exchanges must not be retried")
}

func TestAuthenticate_TransportAndRejectionIndistinguishable(t *testing.T) {
	rejection := &fakeExchanger{err: &upstream.APIError{StatusCode: 401, Message: "bad credentials"}}
	transport := &fakeExchanger{err: errors.New("dial tcp: timeout")}

	_, errRejected := NewManager("secret", "test", rejection).Authenticate(context.Background(), "a@x.com", "x")
	_, errTransport := NewManager("secret", "test", transport).Authenticate(context.Background(), "a@x.com", "x")

	assert.ErrorIs(t, errRejected, ErrAuthFailed)
	assert.ErrorIs(t, errTransport, ErrAuthFailed)
}

func TestAuthenticate_EmptyCredentialsFailWithoutExchange(t *testing.T) {
	exchanger := &fakeExchanger{identity: testIdentity()}
	mgr := NewManager("secret", "test", exchanger)

	_, err := mgr.Authenticate(context.Background(), "", "secret1")
	assert.ErrorIs(t, err, ErrAuthFailed)

	_, err = mgr.Authenticate(context.Background(), "a@x.com", "")
	assert.ErrorIs(t, err, ErrAuthFailed)

	assert.Zero(t, exchanger.calls)
}

func TestAuthenticate_IncompleteIdentityRejected(t *testing.T) {
	// role and status are mandatory gate inputs; an identity without
	// them is never minted into a session
	noRole := testIdentity()
	noRole.Role = ""

	noStatus := testIdentity()
	noStatus.Status = ""

	for _, identity := range []*upstream.Identity{noRole, noStatus} {
		mgr := NewManager("secret", "test", &fakeExchanger{identity: identity})

		_, err := mgr.Authenticate(context.Background(), "a@x.com", "secret1")
		assert.ErrorIs(t, err, ErrAuthFailed)
	}
}

func TestNewClaims_PureProjection(t *testing.T) {
	identity := testIdentity()

	first := NewClaims(identity)
	second := NewClaims(identity)

	assert.Equal(t, first, second, "same identity must yield identical claims")
}

func TestMintVerify_Roundtrip(t *testing.T) {
	mgr := NewManager("secret", "test", nil)
	claims := NewClaims(testIdentity())

	token, err := mgr.Mint(claims)
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(token, ".")), "token should be a compact JWT")

	decoded, err := mgr.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, claims.UserID, decoded.UserID)
	assert.Equal(t, claims.APIToken, decoded.APIToken)
	assert.Equal(t, claims.Role, decoded.Role)
	assert.Equal(t, claims.Status, decoded.Status)
}

func TestMint_DoesNotMutateInput(t *testing.T) {
	mgr := NewManager("secret", "test", nil)
	claims := NewClaims(testIdentity())

	_, err := mgr.Mint(claims)
	require.NoError(t, err)

	assert.Nil(t, claims.ExpiresAt, "minting must not stamp the caller's claims")
}

func TestVerify_WrongSecretRejected(t *testing.T) {
	token, err := NewManager("secret-one", "test", nil).Mint(NewClaims(testIdentity()))
	require.NoError(t, err)

	_, err = NewManager("secret-two", "test", nil).Verify(token)
	assert.Error(t, err)
}

func TestVerify_TamperedTokenRejected(t *testing.T) {
	mgr := NewManager("secret", "test", nil)

	token, err := mgr.Mint(NewClaims(testIdentity()))
	require.NoError(t, err)

	tampered := token[:len(token)-5] + "XXXXX"

	_, err = mgr.Verify(tampered)
	assert.Error(t, err)
}

func TestVerify_ExpiredTokenRejected(t *testing.T) {
	mgr := NewManager("secret", "test", nil)

	claims := NewClaims(testIdentity())
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = mgr.Verify(tokenString)
	assert.Error(t, err)
}

func TestVerify_NoneAlgorithmRejected(t *testing.T) {
	mgr := NewManager("secret", "test", nil)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, NewClaims(testIdentity()))
	tokenString, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType) //nolint:errcheck // test code

	_, err := mgr.Verify(tokenString)
	assert.Error(t, err)
}

func TestVerify_MalformedTokensRejected(t *testing.T) {
	mgr := NewManager("secret", "test", nil)

	for _, token := range []string{"", "not.a.jwt", "only.two", "a.b.c.d.e"} {
		_, err := mgr.Verify(token)
		assert.Error(t, err, "token %q", token)
	}
}

func TestView_StripsBearerToken(t *testing.T) {
	claims := NewClaims(testIdentity())

	view := claims.View()

	assert.Equal(t, claims.UserID, view.UserID)
	assert.Equal(t, claims.Fullname, view.Fullname)
	assert.Equal(t, claims.Role, view.Role)
	assert.Equal(t, claims.Status, view.Status)

	// the upstream bearer credential must never reach page payloads
	assert.NotContains(t, fmt.Sprintf("%+v", view), claims.APIToken)
}

func TestView_Idempotent(t *testing.T) {
	claims := NewClaims(testIdentity())

	assert.Equal(t, claims.View(), claims.View())
}
