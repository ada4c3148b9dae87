package auth_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-autodraw/pkg/autodraw/api"
	"github.com/askiada/go-autodraw/pkg/autodraw/auth"
	"github.com/askiada/go-autodraw/pkg/autodraw/model"
)

type fakeAuthenticator struct {
	resp api.LoginResponse
	err  error
	got  api.LoginRequest
}

func (f *fakeAuthenticator) Login(_ context.Context, req api.LoginRequest) (api.LoginResponse, error) {
	f.got = req
	return f.resp, f.err
}

func TestLoginLogout(t *testing.T) {
	t.Parallel()

	fake := &fakeAuthenticator{resp: api.LoginResponse{AccessToken: "tok", Username: "admin", Role: "staff", Verified: true}}
	svc := auth.NewService(fake, nil)

	assert.False(t, svc.IsLoggedIn())
	_, ok := svc.Token()
	assert.False(t, ok)

	session, err := svc.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, model.Session{AuthToken: "tok", CurrentUser: "admin", Role: "staff", Verified: true}, session)
	assert.Equal(t, api.LoginRequest{Username: "admin", Password: "secret"}, fake.got)
	assert.True(t, svc.IsLoggedIn())

	token, ok := svc.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok", token)

	svc.Logout()
	assert.False(t, svc.IsLoggedIn())
	assert.Equal(t, model.Session{}, svc.Session())
}

func TestLoginFailures(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		fake    *fakeAuthenticator
		user    string
		wantErr error
	}{
		"missing username": {
			fake:    &fakeAuthenticator{},
			user:    "",
			wantErr: auth.ErrUsernameMustBeSet,
		},
		"unauthorized": {
			fake:    &fakeAuthenticator{err: &api.StatusError{StatusCode: http.StatusUnauthorized}},
			user:    "admin",
			wantErr: auth.ErrInvalidCredentials,
		},
		"empty token": {
			fake:    &fakeAuthenticator{resp: api.LoginResponse{Username: "admin"}},
			user:    "admin",
			wantErr: auth.ErrEmptyToken,
		},
		"transport": {
			fake:    &fakeAuthenticator{err: assert.AnError},
			user:    "admin",
			wantErr: assert.AnError,
		},
	}

	for name, tc := range tcs {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			svc := auth.NewService(tc.fake, nil)
			_, err := svc.Login(context.Background(), tc.user, "pw")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), err.Error())
			assert.False(t, svc.IsLoggedIn())
		})
	}
}

func TestFailedLoginKeepsPreviousSession(t *testing.T) {
	t.Parallel()

	fake := &fakeAuthenticator{resp: api.LoginResponse{AccessToken: "tok", Username: "admin"}}
	svc := auth.NewService(fake, nil)

	_, err := svc.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)

	fake.err = assert.AnError
	_, err = svc.Login(context.Background(), "other", "secret")
	require.Error(t, err)

	assert.Equal(t, "admin", svc.Session().CurrentUser)
}
