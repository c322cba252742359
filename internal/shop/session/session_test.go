package session_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/rbpata/sweetshop/internal/shop/session"
	"github.com/rbpata/sweetshop/internal/shop/store"
	"github.com/rbpata/sweetshop/pkg/shopsdk"
	"github.com/rbpata/sweetshop/pkg/tokenx"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	loginFn    func(ctx context.Context, username, password string) (*shopsdk.LoginResponse, error)
	registerFn func(ctx context.Context, req shopsdk.RegisterRequest) (*shopsdk.MessageResponse, error)
}

func (f *fakeAPI) Login(ctx context.Context, username, password string) (*shopsdk.LoginResponse, error) {
	return f.loginFn(ctx, username, password)
}

func (f *fakeAPI) Register(ctx context.Context, req shopsdk.RegisterRequest) (*shopsdk.MessageResponse, error) {
	return f.registerFn(ctx, req)
}

type memCreds struct {
	token string
	has   bool
}

func (m *memCreds) GetToken(context.Context) (string, error) {
	if !m.has {
		return "", store.ErrNotFound
	}
	return m.token, nil
}

func (m *memCreds) SetToken(_ context.Context, token string) error {
	m.token, m.has = token, true
	return nil
}

func (m *memCreds) Clear(context.Context) error {
	m.token, m.has = "", false
	return nil
}

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func issueToken(t *testing.T, sub string, isAdmin bool, exp time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		IsAdmin: isAdmin,
	})

	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestInit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	api := &fakeAPI{}

	t.Run("no stored credential", func(t *testing.T) {
		creds := &memCreds{}
		s := session.New(api, creds, &recordingNotifier{}, discardLogger())

		require.True(t, s.Loading())
		s.Init(ctx)

		require.False(t, s.Loading())
		require.False(t, s.IsAuthenticated())
	})

	t.Run("valid credential restores the session", func(t *testing.T) {
		creds := &memCreds{token: issueToken(t, "alice", false, time.Now().Add(time.Hour)), has: true}
		s := session.New(api, creds, &recordingNotifier{}, discardLogger())

		s.Init(ctx)

		user, ok := s.CurrentUser()
		require.True(t, ok)
		require.Equal(t, "alice", user.Username)
		require.False(t, s.IsAdmin())
		require.True(t, creds.has)
	})

	t.Run("expired credential is discarded", func(t *testing.T) {
		creds := &memCreds{token: issueToken(t, "alice", false, time.Now().Add(-time.Second)), has: true}
		s := session.New(api, creds, &recordingNotifier{}, discardLogger())

		s.Init(ctx)

		require.False(t, s.Loading())
		require.False(t, s.IsAuthenticated())
		require.False(t, creds.has)
	})

	t.Run("unexpired but undecodable credential is discarded", func(t *testing.T) {
		// Well-formed token with a future expiry but no subject: passes the
		// validity check, fails the decode.
		creds := &memCreds{token: issueToken(t, "", false, time.Now().Add(time.Hour)), has: true}
		notify := &recordingNotifier{}
		s := session.New(api, creds, notify, discardLogger())

		s.Init(ctx)

		require.False(t, s.IsAuthenticated())
		require.False(t, creds.has)
		// Never surfaced to the user.
		require.Empty(t, notify.errors)
	})

	t.Run("garbage credential is discarded", func(t *testing.T) {
		creds := &memCreds{token: "not-a-token", has: true}
		s := session.New(api, creds, &recordingNotifier{}, discardLogger())

		s.Init(ctx)

		require.False(t, s.IsAuthenticated())
		require.False(t, creds.has)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("success persists token and sets user", func(t *testing.T) {
		adminToken := issueToken(t, "admin", true, time.Now().Add(time.Hour))
		api := &fakeAPI{
			loginFn: func(_ context.Context, username, password string) (*shopsdk.LoginResponse, error) {
				require.Equal(t, "admin", username)
				require.Equal(t, "correct-pw", password)
				return &shopsdk.LoginResponse{AccessToken: adminToken}, nil
			},
		}
		creds := &memCreds{}
		notify := &recordingNotifier{}

		s := session.New(api, creds, notify, discardLogger())
		s.Init(ctx)

		require.NoError(t, s.Login(ctx, "admin", "correct-pw"))

		require.True(t, s.IsAuthenticated())
		require.True(t, s.IsAdmin())
		require.Equal(t, adminToken, creds.token)
		require.Equal(t, adminToken, s.Token())
		require.Equal(t, []string{"Welcome back!"}, notify.successes)
	})

	t.Run("failure leaves session untouched", func(t *testing.T) {
		api := &fakeAPI{
			loginFn: func(context.Context, string, string) (*shopsdk.LoginResponse, error) {
				return nil, &shopsdk.APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"}
			},
		}
		creds := &memCreds{}
		notify := &recordingNotifier{}

		s := session.New(api, creds, notify, discardLogger())
		s.Init(ctx)

		require.Error(t, s.Login(ctx, "x", "wrong-pw"))

		require.False(t, s.IsAuthenticated())
		require.False(t, creds.has)
		require.Equal(t, []string{"Invalid credentials"}, notify.errors)
	})

	t.Run("failure without server message uses fallback", func(t *testing.T) {
		api := &fakeAPI{
			loginFn: func(context.Context, string, string) (*shopsdk.LoginResponse, error) {
				return nil, errors.New("connection refused")
			},
		}
		notify := &recordingNotifier{}

		s := session.New(api, &memCreds{}, notify, discardLogger())
		s.Init(ctx)

		require.Error(t, s.Login(ctx, "x", "pw"))
		require.Equal(t, []string{"Login failed"}, notify.errors)
	})

	t.Run("undecodable token from server is not persisted", func(t *testing.T) {
		api := &fakeAPI{
			loginFn: func(context.Context, string, string) (*shopsdk.LoginResponse, error) {
				return &shopsdk.LoginResponse{AccessToken: "garbage"}, nil
			},
		}
		creds := &memCreds{}

		s := session.New(api, creds, &recordingNotifier{}, discardLogger())
		s.Init(ctx)

		require.Error(t, s.Login(ctx, "x", "pw"))
		require.False(t, s.IsAuthenticated())
		require.False(t, creds.has)
	})
}

func TestRegister(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("success does not log the user in", func(t *testing.T) {
		api := &fakeAPI{
			registerFn: func(_ context.Context, req shopsdk.RegisterRequest) (*shopsdk.MessageResponse, error) {
				require.Equal(t, "bob", req.Username)
				return &shopsdk.MessageResponse{Msg: "User registered successfully"}, nil
			},
		}
		notify := &recordingNotifier{}

		s := session.New(api, &memCreds{}, notify, discardLogger())
		s.Init(ctx)

		require.NoError(t, s.Register(ctx, shopsdk.RegisterRequest{Username: "bob", Password: "pw"}))

		require.False(t, s.IsAuthenticated())
		require.Equal(t, []string{"Account created successfully! Please log in."}, notify.successes)
	})

	t.Run("duplicate registration surfaces the server message", func(t *testing.T) {
		api := &fakeAPI{
			registerFn: func(context.Context, shopsdk.RegisterRequest) (*shopsdk.MessageResponse, error) {
				return nil, &shopsdk.APIError{StatusCode: http.StatusBadRequest, Message: "User already exists"}
			},
		}
		notify := &recordingNotifier{}

		s := session.New(api, &memCreds{}, notify, discardLogger())
		s.Init(ctx)

		require.Error(t, s.Register(ctx, shopsdk.RegisterRequest{Username: "bob", Password: "pw"}))
		require.Equal(t, []string{"User already exists"}, notify.errors)
	})
}

func TestLogout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	creds := &memCreds{token: issueToken(t, "alice", false, time.Now().Add(time.Hour)), has: true}
	notify := &recordingNotifier{}

	s := session.New(&fakeAPI{}, creds, notify, discardLogger())
	s.Init(ctx)
	require.True(t, s.IsAuthenticated())

	s.Logout(ctx)

	require.False(t, s.IsAuthenticated())
	require.False(t, creds.has)
	require.Empty(t, s.Token())

	// Idempotent: a second logout leaves identical state.
	s.Logout(ctx)

	require.False(t, s.IsAuthenticated())
	require.False(t, creds.has)
}

func TestExpire(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	creds := &memCreds{token: issueToken(t, "alice", false, time.Now().Add(time.Hour)), has: true}
	notify := &recordingNotifier{}

	s := session.New(&fakeAPI{}, creds, notify, discardLogger())
	s.Init(ctx)

	s.Expire(ctx)

	require.False(t, s.IsAuthenticated())
	require.False(t, creds.has)
	require.Equal(t, []string{"Session expired. Please log in again."}, notify.errors)

	// Expiring an already-dead session stays quiet.
	s.Expire(ctx)
	require.Len(t, notify.errors, 1)
}
