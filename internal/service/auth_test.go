package service

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/MarkAnthonyM/BlockPlot/internal/adapter"
	"github.com/MarkAnthonyM/BlockPlot/internal/auth"
	"github.com/MarkAnthonyM/BlockPlot/internal/config"
	"github.com/MarkAnthonyM/BlockPlot/internal/logger"
	"github.com/MarkAnthonyM/BlockPlot/internal/mock"
	"github.com/MarkAnthonyM/BlockPlot/internal/session"
	"github.com/MarkAnthonyM/BlockPlot/internal/store"
	"github.com/MarkAnthonyM/BlockPlot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAuthConfig = config.Auth{
	Domain:        "blockplot.us.auth0.com",
	ClientID:      "client-id",
	ClientSecret:  "client-secret",
	Audience:      "https://api.blockplot.app",
	RedirectURL:   "http://localhost:8000/process",
	PostLogoutURL: "http://localhost:8080/",
}

type authFixture struct {
	svc      *authService
	identity *mock.MockIdentityProvider
	verifier *mock.MockTokenVerifier
	users    *mock.MockUserDirectory
	userRepo *mock.MockUserRepository
	sessions *mock.MockSessionStore
	ids      *mock.MockIDGenerator
}

func newAuthFixture(t *testing.T, ctrl *gomock.Controller, now time.Time) authFixture {
	t.Helper()
	f := authFixture{
		identity: mock.NewMockIdentityProvider(ctrl),
		verifier: mock.NewMockTokenVerifier(ctrl),
		users:    mock.NewMockUserDirectory(ctrl),
		userRepo: mock.NewMockUserRepository(ctrl),
		sessions: mock.NewMockSessionStore(ctrl),
		ids:      mock.NewMockIDGenerator(ctrl),
	}
	f.svc = NewAuthService(testAuthConfig, f.identity, f.verifier, f.users, f.userRepo, f.sessions, f.ids, logger.Nop()).(*authService)
	f.svc.now = func() time.Time { return now }
	return f
}

// ── StartLogin ──────────────────────────────────────────────────────────────

func TestAuthService_StartLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAuthFixture(t, ctrl, time.Now())

	f.ids.EXPECT().Random().Return("state-123")

	got, err := f.svc.StartLogin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "state-123", got.State)

	u, err := url.Parse(got.AuthorizeURL)
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "blockplot.us.auth0.com", u.Host)
	assert.Equal(t, "/authorize", u.Path)

	q := u.Query()
	assert.Equal(t, "https://api.blockplot.app", q.Get("audience"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "http://localhost:8000/process", q.Get("redirect_uri"))
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Equal(t, "openid profile email", q.Get("scope"))
}

// ── CompleteLogin ───────────────────────────────────────────────────────────

func TestAuthService_CompleteLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f := newAuthFixture(t, ctrl, now)

	claims := models.VerifiedClaims{
		Subject:   "auth0|abc",
		Email:     "ada@example.com",
		GivenName: "Ada",
		Nickname:  "ada",
		Picture:   "https://example.com/ada.png",
		ExpiresAt: now.Add(10 * time.Hour).Unix(),
	}
	user := models.User{UserID: 7, AuthSubject: "auth0|abc", BlockCount: 2, KeyPresent: true}
	wantSession := models.Session{
		UserID:      7,
		AuthSubject: "auth0|abc",
		ExpiresAt:   claims.ExpiresAt,
		Email:       "ada@example.com",
		GivenName:   "Ada",
		Nickname:    "ada",
		Picture:     "https://example.com/ada.png",
		BlockCount:  2,
		KeyPresent:  true,
	}

	gomock.InOrder(
		f.identity.EXPECT().ExchangeCode(gomock.Any(), "the-code").Return(models.TokenResponse{IDToken: "id.token.sig"}, nil),
		f.verifier.EXPECT().Verify(gomock.Any(), "id.token.sig").Return(claims, nil),
		f.users.EXPECT().GetOrCreate(gomock.Any(), claims).Return(user, nil),
		f.ids.EXPECT().Random().Return("session-token"),
		f.sessions.EXPECT().Put("session-token", wantSession),
		f.userRepo.EXPECT().UpdateLastLogin(gomock.Any(), int64(7), now).Return(nil),
	)

	got, err := f.svc.CompleteLogin(context.Background(), "the-code", "state", "state")
	require.NoError(t, err)
	assert.Equal(t, models.LoginResult{SessionToken: "session-token", Session: wantSession}, got)
}

func TestAuthService_CompleteLogin_StateChecks(t *testing.T) {
	tests := []struct {
		name        string
		code        string
		state       string
		cookieState string
		wantErr     error
	}{
		{name: "no cookie", code: "c", state: "s", cookieState: "", wantErr: ErrMissingState},
		{name: "mismatch", code: "c", state: "s", cookieState: "other", wantErr: ErrStateMismatch},
		{name: "no state param", code: "c", state: "", cookieState: "s", wantErr: ErrStateMismatch},
		{name: "no code", code: "", state: "s", cookieState: "s", wantErr: ErrMissingCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newAuthFixture(t, ctrl, time.Now())

			_, err := f.svc.CompleteLogin(context.Background(), tt.code, tt.state, tt.cookieState)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_CompleteLogin_ExchangeFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAuthFixture(t, ctrl, time.Now())

	f.identity.EXPECT().ExchangeCode(gomock.Any(), "c").Return(models.TokenResponse{}, adapter.ErrUnauthorized)

	_, err := f.svc.CompleteLogin(context.Background(), "c", "s", "s")
	assert.ErrorIs(t, err, ErrTokenExchangeFailed)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestAuthService_CompleteLogin_TokenRejected(t *testing.T) {
	for _, verifyErr := range []error{auth.ErrAudienceMismatch, auth.ErrIssuerMismatch, auth.ErrExpired, auth.ErrSignatureInvalid} {
		t.Run(verifyErr.Error(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newAuthFixture(t, ctrl, time.Now())

			f.identity.EXPECT().ExchangeCode(gomock.Any(), "c").Return(models.TokenResponse{IDToken: "t"}, nil)
			f.verifier.EXPECT().Verify(gomock.Any(), "t").Return(models.VerifiedClaims{}, verifyErr)

			_, err := f.svc.CompleteLogin(context.Background(), "c", "s", "s")
			assert.ErrorIs(t, err, ErrInvalidIdentity)
			assert.ErrorIs(t, err, verifyErr)
		})
	}
}

func TestAuthService_CompleteLogin_UserResolutionFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAuthFixture(t, ctrl, time.Now())

	f.identity.EXPECT().ExchangeCode(gomock.Any(), "c").Return(models.TokenResponse{IDToken: "t"}, nil)
	f.verifier.EXPECT().Verify(gomock.Any(), "t").Return(models.VerifiedClaims{Subject: "x"}, nil)
	f.users.EXPECT().GetOrCreate(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrExecutingStatement)

	_, err := f.svc.CompleteLogin(context.Background(), "c", "s", "s")
	assert.ErrorIs(t, err, ErrUserResolutionFailed)
}

func TestAuthService_CompleteLogin_LastLoginFailureWithdrawsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAuthFixture(t, ctrl, time.Now())

	f.identity.EXPECT().ExchangeCode(gomock.Any(), "c").Return(models.TokenResponse{IDToken: "t"}, nil)
	f.verifier.EXPECT().Verify(gomock.Any(), "t").Return(models.VerifiedClaims{Subject: "x"}, nil)
	f.users.EXPECT().GetOrCreate(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1}, nil)
	f.ids.EXPECT().Random().Return("tok")
	gomock.InOrder(
		f.sessions.EXPECT().Put("tok", gomock.Any()),
		f.userRepo.EXPECT().UpdateLastLogin(gomock.Any(), int64(1), gomock.Any()).Return(store.ErrExecutingStatement),
		f.sessions.EXPECT().Remove("tok"),
	)

	_, err := f.svc.CompleteLogin(context.Background(), "c", "s", "s")
	assert.ErrorIs(t, err, ErrLoginNotRecorded)
	assert.True(t, store.IsStorageError(err))
}

// ── Logout ──────────────────────────────────────────────────────────────────

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAuthFixture(t, ctrl, time.Now())

	f.sessions.EXPECT().Remove("tok")

	got := f.svc.Logout(context.Background(), "tok")

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "blockplot.us.auth0.com", u.Host)
	assert.Equal(t, "/v2/logout", u.Path)
	assert.Equal(t, "client-id", u.Query().Get("client_id"))
	assert.Equal(t, "http://localhost:8080/", u.Query().Get("returnTo"))
}

func TestAuthService_Logout_WithoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAuthFixture(t, ctrl, time.Now())

	// no Remove expected
	assert.NotEmpty(t, f.svc.Logout(context.Background(), ""))
}

// ── ResolveSession ──────────────────────────────────────────────────────────

func TestAuthService_ResolveSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAuthFixture(t, ctrl, time.Now())

	sess := models.Session{UserID: 7, BlockCount: 0, KeyPresent: false, Email: "ada@example.com"}
	user := models.User{UserID: 7, BlockCount: 1, KeyPresent: true}

	f.sessions.EXPECT().Get("tok").Return(sess, nil)
	f.userRepo.EXPECT().FindUserByID(gomock.Any(), int64(7)).Return(user, nil)

	got, err := f.svc.ResolveSession(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "tok", got.Token)
	assert.Equal(t, user, got.User)
	assert.Equal(t, 1, got.Session.BlockCount)
	assert.True(t, got.Session.KeyPresent)
	assert.Equal(t, "ada@example.com", got.Session.Email)
}

func TestAuthService_ResolveSession_Unauthenticated(t *testing.T) {
	tests := []struct {
		name  string
		token string
		setup func(f authFixture)
	}{
		{
			name:  "no cookie",
			token: "",
			setup: func(authFixture) {},
		},
		{
			name:  "unknown token",
			token: "tok",
			setup: func(f authFixture) {
				f.sessions.EXPECT().Get("tok").Return(models.Session{}, session.ErrSessionNotFound)
			},
		},
		{
			name:  "expired session is removed",
			token: "tok",
			setup: func(f authFixture) {
				f.sessions.EXPECT().Get("tok").Return(models.Session{}, session.ErrSessionExpired)
				f.sessions.EXPECT().Remove("tok")
			},
		},
		{
			name:  "user vanished",
			token: "tok",
			setup: func(f authFixture) {
				f.sessions.EXPECT().Get("tok").Return(models.Session{UserID: 3}, nil)
				f.userRepo.EXPECT().FindUserByID(gomock.Any(), int64(3)).Return(models.User{}, store.ErrNoUserWasFound)
				f.sessions.EXPECT().Remove("tok")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newAuthFixture(t, ctrl, time.Now())
			tt.setup(f)

			_, err := f.svc.ResolveSession(context.Background(), tt.token)
			assert.ErrorIs(t, err, ErrUnauthenticated)
		})
	}
}

func TestAuthService_ResolveSession_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAuthFixture(t, ctrl, time.Now())

	f.sessions.EXPECT().Get("tok").Return(models.Session{UserID: 3}, nil)
	f.userRepo.EXPECT().FindUserByID(gomock.Any(), int64(3)).Return(models.User{}, errors.Join(store.ErrExecutingQuery))

	_, err := f.svc.ResolveSession(context.Background(), "tok")
	assert.NotErrorIs(t, err, ErrUnauthenticated)
	assert.True(t, store.IsStorageError(err))
}

// Expired sessions stay physically stored until a read removes them.
func TestAuthService_ResolveSession_WithMemoryStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAuthFixture(t, ctrl, time.Now())

	mem := session.NewMemoryStore()
	f.svc.sessions = mem
	mem.Put("old", models.Session{UserID: 1, ExpiresAt: time.Now().Add(-time.Minute).Unix()})
	require.Equal(t, 1, mem.Len())

	_, err := f.svc.ResolveSession(context.Background(), "old")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Equal(t, 0, mem.Len())
}
