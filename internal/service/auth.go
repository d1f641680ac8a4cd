package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/MarkAnthonyM/BlockPlot/internal/adapter"
	"github.com/MarkAnthonyM/BlockPlot/internal/config"
	"github.com/MarkAnthonyM/BlockPlot/internal/logger"
	"github.com/MarkAnthonyM/BlockPlot/internal/metrics"
	"github.com/MarkAnthonyM/BlockPlot/internal/session"
	"github.com/MarkAnthonyM/BlockPlot/internal/store"
	"github.com/MarkAnthonyM/BlockPlot/models"
)

const loginScope = "openid profile email"

type authService struct {
	cfg config.Auth

	identity adapter.IdentityProvider
	verifier TokenVerifier
	users    UserDirectory
	userRepo store.UserRepository
	sessions SessionStore
	ids      IDGenerator

	now    func() time.Time
	logger *logger.Logger
}

func NewAuthService(
	cfg config.Auth,
	identity adapter.IdentityProvider,
	verifier TokenVerifier,
	users UserDirectory,
	userRepo store.UserRepository,
	sessions SessionStore,
	ids IDGenerator,
	logger *logger.Logger,
) AuthService {
	return &authService{
		cfg:      cfg,
		identity: identity,
		verifier: verifier,
		users:    users,
		userRepo: userRepo,
		sessions: sessions,
		ids:      ids,
		now:      time.Now,
		logger:   logger,
	}
}

// StartLogin implements [AuthService].
func (a *authService) StartLogin(ctx context.Context) (models.LoginStart, error) {
	state := a.ids.Random()

	query := url.Values{}
	query.Set("audience", a.cfg.ExpectedAudience())
	query.Set("response_type", "code")
	query.Set("client_id", a.cfg.ClientID)
	query.Set("redirect_uri", a.cfg.RedirectURL)
	query.Set("state", state)
	query.Set("scope", loginScope)

	authorize := url.URL{
		Scheme:   "https",
		Host:     a.cfg.Domain,
		Path:     "/authorize",
		RawQuery: query.Encode(),
	}

	return models.LoginStart{State: state, AuthorizeURL: authorize.String()}, nil
}

// CompleteLogin implements [AuthService]. last_login_at is only updated once
// the session is stored; if that update fails the session is withdrawn.
func (a *authService) CompleteLogin(ctx context.Context, code, state, cookieState string) (models.LoginResult, error) {
	result, err := a.completeLogin(ctx, code, state, cookieState)
	metrics.LoginAttempts.WithLabelValues(metrics.Outcome(err)).Inc()
	return result, err
}

func (a *authService) completeLogin(ctx context.Context, code, state, cookieState string) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	if cookieState == "" {
		return models.LoginResult{}, ErrMissingState
	}
	if subtle.ConstantTimeCompare([]byte(state), []byte(cookieState)) != 1 {
		return models.LoginResult{}, ErrStateMismatch
	}
	if code == "" {
		return models.LoginResult{}, ErrMissingCode
	}

	tokens, err := a.identity.ExchangeCode(ctx, code)
	if err != nil {
		log.Err(err).Str("func", "authService.CompleteLogin").Msg("error exchanging authorization code")
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrTokenExchangeFailed, err)
	}

	claims, err := a.verifier.Verify(ctx, tokens.IDToken)
	if err != nil {
		log.Warn().Err(err).Str("func", "authService.CompleteLogin").Msg("identity token rejected")
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrInvalidIdentity, err)
	}

	user, err := a.users.GetOrCreate(ctx, claims)
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrUserResolutionFailed, err)
	}

	sess := models.Session{
		UserID:      user.UserID,
		AuthSubject: claims.Subject,
		ExpiresAt:   claims.ExpiresAt,
		Email:       claims.Email,
		GivenName:   claims.GivenName,
		Nickname:    claims.Nickname,
		Picture:     claims.Picture,
		BlockCount:  user.BlockCount,
		KeyPresent:  user.KeyPresent,
	}
	token := a.ids.Random()
	a.sessions.Put(token, sess)

	if err = a.userRepo.UpdateLastLogin(ctx, user.UserID, a.now().UTC()); err != nil {
		a.sessions.Remove(token)
		log.Err(err).Str("func", "authService.CompleteLogin").Msg("error updating last login, session withdrawn")
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrLoginNotRecorded, err)
	}

	log.Info().Str("func", "authService.CompleteLogin").Int64("user_id", user.UserID).Msg("session issued")
	return models.LoginResult{SessionToken: token, Session: sess}, nil
}

// Logout implements [AuthService].
func (a *authService) Logout(ctx context.Context, token string) string {
	if token != "" {
		a.sessions.Remove(token)
	}
	metrics.LogoutTotal.Inc()

	query := url.Values{}
	query.Set("client_id", a.cfg.ClientID)
	query.Set("returnTo", a.cfg.PostLogoutURL)

	logout := url.URL{
		Scheme:   "https",
		Host:     a.cfg.Domain,
		Path:     "/v2/logout",
		RawQuery: query.Encode(),
	}
	return logout.String()
}

// ResolveSession implements [AuthService]. The returned session carries the
// current block count and key flag of the user rather than the login-time
// snapshot. Expired sessions and sessions of vanished users are removed.
func (a *authService) ResolveSession(ctx context.Context, token string) (models.Principal, error) {
	if token == "" {
		return models.Principal{}, ErrUnauthenticated
	}

	sess, err := a.sessions.Get(token)
	if errors.Is(err, session.ErrSessionExpired) {
		a.sessions.Remove(token)
		return models.Principal{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	user, err := a.userRepo.FindUserByID(ctx, sess.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		a.sessions.Remove(token)
		return models.Principal{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if err != nil {
		return models.Principal{}, err
	}

	sess.BlockCount = user.BlockCount
	sess.KeyPresent = user.KeyPresent

	return models.Principal{Token: token, Session: sess, User: user}, nil
}
