package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// login
	ErrMissingState         = errors.New("anti-CSRF state cookie missing")
	ErrStateMismatch        = errors.New("anti-CSRF state mismatch")
	ErrMissingCode          = errors.New("authorization code missing")
	ErrTokenExchangeFailed  = errors.New("token exchange failed")
	ErrInvalidIdentity      = errors.New("identity token rejected")
	ErrUserResolutionFailed = errors.New("user could not be resolved")
	ErrLoginNotRecorded     = errors.New("login could not be recorded")

	// sessions
	ErrUnauthenticated = errors.New("not authenticated")

	// skillblocks
	ErrAPIKeyRequired         = errors.New("analytics api key required")
	ErrSkillblockLimitReached = errors.New("skillblock limit reached")

	// sync
	ErrNoAPIKey      = errors.New("no analytics api key on file")
	ErrNoSkillblocks = errors.New("user owns no skillblocks")
)
