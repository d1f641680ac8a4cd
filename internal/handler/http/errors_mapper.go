package http

import (
	"errors"
	"net/http"

	"github.com/MarkAnthonyM/BlockPlot/internal/adapter"
	"github.com/MarkAnthonyM/BlockPlot/internal/service"
	"github.com/MarkAnthonyM/BlockPlot/internal/store"
	"github.com/MarkAnthonyM/BlockPlot/internal/utils"
)

// errorStatuses is matched top to bottom. Service errors come first because
// they wrap the adapter and store errors they were caused by.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrMalformedForm, http.StatusBadRequest},
	{ErrNoPrincipal, http.StatusUnauthorized},

	{service.ErrMissingState, http.StatusBadRequest},
	{service.ErrMissingCode, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrStateMismatch, http.StatusForbidden},
	{service.ErrAPIKeyRequired, http.StatusForbidden},
	{service.ErrSkillblockLimitReached, http.StatusForbidden},
	{service.ErrInvalidIdentity, http.StatusUnauthorized},
	{service.ErrUnauthenticated, http.StatusUnauthorized},
	{service.ErrNoAPIKey, http.StatusNotFound},
	{service.ErrNoSkillblocks, http.StatusNotFound},
	{service.ErrTokenExchangeFailed, http.StatusInternalServerError},
	{service.ErrUserResolutionFailed, http.StatusInternalServerError},
	{service.ErrLoginNotRecorded, http.StatusInternalServerError},

	{adapter.ErrBreakerOpen, http.StatusInternalServerError},
	{adapter.ErrUnauthorized, http.StatusInternalServerError},
	{adapter.ErrExternalService, http.StatusInternalServerError},
	{adapter.ErrMalformedPayload, http.StatusInternalServerError},

	{store.ErrNoUserWasFound, http.StatusNotFound},
	{store.ErrSkillblockLimitReached, http.StatusForbidden},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// publicMessage is the error text sent to the client. Server faults are
// reported generically so that upstream and storage details stay in the logs.
func publicMessage(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}

// writeError maps err to a status and writes a JSON error body.
func writeError(w http.ResponseWriter, err error) int {
	status := statusFromError(err)
	utils.WriteError(w, publicMessage(err, status), status)
	return status
}
