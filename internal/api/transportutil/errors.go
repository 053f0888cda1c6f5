package transportutil

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/api/endpointutil"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/apperrors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/providers/provider"
)

type Error struct {
	HTTPCode int
	Message  string
}

func (e Error) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(e.Message)), nil
}

func (e Error) Error() string {
	return e.Message
}

type ErrorResponse struct {
	Error *Error `json:"error,omitempty"`
}

func makeError(code int, e error) *Error {
	return &Error{
		HTTPCode: code,
		Message:  e.Error(),
	}
}

// MakeError hides messages of internal errors from clients.
func MakeError(e error) *Error {
	switch errors.Cause(e) {
	case apperrors.ErrNotFound, provider.ErrNotFound:
		return makeError(http.StatusNotFound, e)
	case apperrors.ErrBadRequest:
		return makeError(http.StatusBadRequest, e)
	case apperrors.ErrUnauthorized:
		return makeError(http.StatusUnauthorized, e)
	case provider.ErrUnauthorized, provider.ErrForbidden:
		return makeError(http.StatusForbidden, e)
	}

	return makeError(http.StatusInternalServerError, errors.New("internal error"))
}

func EncodeError(ctx context.Context, err error, w http.ResponseWriter) {
	httpErr := MakeError(err)
	if httpErr.HTTPCode == http.StatusInternalServerError {
		if rc := endpointutil.RequestContext(ctx); rc != nil {
			rc.Logger().Errorf("Request failed: %s", err)
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(httpErr.HTTPCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: httpErr})
}

func EncodeJSONResponse(_ context.Context, w http.ResponseWriter, resp interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	return errors.Wrap(json.NewEncoder(w).Encode(resp), "failed to encode response")
}
