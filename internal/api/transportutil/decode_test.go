package transportutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hookHeaders struct {
	Event    string `request:"X-GitHub-Event,header,"`
	Delivery string `request:"X-GitHub-Delivery,header,optional"`
}

type hookRequest struct {
	Req  *hookHeaders
	Body []byte
}

type idRequest struct {
	Req *struct {
		ID    uint `request:"id,urlPart,"`
		Limit int  `request:"limit,urlParam,optional"`
	}
}

func decodeWithVars(t *testing.T, req interface{}, r *http.Request, vars map[string]string) error {
	if vars != nil {
		r = mux.SetURLVars(r, vars)
	}
	return DecodeRequest(req, r)
}

func TestDecodeHeadersAndRawBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/v1/webhooks/github", strings.NewReader(`{"zen":"x"}`))
	r.Header.Set("X-GitHub-Event", "ping")

	var req hookRequest
	require.NoError(t, DecodeRequest(&req, r))
	assert.Equal(t, "ping", req.Req.Event)
	assert.Empty(t, req.Req.Delivery)
	assert.Equal(t, `{"zen":"x"}`, string(req.Body))
}

func TestDecodeMissingRequiredHeader(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/v1/webhooks/github", strings.NewReader(`{}`))

	var req hookRequest
	err := DecodeRequest(&req, r)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrBadRequest, errors.Cause(err))
}

func TestDecodeURLPartAndParam(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/analyses/15?limit=-3", nil)

	var req idRequest
	require.NoError(t, decodeWithVars(t, &req, r, map[string]string{"id": "15"}))
	assert.Equal(t, uint(15), req.Req.ID)
	assert.Equal(t, -3, req.Req.Limit)
}

func TestDecodeInvalidNumber(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/analyses/abc", nil)

	var req idRequest
	err := decodeWithVars(t, &req, r, map[string]string{"id": "abc"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrBadRequest, errors.Cause(err))
}

func TestDecodeInvalidJSONBody(t *testing.T) {
	var req struct {
		Req *struct {
			Name string `json:"name"`
		}
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
	err := DecodeRequest(&req, r)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrBadRequest, errors.Cause(err))
}
