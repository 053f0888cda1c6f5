// Package remote calls the reasoning service that runs the model-backed analyses.
package remote

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/levigross/grequests"
	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/analyzers"
)

type Client struct {
	baseURL    string
	token      string
	log        logutil.Log
	maxRetries int
}

func NewClient(baseURL, token string, log logutil.Log) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		log:        log,
		maxRetries: 2,
	}
}

type analyzeRequest struct {
	Kind string `json:"kind"`
	*analyzers.Input
}

type statusError struct {
	code int
	url  string
}

func (e statusError) Error() string {
	return fmt.Sprintf("got error code from %q: %d", e.url, e.code)
}

func (c Client) analyzeURL(kind string) string {
	return fmt.Sprintf("%s/v1/analyze/%s", c.baseURL, kind)
}

func (c Client) postOnce(ctx context.Context, url string, req interface{}, dest interface{}) error {
	headers := map[string]string{"Accept": "application/json"}
	if c.token != "" {
		headers["Authorization"] = "Bearer " + c.token
	}

	resp, err := grequests.Post(url, &grequests.RequestOptions{
		Context: ctx,
		Headers: headers,
		JSON:    req,
	})
	if err != nil {
		return errors.Wrapf(err, "unable to make POST http request %q", url)
	}
	defer func() {
		if cerr := resp.Close(); cerr != nil {
			c.log.Warnf("Can't close %q response: %s", url, cerr)
		}
	}()

	if !resp.Ok {
		return statusError{code: resp.StatusCode, url: url}
	}

	if err = resp.JSON(dest); err != nil {
		return errors.Wrapf(err, "can't read json body of %q", url)
	}
	return nil
}

// post retries transport errors and 5xx responses, 4xx ones are final.
func (c Client) post(ctx context.Context, kind string, in *analyzers.Input, dest interface{}) error {
	url := c.analyzeURL(kind)
	req := analyzeRequest{Kind: kind, Input: in}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	bmr := backoff.WithContext(backoff.WithMaxRetries(b, uint64(c.maxRetries)), ctx)

	return backoff.Retry(func() error {
		err := c.postOnce(ctx, url, req, dest)
		if err == nil {
			return nil
		}

		if se, ok := err.(statusError); ok && se.code < http.StatusInternalServerError {
			return backoff.Permanent(err)
		}
		if ctx.Err() != nil {
			return backoff.Permanent(err)
		}

		c.log.Infof("Retrying %s analysis after error: %s", kind, err)
		return err
	}, bmr)
}
