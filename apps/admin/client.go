package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/classwork"
	"github.com/trezcool/darasa/core/user"
)

// apiClient talks to a running API server: classroom state only lives in its memory.
type apiClient struct {
	baseURL string
	http    *http.Client
}

func newAPIClient(baseURL string) *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type apiError struct {
	Code    int
	Message string `json:"error"`
}

func (e apiError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

func (c *apiClient) signup(ctx context.Context, nu user.NewUser) error {
	return c.do(ctx, http.MethodPost, "/api/signup", nu, nil)
}

func (c *apiClient) results(ctx context.Context, student string) ([]classwork.Submission, error) {
	path := "/api/results"
	if student != "" {
		path += "?" + url.Values{"student": []string{student}}.Encode()
	}
	var subs []classwork.Submission
	if err := c.do(ctx, http.MethodGet, path, nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (c *apiClient) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&body).Encode(in); err != nil {
			return errors.Wrap(err, "encoding request")
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &body)
	if err != nil {
		return errors.Wrap(err, "creating request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		apiErr := apiError{Code: resp.StatusCode}
		if err = json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}
	if out != nil {
		if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrap(err, "decoding response")
		}
	}
	return nil
}
