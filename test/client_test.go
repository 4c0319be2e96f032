//go:build integration

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/2beens/gymlog/internal/auth"

	"github.com/stretchr/testify/require"
)

type loginResponse struct {
	Token   string       `json:"token"`
	UserID  string       `json:"userId"`
	Profile auth.Profile `json:"profile"`
}

// do sends a request to the running server and returns the status code and body.
func (s *IntegrationTestSuite) do(ctx context.Context, method, path, token string, body any) (int, []byte) {
	t := s.T()
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(auth.TokenHeader, token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) doJSON(ctx context.Context, method, path, token string, body any, wantStatus int, dest any) {
	t := s.T()
	t.Helper()

	status, respBytes := s.do(ctx, method, path, token, body)
	require.Equal(t, wantStatus, status, string(respBytes))
	if dest != nil {
		require.NoError(t, json.Unmarshal(respBytes, dest), string(respBytes))
	}
}

func (s *IntegrationTestSuite) login(ctx context.Context, t *testing.T, email string) loginResponse {
	t.Helper()

	var resp loginResponse
	s.doJSON(ctx, http.MethodPost, "/a/login", "", auth.Credentials{
		Email:    email,
		Password: testPassword,
	}, http.StatusOK, &resp)
	require.NotEmpty(t, resp.Token)

	return resp
}
