package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/warnwave/warnwave-cli/internal/client/models"
	"github.com/warnwave/warnwave-cli/internal/common"
)

const (
	registerPath     = "/api/auth/register"
	loginPath        = "/api/auth/login"
	profileImagePath = "/api/auth/profile-image"
)

type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

// NewHTTPClient builds a backend client. The timeout bounds every request so
// a hanging backend cannot leave an operation in flight forever.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type profileImageRequest struct {
	ProfileImage string `json:"profileImage"`
}

type authResponse struct {
	Token string         `json:"token"`
	User  models.Profile `json:"user"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (c *HTTPClient) Register(ctx context.Context, username string, password []byte) (string, *models.Profile, error) {
	return c.authenticate(ctx, registerPath, username, password)
}

func (c *HTTPClient) Login(ctx context.Context, username string, password []byte) (string, *models.Profile, error) {
	return c.authenticate(ctx, loginPath, username, password)
}

func (c *HTTPClient) authenticate(ctx context.Context, path, username string, password []byte) (string, *models.Profile, error) {
	var resp authResponse
	req := credentialsRequest{Username: username, Password: string(password)}

	if err := c.postJSON(ctx, path, "", req, &resp); err != nil {
		return "", nil, err
	}
	if resp.Token == "" {
		return "", nil, fmt.Errorf("backend returned no token")
	}
	return resp.Token, &resp.User, nil
}

func (c *HTTPClient) UpdateProfileImage(ctx context.Context, token string, imageURL string) (*models.Profile, error) {
	var user models.Profile
	req := profileImageRequest{ProfileImage: imageURL}

	if err := c.postJSON(ctx, profileImagePath, token, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) postJSON(ctx context.Context, path, token string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		// timeouts, refused connections, DNS failures
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return mapStatus(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func mapStatus(resp *http.Response) error {
	var e errorResponse
	_ = json.NewDecoder(resp.Body).Decode(&e)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusConflict:
		return ErrAlreadyExists
	case resp.StatusCode >= 500:
		return ErrUnavailable
	default:
		if e.Message != "" {
			return fmt.Errorf("backend error: %s", e.Message)
		}
		return fmt.Errorf("backend error: %s", resp.Status)
	}
}
