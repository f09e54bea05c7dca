package crm

import (
	"bytes"
	"context"
	"deskgate/bizerror"
	"deskgate/infra/tracing"
	"deskgate/perm"
	"deskgate/session"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"os"
	"time"
)

// function indirections for tests
var (
	LoginFunc            = Login
	FetchPermissionsFunc = FetchPermissions
	RevokeSessionFunc    = RevokeSession
)

var ActiveClient *Client

// Client talks to the CRM backend on behalf of the gateway. Every
// failure is classified: authentication rejections, missing endpoints
// and unreachable service map to distinct sentinel errors, because the
// session store reacts differently to each.
type Client struct {
	BaseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   10 * time.Second,
			Transport: &tracing.TracingTransport{Transport: http.DefaultTransport},
		},
	}
}

// BootstrapClientFromEnv initializes ActiveClient from CRM_SERVICE,
// e.g. "http://crm-backend:8080".
func BootstrapClientFromEnv() error {
	baseURL := os.Getenv("CRM_SERVICE")
	if baseURL == "" {
		return errors.New("environment variable CRM_SERVICE is not set")
	}
	ActiveClient = NewClient(baseURL)
	return nil
}

type loginResponse struct {
	Token    string           `json:"token"`
	Identity session.Identity `json:"identity"`
}

// Login authenticates the operator against the CRM backend and returns
// the issued identity and token.
func Login(ctx context.Context, name, password string) (*session.Identity, string, error) {
	reqBody, err := json.Marshal(&session.LoginRequest{Name: name, Password: password})
	if err != nil {
		return nil, "", err
	}
	req, err := http.NewRequest(http.MethodPost, ActiveClient.BaseURL+"/v1/sessions", bytes.NewReader(reqBody))
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Content-Type", "application/json;charset=UTF-8")

	body, err := ActiveClient.do(req.WithContext(ctx))
	if err != nil {
		return nil, "", err
	}

	login := loginResponse{}
	if err := json.Unmarshal(body, &login); err != nil {
		return nil, "", fmt.Errorf("invalid login response: %w", err)
	}
	if login.Token == "" {
		return nil, "", errors.New("login response carries no token")
	}
	return &login.Identity, login.Token, nil
}

// FetchPermissions loads the permission grant set of the session
// identified by token.
func FetchPermissions(ctx context.Context, token string) (*perm.PermissionSet, error) {
	req, err := http.NewRequest(http.MethodGet, ActiveClient.BaseURL+"/v1/session/permissions", nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: session.KeySecToken, Value: token})

	body, err := ActiveClient.do(req.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	set := perm.PermissionSet{}
	if err := json.Unmarshal(body, &set); err != nil {
		return nil, fmt.Errorf("invalid permissions response: %w", err)
	}
	return &set, nil
}

// RevokeSession invalidates the token upstream. Best effort: local
// logout does not depend on it.
func RevokeSession(ctx context.Context, token string) error {
	req, err := http.NewRequest(http.MethodDelete, ActiveClient.BaseURL+"/v1/sessions", nil)
	if err != nil {
		return err
	}
	req.AddCookie(&http.Cookie{Name: session.KeySecToken, Value: token})

	_, err = ActiveClient.do(req.WithContext(ctx))
	if err != nil && !errors.Is(err, bizerror.ErrUnauthenticated) {
		return err
	}
	return nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, bizerror.ErrUpstreamUnreachable)
		}
		return nil, err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, bizerror.ErrUnauthenticated)
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, bizerror.ErrUpstreamNotFound)
	default:
		return nil, fmt.Errorf("%s %s: unexpected status %d: %s", req.Method, req.URL.Path, resp.StatusCode, string(body))
	}
}
