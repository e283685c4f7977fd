package backend

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stitchkart/storefront/internal/core/domain"
)

func (c Client) Login(
	ctx context.Context, creds domain.Credentials,
) (domain.AuthSession, error) {
	const op = "Client.Login"

	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{creds.Email, creds.Password}

	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/login", body, &resp)
	if err != nil {
		return domain.AuthSession{}, fmt.Errorf("%s: %w", op, err)
	}
	return c.toSession(resp), nil
}

// ExchangeCode completes the OAuth-style login callback.
func (c Client) ExchangeCode(
	ctx context.Context, code string,
) (domain.AuthSession, error) {
	const op = "Client.ExchangeCode"

	var resp authResponse
	path := "/v1/auth/callback?code=" + url.QueryEscape(code)
	if err := c.get(ctx, path, &resp); err != nil {
		return domain.AuthSession{}, fmt.Errorf("%s: %w", op, err)
	}
	return c.toSession(resp), nil
}

// toSession builds the session from the auth response, falling
// back to the access token's claims for any profile field the
// response body omits. The token is issued by the backend and is
// not verified client-side; claims are display data only.
func (c Client) toSession(resp authResponse) domain.AuthSession {
	sess := domain.AuthSession{
		Authenticated: true,
		UserID:        resp.User.ID,
		AccessToken:   resp.AccessToken,
		Profile: domain.UserProfile{
			Name:  resp.User.Name,
			Email: resp.User.Email,
		},
	}

	if sess.UserID != "" && sess.Profile.Name != "" && sess.Profile.Email != "" {
		return sess
	}

	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(resp.AccessToken, claims)
	if err != nil {
		slog.Warn("failed to parse access token claims", "err", err)
		return sess
	}

	if sess.UserID == "" {
		sess.UserID, _ = claims["sub"].(string)
	}
	if sess.Profile.Name == "" {
		sess.Profile.Name, _ = claims["name"].(string)
	}
	if sess.Profile.Email == "" {
		sess.Profile.Email, _ = claims["email"].(string)
	}
	return sess
}
