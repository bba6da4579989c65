package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/thentamil/novelreader/internal/client/api"
	"github.com/thentamil/novelreader/internal/client/models"
	"github.com/thentamil/novelreader/internal/client/session"
)

// AuthService defines the authentication operations of the client.
//
// Contract:
//   - Login/Signup: authenticate against the server and persist the session
//     (token and user together) on success.
//   - ForgotPassword/ResetPassword: password recovery round trips.
//   - Logout: abort in-flight reads and clear the persisted session.
//   - CurrentUser: the cached user record, reconstructed from token claims
//     when the record is missing.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	Signup(ctx context.Context, payload models.SignupPayload) (*models.AuthResponse, error)
	Login(ctx context.Context, payload models.LoginPayload) (*models.AuthResponse, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, password string) (string, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	IsAuthenticated(ctx context.Context) (bool, error)
}

type authService struct {
	client   api.Client
	sessions *session.Manager
	validate *validator.Validate
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client api.Client, sessions *session.Manager) AuthService {
	return &authService{client: client, sessions: sessions, validate: newValidator()}
}

func (a *authService) Signup(ctx context.Context, payload models.SignupPayload) (*models.AuthResponse, error) {
	if err := validatePayload(a.validate, payload); err != nil {
		return nil, err
	}

	var resp models.AuthResponse
	if err := a.client.Post(ctx, "/auth/signup", payload, &resp, ""); err != nil {
		return nil, err
	}

	if err := a.persistSession(ctx, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *authService) Login(ctx context.Context, payload models.LoginPayload) (*models.AuthResponse, error) {
	if err := validatePayload(a.validate, payload); err != nil {
		return nil, err
	}

	var resp models.AuthResponse
	if err := a.client.Post(ctx, "/auth/login", payload, &resp, ""); err != nil {
		return nil, err
	}

	if err := a.persistSession(ctx, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// persistSession stores the authenticated session. Some deployments return
// only the token; in that case the user record is rebuilt from the token's
// claims before saving, so token and user always land together.
func (a *authService) persistSession(ctx context.Context, resp *models.AuthResponse) error {
	if resp.Token == "" {
		return &api.Error{Status: http.StatusInternalServerError, Message: "no access token received from server"}
	}

	if resp.User.ID == "" && resp.User.Email == "" {
		u, err := userFromToken(resp.Token)
		if err != nil {
			return fmt.Errorf("decode token claims: %w", err)
		}
		resp.User = *u
	}

	return a.sessions.SaveSession(ctx, resp.Token, &resp.User)
}

func (a *authService) ForgotPassword(ctx context.Context, email string) (string, error) {
	payload := models.ForgotPasswordPayload{Email: email}
	if err := validatePayload(a.validate, payload); err != nil {
		return "", err
	}

	var resp messageResponse
	if err := a.client.Post(ctx, "/auth/forgot-password", payload, &resp, ""); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (a *authService) ResetPassword(ctx context.Context, token, password string) (string, error) {
	payload := models.ResetPasswordPayload{Token: token, Password: password}
	if err := validatePayload(a.validate, payload); err != nil {
		return "", err
	}

	var resp messageResponse
	if err := a.client.Post(ctx, "/auth/reset-password", payload, &resp, ""); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Logout aborts in-flight keyed reads and clears the persisted session.
// No server round trip is involved.
func (a *authService) Logout(ctx context.Context) error {
	a.client.AbortAllRequests()
	return a.sessions.ClearAuth(ctx)
}

func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	u, err := a.sessions.User(ctx)
	if err != nil || u != nil {
		return u, err
	}

	// No cached record; fall back to the token claims if a token exists.
	token, err := a.sessions.Token(ctx)
	if err != nil || token == "" {
		return nil, err
	}
	return userFromToken(token)
}

func (a *authService) IsAuthenticated(ctx context.Context) (bool, error) {
	return a.sessions.IsAuthenticated(ctx)
}
