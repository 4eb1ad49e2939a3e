// Package google implements the Google authorization-code flow.
package google

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"

	"secrets/config"
	"secrets/internal/domain/entity"
	domainerrors "secrets/internal/domain/errors"
	"secrets/internal/domain/service"
	"secrets/internal/errors"

	"go.uber.org/fx"
)

const (
	defaultUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"
	httpTimeout        = 10 * time.Second
	maxUserInfoBytes   = 1 << 20
)

var defaultScopes = []string{"profile", "email"}

// OAuthService handles Google OAuth infrastructure operations
type OAuthService struct {
	oauthConfig *oauth2.Config
	userInfoURL string
	httpClient  *http.Client
	logger      *slog.Logger
}

// OAuthServiceParams holds dependencies for OAuthService, injected by Fx.
type OAuthServiceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewOAuthService creates a new Google OAuth service
func NewOAuthService(params OAuthServiceParams) service.OAuthService {
	return newOAuthService(params.Config, googleoauth.Endpoint, params.Logger)
}

func newOAuthService(cfg *config.Config, endpoint oauth2.Endpoint, logger *slog.Logger) *OAuthService {
	oauthCfg := &oauth2.Config{
		Endpoint: endpoint,
		Scopes:   defaultScopes,
	}
	userInfoURL := defaultUserInfoURL

	if cfg != nil && cfg.GoogleOAuth != nil {
		oauthCfg.ClientID = cfg.GoogleOAuth.ClientID
		oauthCfg.ClientSecret = cfg.GoogleOAuth.ClientSecret
		oauthCfg.RedirectURL = cfg.GoogleOAuth.RedirectURI
		if len(cfg.GoogleOAuth.Scopes) > 0 {
			oauthCfg.Scopes = cfg.GoogleOAuth.Scopes
		}
		if cfg.GoogleOAuth.UserInfoURL != "" {
			userInfoURL = cfg.GoogleOAuth.UserInfoURL
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &OAuthService{
		oauthConfig: oauthCfg,
		userInfoURL: userInfoURL,
		httpClient:  &http.Client{Timeout: httpTimeout},
		logger:      logger,
	}
}

// AuthorizationURL builds the Google consent screen URL for the given state.
func (s *OAuthService) AuthorizationURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state)
}

// Exchange trades the authorization code for an access token and fetches the user's profile.
// Every failure is reported as ErrOAuthExchangeFailure.
func (s *OAuthService) Exchange(ctx context.Context, code string) (*entity.ExternalProfile, error) {
	if code == "" {
		return nil, errors.Wrap(domainerrors.ErrOAuthExchangeFailure, "missing authorization code")
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		s.logger.Warn("Google token exchange failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthExchangeFailure, err.Error())
	}

	profile, err := s.fetchProfile(ctx, token)
	if err != nil {
		s.logger.Warn("Google userinfo request failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthExchangeFailure, err.Error())
	}

	return profile, nil
}

type userInfo struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (s *OAuthService) fetchProfile(ctx context.Context, token *oauth2.Token) (*entity.ExternalProfile, error) {
	client := s.oauthConfig.Client(ctx, token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxUserInfoBytes))

		return nil, errors.Errorf("user info request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var info userInfo
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxUserInfoBytes)).Decode(&info); err != nil {
		return nil, errors.Wrap(err, "failed to decode user info response")
	}
	if info.Sub == "" {
		return nil, errors.New("user info response has no subject")
	}

	return &entity.ExternalProfile{
		ProviderID: info.Sub,
		Email:      info.Email,
		Name:       info.Name,
	}, nil
}
