package user

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userinfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

type GoogleUserInfo struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GoogleProvider exchanges an OAuth authorization code for the user's
// profile and refresh token.
type GoogleProvider interface {
	Exchange(ctx context.Context, code string) (*GoogleUserInfo, string, error)
}

type googleProvider struct {
	config *oauth2.Config
}

func NewGoogleProvider() GoogleProvider {
	return &googleProvider{
		config: &oauth2.Config{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
}

func (p *googleProvider) Exchange(ctx context.Context, code string) (*GoogleUserInfo, string, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, "", fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	client := p.config.Client(ctx, token)
	resp, err := client.Get(userinfoEndpoint)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("userinfo request returned status %d", resp.StatusCode)
	}

	var info GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, "", fmt.Errorf("failed to decode userinfo: %w", err)
	}
	if info.Email == "" {
		return nil, "", fmt.Errorf("userinfo response missing email")
	}

	return &info, token.RefreshToken, nil
}
