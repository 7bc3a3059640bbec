package auth

import (
	"net/http"
	"os"
	"time"
)

func cookieDomain() string {
	return os.Getenv("COOKIE_DOMAIN")
}

func newTokenCookie(name, value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   cookieDomain(),
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

// SetTokenCookies attaches the access and refresh tokens as HttpOnly
// cookies on the response.
func SetTokenCookies(w http.ResponseWriter, accessToken, refreshToken string) {
	http.SetCookie(w, newTokenCookie("jwt", accessToken, AccessTokenTTL))
	http.SetCookie(w, newTokenCookie("refresh_token", refreshToken, RefreshTokenTTL))
}

// ClearTokenCookies expires both token cookies.
func ClearTokenCookies(w http.ResponseWriter) {
	http.SetCookie(w, newTokenCookie("jwt", "", -time.Second))
	http.SetCookie(w, newTokenCookie("refresh_token", "", -time.Second))
}
