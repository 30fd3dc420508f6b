package cookie

import (
	"net/http"
	"time"

	"salon-reserve/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"
)

type TokenCookies struct {
	AccessToken   string
	RefreshToken  string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, tokens TokenCookies) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(AccessTokenCookieName, tokens.AccessToken, int(tokens.AccessExpiry.Seconds()), "/", cfg.Domain, cfg.Secure, true)
	// refresh token is only sent to the auth endpoints
	c.SetCookie(RefreshTokenCookieName, tokens.RefreshToken, int(tokens.RefreshExpiry.Seconds()), "/api/auth", cfg.Domain, cfg.Secure, true)
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(AccessTokenCookieName, "", -1, "/", cfg.Domain, cfg.Secure, true)
	c.SetCookie(RefreshTokenCookieName, "", -1, "/api/auth", cfg.Domain, cfg.Secure, true)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
