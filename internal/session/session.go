package session

import (
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hauraqrrta/smartmosspanel-app/models"
)

// Cookie names the dashboard client holds after a successful token
// verification. There is no server-side session table; validity is
// presence plus the cookie's own lifetime.
const (
	AuthCookie  = "smoss_auth"
	PanelCookie = "panelId"
	AreaCookie  = "areaName"
)

// TTL is the fixed credential lifetime.
const TTL = 24 * time.Hour

// LoginPath is where unauthenticated page requests are sent.
const LoginPath = "/login"

// assetExtensions are always reachable without a credential.
var assetExtensions = map[string]bool{
	".css": true,
	".js":  true,
	".png": true,
	".ico": true,
	".jpg": true,
}

// Exempt reports whether a path may be served without a credential: the
// API namespace, the login page itself, and static assets.
func Exempt(p string) bool {
	if strings.HasPrefix(p, "/api") || strings.HasPrefix(p, LoginPath) {
		return true
	}
	return assetExtensions[path.Ext(p)]
}

// Issue writes the credential cookies for a resolved token binding.
func Issue(c *gin.Context, binding models.TokenBinding) {
	maxAge := int(TTL.Seconds())

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(AuthCookie, "true", maxAge, "/", "", false, true)
	c.SetCookie(PanelCookie, binding.PanelID, maxAge, "/", "", false, false)
	c.SetCookie(AreaCookie, binding.AreaName, maxAge, "/", "", false, false)
}

// Gate intercepts every request and redirects non-exempt ones to the
// login page unless the auth cookie is present. No introspection beyond
// presence happens here.
func Gate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if Exempt(c.Request.URL.Path) {
			c.Next()
			return
		}

		if _, err := c.Cookie(AuthCookie); err != nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		c.Next()
	}
}
