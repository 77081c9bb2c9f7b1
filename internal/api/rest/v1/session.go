package v1

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CariHQ/nnp-web/internal/domain/users"
)

// ClaimsKey is the gin context key holding the verified *users.Claims
const ClaimsKey = "claims"

// SessionCookie describes the cookie carrying the session token
type SessionCookie struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// Set writes token as an HttpOnly, SameSite=Lax cookie
func (s SessionCookie) Set(ctx *gin.Context, token string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(s.Name, token, int(s.TTL.Seconds()), "/", "", s.Secure, true)
}

// Clear expires the cookie
func (s SessionCookie) Clear(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(s.Name, "", -1, "/", "", s.Secure, true)
}

// Token returns the session token from the cookie, falling back to a Bearer header
func (s SessionCookie) Token(ctx *gin.Context) string {
	if token, err := ctx.Cookie(s.Name); err == nil && token != "" {
		return token
	}
	if header := ctx.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

// ClientInfo describes the caller for the session record
func ClientInfo(ctx *gin.Context) users.ClientInfo {
	return users.ClientInfo{
		IPAddress: ctx.ClientIP(),
		UserAgent: ctx.Request.UserAgent(),
	}
}

// RequireSession rejects requests without a valid session with 401 JSON
func RequireSession(auth users.AuthService, cookie SessionCookie) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, err := auth.Verify(ctx, cookie.Token(ctx))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: users.ErrUnauthorized.Error()})
			return
		}
		ctx.Set(ClaimsKey, claims)
		ctx.Next()
	}
}

// RequireSessionPage redirects browsers without a valid session to loginPath
func RequireSessionPage(auth users.AuthService, cookie SessionCookie, loginPath string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, err := auth.Verify(ctx, cookie.Token(ctx))
		if err != nil {
			target := loginPath
			if ctx.Request.Method == http.MethodGet {
				target += "?next=" + url.QueryEscape(ctx.Request.URL.Path)
			}
			ctx.Redirect(http.StatusFound, target)
			ctx.Abort()
			return
		}
		ctx.Set(ClaimsKey, claims)
		ctx.Next()
	}
}

// ClaimsFrom returns the claims stored by the session middleware
func ClaimsFrom(ctx *gin.Context) (*users.Claims, bool) {
	value, ok := ctx.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := value.(*users.Claims)
	return claims, ok
}
