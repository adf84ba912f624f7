package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/apperr"
	"github.com/junaidrashid-git/storefront-api/auth"
	"github.com/junaidrashid-git/storefront-api/controllers/respond"
)

const principalKey = "principal"

// ValidateToken rejects requests without a valid bearer token and stores
// the caller's identity on the context.
func ValidateToken(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := tokens.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			respond.Abort(c, err)
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// RequireAdmin must run after ValidateToken.
func RequireAdmin(c *gin.Context) {
	p, ok := Principal(c)
	if !ok {
		respond.Abort(c, apperr.NewAuth("Unauthorized"))
		return
	}
	if !p.IsAdmin() {
		respond.Abort(c, apperr.NewForbidden("Forbidden"))
		return
	}
	c.Next()
}

// Principal returns the identity ValidateToken stored, if any.
func Principal(c *gin.Context) (auth.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return auth.Principal{}, false
	}
	p, ok := v.(auth.Principal)
	return p, ok
}
