package jwtmw

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pharma_backend/internal/feature/auth/domain/entity"
)

// ContextUser is the Gin context key under which the resolved user is stored.
// The stored value is an entity.User with the password hash stripped.
const ContextUser = "currentUser"

// UserFinder resolves the token subject to a stored user.
// Goの慣例に従い、インターフェースはプロバイダーではなくコンシューマー（middleware）が定義します。
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// AuthRequired returns a Gin middleware function that validates bearer tokens,
// resolves the token subject to a stored user and injects it into the request
// context. Requests failing any step are rejected with 401; expired and
// malformed tokens are deliberately indistinguishable to the caller.
func AuthRequired(tokens Verifier, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Verify token signature and expiry
		email, err := tokens.VerifyToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// 3. Resolve the subject; the user may have been deleted after issuance
		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		// 4. Attach the sanitized user for downstream handlers
		c.Set(ContextUser, user.Sanitized())

		// 5. Pass control to the next handler
		c.Next()
	}
}

// CurrentUser retrieves the authenticated user attached by AuthRequired.
// The boolean is false when the middleware did not run for this request.
func CurrentUser(c *gin.Context) (entity.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return entity.User{}, false
	}
	u, ok := v.(entity.User)
	return u, ok
}
