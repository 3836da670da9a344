package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"plantcart/internal/usecase"
	"plantcart/pkg"
)

// AdminAuth gates the back-office endpoints behind the bearer token issued
// by the auth usecase. The verified role lands in the gin context under
// "role".
func AdminAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Authorization header required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		role, err := auth.Verify(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set("role", role)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", message, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
