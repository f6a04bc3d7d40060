package middleware

import (
	"net/http"

	"assistec/internal/domain/entities"
	"assistec/internal/usecase"
	"assistec/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errSessionLoading = pkg.NewDomainErrorSimple("SESSION_LOADING", "Sessão ainda carregando", http.StatusServiceUnavailable)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Sessão expirada ou inexistente. Faça login novamente.", http.StatusUnauthorized)
)

// RequireSession gates protected routes on the operator session. While the
// session is still loading nothing is decided and the client should retry.
// Without an identity provider configured the gate is open.
func RequireSession(auth usecase.IAuthSessionUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.Configured() {
			c.Next()
			return
		}
		if auth.State() == entities.SessionStateLoading {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(errSessionLoading.HTTPStatus, errSessionLoading.ToHTTPError())
			return
		}
		if auth.User() == nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Next()
	}
}
