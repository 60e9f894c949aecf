package middleware

import (
	"net/http"

	"github.com/davi814/projeto-pi-definitivo/internal/domain/entity"
	"github.com/davi814/projeto-pi-definitivo/pkg/response"
)

// RequireRole lets the request through only when the authenticated role is one of roles.
// Role is read from context (set by AuthMiddleware from JWT claims)
func RequireRole(message string, roles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Faça login para continuar")
				return
			}

			allowed := false
			for _, allowedRole := range roles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, message)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireClient gates quote and review routes.
func RequireClient(next http.Handler) http.Handler {
	return RequireRole("Apenas clientes podem realizar esta ação", entity.RoleClient)(next)
}

// RequireProfessional gates the profile completion pages.
func RequireProfessional(next http.Handler) http.Handler {
	return RequireRole("Apenas profissionais podem acessar esta página", entity.RoleProfessional)(next)
}
