package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// userIDKey is the gin context key under which the gate stores the
// authenticated identity. Handlers read it through currentUserID only.
const userIDKey = "userID"

// authRequired is the authentication gate. It extracts the bearer token,
// validates it and parses the subject as a UUID. All failure causes —
// missing header, wrong scheme, bad signature, expired token, malformed
// subject — produce the same 401 response.
func (h *Handler) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			unauthorized(c)
			return
		}

		subject, err := h.tokens.Validate(token)
		if err != nil {
			unauthorized(c)
			return
		}

		// A valid signature is no excuse for a garbage subject.
		userID, err := uuid.Parse(subject)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(userIDKey, userID.String())
		c.Next()
	}
}

// currentUserID returns the identity stored by the gate. An empty result
// means the route was wired without the gate, which is a programming error
// handled by the caller as unauthorized.
func currentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.Fields(header)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func unauthorized(c *gin.Context) {
	writeError(c, http.StatusUnauthorized, "unauthorized", "invalid or missing token")
}
