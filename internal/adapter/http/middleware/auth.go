package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"editora_prisma/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// RequireAuth validates a Bearer token signed with HS256 and stores the
// caller's user id in the gin context. Rejections use the short
// "unauthenticated" code the front end matches on.
func RequireAuth(secret string) gin.HandlerFunc {
	unauthenticated := pkg.NewDomainErrorSimple("unauthenticated", "Autenticação necessária", http.StatusUnauthorized)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(tokenStr) == "" {
			c.AbortWithStatusJSON(unauthenticated.HTTPStatus, unauthenticated.ToHTTPError())
			return
		}

		claims, err := parseToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(unauthenticated.HTTPStatus, unauthenticated.ToHTTPError())
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

func parseToken(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("não foi possível extrair claims")
	}
	return claims, nil
}
