package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
	"github.com/SscSPs/loyalty_token_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CosignHeader carries additional identity proofs, one token per header value.
const CosignHeader = "X-Cosign-Token"

// AuthMiddleware creates a Gin middleware handler that turns the bearer token
// and every co-signature token into the request's signer set.
func AuthMiddleware(jwtSecret, issuer string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		tokens := append([]string{parts[1]}, c.Request.Header.Values(CosignHeader)...)
		signers := make([]domain.Name, 0, len(tokens))
		for _, tokenString := range tokens {
			signer, err := verifySigner(tokenString, jwtSecret, issuer)
			if err != nil {
				logger.Warn("Invalid token", slog.String("error", err.Error()))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": tokenErrorMessage(err)})
				return
			}
			signers = append(signers, signer)
		}

		names := make([]string, len(signers))
		for i, s := range signers {
			names[i] = s.String()
		}
		enrichedLogger := logger.With(slog.Any("signers", names))

		ctx := WithSigners(c.Request.Context(), signers...)
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))

		c.Next()
	}
}

var errInvalidSubject = errors.New("token subject is not a valid account name")

func verifySigner(tokenString, secret, issuer string) (domain.Name, error) {
	claims, err := utils.ParseAndValidateJWT(strings.TrimSpace(tokenString), secret, issuer)
	if err != nil {
		return "", err
	}
	signer := domain.Name(claims.Subject)
	if !signer.IsValid() {
		return "", errInvalidSubject
	}
	return signer, nil
}

func tokenErrorMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "Token has expired"
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return "Token not valid yet"
	case errors.Is(err, errInvalidSubject):
		return "Invalid token claims"
	default:
		return "Invalid token"
	}
}
