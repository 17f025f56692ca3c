package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"BOAT_CHECKOUT_BACK-END/internal/config"
	"BOAT_CHECKOUT_BACK-END/internal/utils"
)

const sessionTokenIssuer = "boat-checkout"

// SessionClaims binds a token to one checkout session
type SessionClaims struct {
	SessionID uuid.UUID `json:"session_id"`
	jwt.RegisteredClaims
}

// GenerateSessionToken signs a token for the given checkout session
func GenerateSessionToken(sessionID uuid.UUID, cfg *config.JWTConfig) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(cfg.SessionTokenTTL)
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionTokenIssuer,
			Subject:   sessionID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateSessionToken validates a session token and returns the claims
func ValidateSessionToken(tokenString string, cfg *config.JWTConfig) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionTokenIssuer),
	)
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid && claims.SessionID != uuid.Nil {
		return claims, nil
	}

	return nil, jwt.ErrTokenMalformed
}

// SessionAuth requires a bearer token issued for the session named by the
// {id} path segment
func SessionAuth(next http.HandlerFunc, cfg *config.JWTConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Authorization header required")
			return
		}

		// Extract token from "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid authorization header format")
			return
		}

		claims, err := ValidateSessionToken(tokenParts[1], cfg)
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Session token expired"
			}
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", msg)
			return
		}

		pathID, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request", "Session id must be a UUID")
			return
		}
		if pathID != claims.SessionID {
			utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Token was issued for a different session")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSessionID(r.Context(), claims.SessionID)))
	}
}
