package middleware

import (
	"strings"

	"pickup/core/cache"
	"pickup/core/constants"
	"pickup/core/controller"
	"pickup/core/errors"
	"pickup/core/logger"
	"pickup/core/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Middleware struct {
	tokens *utils.TokenIssuer
	cache  cache.Cache
}

func NewMiddleware(tokens *utils.TokenIssuer, cache cache.Cache) *Middleware {
	return &Middleware{tokens: tokens, cache: cache}
}

// BearerToken strips the "Bearer " prefix from the Authorization header.
func BearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return ""
}

func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := BearerToken(c)
			if token == "" {
				return controller.NewErrorResponse(401, errors.ErrMissingAuthorizationHeader, "missing authorization header")
			}

			claims, err := m.tokens.Parse(token)
			if err != nil {
				logger.Debug("Middleware:AuthMiddleware:Parse", err)
				return controller.NewErrorResponse(401, errors.ErrInvalidTokenFormat, "invalid or expired token")
			}

			blacklisted, err := m.cache.IsTokenBlacklisted(c.Request().Context(), claims.ID)
			if err != nil {
				logger.Error("Middleware:AuthMiddleware:IsTokenBlacklisted", err)
				return controller.NewErrorResponse(500, errors.ErrInternalServer, "failed to check token")
			}
			if blacklisted {
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "token has been revoked")
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}

// RequestID tags each request with a short id for log correlation.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = utils.GenerateID()
			}
			c.Set(constants.ContextRequestID, id)
			c.Response().Header().Set(echo.HeaderXRequestID, id)
			return next(c)
		}
	}
}

// Claims returns the token data stored by AuthMiddleware.
func Claims(c echo.Context) (*utils.TokenClaims, *errors.AppError) {
	claims, ok := c.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok || claims == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "user not authenticated", nil)
	}
	return claims, nil
}

func UserID(c echo.Context) (uuid.UUID, *errors.AppError) {
	claims, err := Claims(c)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}
