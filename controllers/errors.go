package controllers

import (
	"errors"
	"net/http"

	"omex-backend/store"
	"omex-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondStoreError maps the data-access error taxonomy onto HTTP status
// codes. Unrecognized errors become opaque 500s.
func respondStoreError(c *gin.Context, err error) {
	var (
		validationErr *store.ValidationError
		notFoundErr   *store.NotFoundError
		authzErr      *store.AuthorizationError
		stockErr      *store.InsufficientStockError
		transientErr  *store.TransientError
		authErr       *store.AuthenticationError
	)

	switch {
	case errors.As(err, &validationErr):
		utils.RespondWithError(c, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &notFoundErr):
		utils.RespondWithError(c, http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &authzErr):
		utils.RespondWithError(c, http.StatusForbidden, authzErr.Error())
	case errors.As(err, &stockErr):
		utils.RespondWithError(c, http.StatusConflict, stockErr.Error())
	case errors.Is(err, store.ErrIllegalTransition):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	case errors.As(err, &transientErr):
		utils.RespondWithError(c, http.StatusServiceUnavailable, "backend temporarily unavailable, retry later")
	case errors.As(err, &authErr):
		utils.RespondWithError(c, http.StatusUnauthorized, authErr.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}

// tenantID pulls the authenticated user's id out of the gin context set
// by the auth middleware.
func tenantID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	str, ok := raw.(string)
	if !ok {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(str)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return uuid.Nil, false
	}
	return id, true
}
