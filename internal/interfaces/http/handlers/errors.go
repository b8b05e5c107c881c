package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	domainerrors "pocketpay.backend/internal/domain/errors"
	"pocketpay.backend/internal/interfaces/http/response"
)

// respondError maps domain sentinels to their HTTP representation before
// handing off to response.Error. AppErrors built in the usecases pass through
// untouched.
func respondError(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		response.Error(c, appErr)
		return
	}

	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		response.Error(c, domainerrors.NotFound("resource not found"))
	case errors.Is(err, domainerrors.ErrNotFriends):
		response.Error(c, domainerrors.Forbidden(domainerrors.ErrNotFriends.Error()))
	case errors.Is(err, domainerrors.ErrRequestFinalized):
		response.Error(c, domainerrors.Conflict(domainerrors.ErrRequestFinalized.Error()))
	case errors.Is(err, domainerrors.ErrLastIdentity):
		response.Error(c, domainerrors.Conflict(domainerrors.ErrLastIdentity.Error()))
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		response.Error(c, domainerrors.Conflict("resource already exists"))
	case errors.Is(err, domainerrors.ErrInvalidInput):
		response.Error(c, domainerrors.BadRequest("invalid input"))
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		response.Error(c, domainerrors.Unauthorized("invalid credentials"))
	case errors.Is(err, domainerrors.ErrTokenExpired):
		response.Error(c, domainerrors.Unauthorized("token has expired"))
	case errors.Is(err, domainerrors.ErrUnauthorized):
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
	case errors.Is(err, domainerrors.ErrForbidden):
		response.Error(c, domainerrors.Forbidden("forbidden"))
	default:
		response.Error(c, err)
	}
}
