package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-board/internal/boarderrors"
	model "auction-board/internal/models"
	"auction-board/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, boarderrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, boarderrors.ErrUnknownStatus):
		return http.StatusBadRequest, "unknown auction status"
	case errors.Is(err, boarderrors.ErrInvalidUser):
		return http.StatusBadRequest, "invalid user details"
	case errors.Is(err, boarderrors.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "shared store unavailable"
	case errors.Is(err, boarderrors.ErrIDCollision):
		return http.StatusConflict, "could not allocate a user ID"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ToUserResponse converts a stored user to its wire shape
func ToUserResponse(u model.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// ToUsersResponse converts the registry to its wire shape; records are never null
func ToUsersResponse(s model.UsersState) UsersResponse {
	records := make([]UserResponse, 0, len(s.Records))
	for _, u := range s.Records {
		records = append(records, ToUserResponse(u))
	}
	return UsersResponse{TotalCount: s.TotalCount, Records: records}
}
