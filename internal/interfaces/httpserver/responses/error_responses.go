package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"search-gateway/internal/platformerrors"
)

// ErrorResponse is the caller-facing error body. Messages are descriptive but
// never leak stack traces or internal state.
type ErrorResponse struct {
	Code    string `json:"code"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HandleError translates domain errors into HTTP responses. Platform errors
// keep their category-derived status; upstream 4xx answers mirror the
// provider's own status.
func HandleError(reqCtx *gin.Context, err error, message string) {
	var platformErr *platformerrors.PlatformError
	if errors.As(err, &platformErr) {
		errorMessage := platformErr.Message
		if errorMessage == "" {
			errorMessage = message
		}

		reqCtx.AbortWithStatusJSON(platformErr.HTTPStatus(), ErrorResponse{
			Code:    string(platformErr.GetErrorType()),
			Error:   errorMessage,
			Message: errorMessage,
		})
		return
	}

	reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Code:    string(platformerrors.ErrorTypeInternal),
		Error:   message,
		Message: message,
	})
}

// HandleNewError creates a typed error at the route layer and handles it.
func HandleNewError(reqCtx *gin.Context, errorType platformerrors.ErrorType, message string) {
	err := platformerrors.NewError(platformerrors.LayerRoute, errorType, message, nil)

	reqCtx.AbortWithStatusJSON(err.HTTPStatus(), ErrorResponse{
		Code:    string(errorType),
		Error:   message,
		Message: message,
	})
}
