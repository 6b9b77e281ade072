package middleware

import (
	"errors"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"
)

type ErrorResponse struct {
	Error   string `json:"error" description:"Error message"`
	Code    int    `json:"code" description:"HTTP status code"`
	Details string `json:"details,omitempty" description:"Additional error details"`
}

// HandleError writes err as an ErrorResponse with the given status code.
func HandleError(logger *zerolog.Logger, resp *restful.Response, err error, code int) {
	details := ""
	if unwrapped := errors.Unwrap(err); unwrapped != nil {
		details = unwrapped.Error()
	}

	if writeErr := resp.WriteHeaderAndEntity(code, ErrorResponse{
		Error:   err.Error(),
		Code:    code,
		Details: details,
	}); writeErr != nil {
		logger.Error().Err(writeErr).Msg("failed to write error response")
	}
}
