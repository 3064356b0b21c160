package httperr

import (
	"errors"
	"net/http"

	"stay-command-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithCommandError renders a commands.Error by kind. Anything else is a 500
// without details; the cause is kept on the gin context for logging.
func AbortWithCommandError(c *gin.Context, err error) {
	var cmdErr *commands.Error
	if !errors.As(err, &cmdErr) {
		AbortWithError(c, http.StatusInternalServerError, err, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	AbortWithError(c, StatusFor(cmdErr.Kind), err, cmdErr.Code, cmdErr.Message, nil)
}

func StatusFor(kind commands.Kind) int {
	switch kind {
	case commands.KindValidation:
		return http.StatusBadRequest
	case commands.KindNotFound:
		return http.StatusNotFound
	case commands.KindConflict:
		return http.StatusConflict
	case commands.KindPolicyOptIn:
		return http.StatusUnprocessableEntity
	case commands.KindDependency:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
