package http

import (
	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

// Response is the envelope every JSON endpoint returns. On success Error is
// null; on failure Data is null.
type Response struct {
	Data    any     `json:"data"`
	Message string  `json:"message"`
	Error   *string `json:"error"`
	Success bool    `json:"success"`
}

func Success(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Response{
		Data:    data,
		Message: message,
		Success: true,
	})
}

func Failure(c *gin.Context, status int, code, message string) {
	c.JSON(status, Response{
		Message: message,
		Error:   &code,
		Success: false,
	})
}

// FailWithError renders err with the status and code of its category.
func FailWithError(c *gin.Context, err error) {
	Failure(c, apperror.ToHTTPStatus(err), apperror.Code(err), apperror.PublicMessage(err))
}
