package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// Response 统一响应结构
// 设计说明：
// 1. Code是业务错误码（非HTTP状态码），0表示成功
// 2. Message是用户友好的提示信息
// 3. Data是业务数据，失败时为null
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Success 成功响应（Code=0）
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error 错误响应（自动处理AppError）
// 内部错误只写日志，客户端只看到Message
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	if appErr.Err != nil {
		slog.ErrorContext(c.Request.Context(), "request failed",
			slog.Int("code", appErr.Code),
			slog.String("path", c.FullPath()),
			slog.String("request_id", c.GetString(RequestIDKey)),
			slog.Any("error", appErr.Err),
		)
	}

	c.JSON(http.StatusOK, Response{
		Code:    appErr.Code,
		Message: appErr.Message,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
	})
}

// RequestIDKey 请求ID在gin.Context中的键（由日志中间件写入）
const RequestIDKey = "request_id"
