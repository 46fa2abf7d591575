package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/nexuslabs/summary-engine/errors"
)

// Response shapes
type success struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Info    string `json:"info,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// HandleSuccess writes a standardized success response
func HandleSuccess(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}
	return c.JSON(status, success{Message: "success", Data: data})
}

// HandleError centralizes error handling and logging
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.String("app_code", appErr.Code.String()),
				zap.Error(err),
			)
		}

		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}
		return c.JSON(appErr.HTTPCode, errs{
			Code:    appErr.Code.String(),
			Message: appErr.Message,
			Info:    info,
		})
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return c.JSON(http.StatusInternalServerError, errs{
		Code:    errors.ErrorCode_INTERNAL.String(),
		Message: "Internal server error",
		Info:    err.Error(),
	})
}
