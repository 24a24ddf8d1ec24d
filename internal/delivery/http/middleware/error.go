package middleware

import (
	"errors"
	"log"

	"placement-hub/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// AppError carries the HTTP status and stable reason code for a failed
// request. Messages of 5xx errors are never sent to the client.
type AppError struct {
	StatusCode int
	Reason     string
	Message    string
	Data       any
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, reason, message string, data any, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Reason: reason, Message: message, Data: data, Cause: cause}
}

type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("panic recovered: method=%s path=%s err=%v", c.Method(), c.Path(), r)
				err = response.Error(c, fiber.StatusInternalServerError, response.ReasonInternalError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, reason, msg, data := normalizeError(err)
		if status >= 500 {
			m.logger.Printf("request failed: method=%s path=%s status=%d reason=%s err=%v", c.Method(), c.Path(), status, reason, err)
		}
		return response.Error(c, status, reason, msg, data)
	}
}

func normalizeError(err error) (int, string, string, any) {
	if err == nil {
		return fiber.StatusInternalServerError, response.ReasonInternalError, response.MessageInternalServerError, nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.StatusCode <= 0 {
			return fiber.StatusInternalServerError, response.ReasonInternalError, response.MessageInternalServerError, nil
		}

		status := appErr.StatusCode
		reason := appErr.Reason
		if status >= 500 {
			if reason == "" {
				reason = response.ReasonInternalError
			}
			return status, reason, response.DefaultMessage(status), nil
		}

		msg := appErr.Message
		if msg == "" {
			msg = response.DefaultMessage(status)
		}
		return status, reason, msg, appErr.Data
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}

		if status >= 500 {
			return fiber.StatusInternalServerError, response.ReasonInternalError, response.MessageInternalServerError, nil
		}

		msg := fiberErr.Message
		if msg == "" {
			msg = response.DefaultMessage(status)
		}
		return status, "", msg, nil
	}

	return fiber.StatusInternalServerError, response.ReasonInternalError, response.MessageInternalServerError, nil
}
