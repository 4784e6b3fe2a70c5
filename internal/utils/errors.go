package utils

import "net/http"

// AppError 业务错误，Code 用于映射 HTTP 状态码，Message 直接展示给用户。
type AppError struct {
	Code    string
	Message string
	Origin  error // 底层错误（如数据库错误），不直接对外暴露
}

func (e *AppError) Error() string {
	if e.Origin != nil {
		return e.Message + ": " + e.Origin.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Origin
}

// 错误码
const (
	ErrNotFound           = "NOT_FOUND"
	ErrDuplicate          = "DUPLICATE"
	ErrInvalidInput       = "INVALID_INPUT"
	ErrUnauthorized       = "UNAUTHORIZED"
	ErrForbidden          = "FORBIDDEN"
	ErrUserNotFound       = "USER_NOT_FOUND"
	ErrInsufficientPoints = "INSUFFICIENT_POINTS"
	ErrDatabase           = "DATABASE_ERROR"
)

func NewAppError(code string, message string, origin error) *AppError {
	return &AppError{Code: code, Message: message, Origin: origin}
}

// IsErrorCode 判断 err 是否为指定错误码的 AppError
func IsErrorCode(err error, code string) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// AppErrorToHTTPStatus 错误码到 HTTP 状态码的一一映射
func AppErrorToHTTPStatus(code string) int {
	switch code {
	case ErrNotFound, ErrUserNotFound:
		return http.StatusNotFound
	case ErrInvalidInput, ErrInsufficientPoints:
		return http.StatusBadRequest
	case ErrUnauthorized:
		return http.StatusUnauthorized
	case ErrForbidden:
		return http.StatusForbidden
	case ErrDuplicate:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
