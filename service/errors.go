package service

import "net/http"

// ServiceError 业务错误，携带对外返回的HTTP状态码和中文提示
type ServiceError struct {
	Code    int
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func errValidation(message string) *ServiceError {
	return &ServiceError{Code: http.StatusBadRequest, Message: message}
}

func errThrottled(message string) *ServiceError {
	return &ServiceError{Code: http.StatusTooManyRequests, Message: message}
}

func errNotFound(message string) *ServiceError {
	return &ServiceError{Code: http.StatusNotFound, Message: message}
}

func errInternal(message string) *ServiceError {
	return &ServiceError{Code: http.StatusInternalServerError, Message: message}
}
