package service

import "errors"

type ErrorCode string

const (
	ErrorCodeValidation      ErrorCode = "validation"
	ErrorCodeUnauthorized    ErrorCode = "unauthorized"
	ErrorCodeForbidden       ErrorCode = "forbidden"
	ErrorCodeConflict        ErrorCode = "conflict"
	ErrorCodeNotFound        ErrorCode = "not_found"
	ErrorCodeUnsupportedType ErrorCode = "unsupported_type"
	ErrorCodePayloadTooLarge ErrorCode = "payload_too_large"
	ErrorCodeProcessing      ErrorCode = "processing"
	ErrorCodeInternal        ErrorCode = "internal"
)

type ServiceError struct {
	Code    ErrorCode
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewServiceError(code ErrorCode, message string) error {
	return &ServiceError{Code: code, Message: message}
}

func NewValidationError(message string) error {
	return NewServiceError(ErrorCodeValidation, message)
}

func NewUnauthorizedError(message string) error {
	return NewServiceError(ErrorCodeUnauthorized, message)
}

func NewForbiddenError(message string) error {
	return NewServiceError(ErrorCodeForbidden, message)
}

func NewConflictError(message string) error {
	return NewServiceError(ErrorCodeConflict, message)
}

func NewNotFoundError(message string) error {
	return NewServiceError(ErrorCodeNotFound, message)
}

// NewUnsupportedTypeError 上传文件类型不在白名单内
func NewUnsupportedTypeError(message string) error {
	return NewServiceError(ErrorCodeUnsupportedType, message)
}

func NewPayloadTooLargeError(message string) error {
	return NewServiceError(ErrorCodePayloadTooLarge, message)
}

// NewProcessingError 图片解码或编码失败
func NewProcessingError(message string) error {
	return NewServiceError(ErrorCodeProcessing, message)
}

func NewInternalError(message string) error {
	return NewServiceError(ErrorCodeInternal, message)
}

func AsServiceError(err error) (*ServiceError, bool) {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr, true
	}
	return nil, false
}
