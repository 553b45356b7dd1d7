package imaging

import (
	"errors"
	"fmt"
)

// ProcessingError 解码、缩放或编码失败
type ProcessingError struct {
	Op  string
	Err error
}

func (e *ProcessingError) Error() string {
	if e.Err == nil {
		return "image " + e.Op + " failed"
	}
	return fmt.Sprintf("image %s failed: %v", e.Op, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

func newProcessingError(op string, err error) error {
	return &ProcessingError{Op: op, Err: err}
}

// IsProcessingError 判断错误链中是否有 ProcessingError
func IsProcessingError(err error) bool {
	var pe *ProcessingError
	return errors.As(err, &pe)
}
