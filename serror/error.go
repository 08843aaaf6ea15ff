package serror

import "fmt"

type StrideError struct {
	Err string
}

// New returns a formatted stride error.
func New(format string, args ...interface{}) *StrideError {
	return &StrideError{Err: fmt.Sprintf(format, args...)}
}

func (e *StrideError) Error() string {
	return e.Err
}
