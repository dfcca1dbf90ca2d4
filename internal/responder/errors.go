package responder

import (
	"fmt"
	"strings"
)

type MethodNotAllowedError struct {
	Method string
}

func (e *MethodNotAllowedError) Error() string {
	return fmt.Sprintf("method %s not allowed", e.Method)
}

type InvalidPayloadError struct {
	Err error
}

func (e *InvalidPayloadError) Error() string {
	return fmt.Sprintf("invalid JSON payload: %v", e.Err)
}

func (e *InvalidPayloadError) Unwrap() error {
	return e.Err
}

type UnknownVariantError struct {
	Name string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown variant %q (available: %s)", e.Name, strings.Join(VariantNames(), ", "))
}
