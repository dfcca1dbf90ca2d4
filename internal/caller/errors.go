package caller

import "github.com/pkg/errors"

var (
	// ErrFail marks an outcome worth retrying: transport errors, timeouts and non-2xx answers.
	ErrFail = errors.New("call failed")
	// ErrFatal marks an outcome that must not be retried: configured fatal status codes and unbuildable requests.
	ErrFatal = errors.New("call failed fatally")
	// ErrConfig marks an invalid caller configuration.
	ErrConfig = errors.New("invalid caller configuration")
)
