package helpers

import (
	"time"

	"golang.org/x/time/rate"
)

// OnceAMinute throttles noisy log lines to a single occurrence per minute.
var OnceAMinute = &rate.Sometimes{Interval: time.Minute}
