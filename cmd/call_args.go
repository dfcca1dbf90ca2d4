package cmd

import (
	"time"

	"github.com/isometry/delay-responder/internal/config"
	"github.com/isometry/delay-responder/internal/helpers"
)

var callEnvMapString = map[*string]boundEnvVar[string]{
	&config.Call.URL: {
		Name:        "call-url",
		Description: "The endpoint to call. Defaults to the service address and path",
		Short:       helpers.Ptr("u"),
	},
	&config.Call.Method: {
		Name:        "call-method",
		Description: "The request method, GET or POST",
		Short:       helpers.Ptr("X"),
	},
	&config.Call.FatalCodes: {
		Name:        "call-fatal-codes",
		Description: "Comma separated status codes reported as fatal instead of retryable",
	},
}

var callEnvMapDuration = map[*time.Duration]boundEnvVar[time.Duration]{
	&config.Call.Timeout: {
		Name:        "call-timeout",
		Description: "How long to wait for the whole response",
		Short:       helpers.Ptr("T"),
	},
}
