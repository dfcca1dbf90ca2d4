package cmd

import (
	"github.com/isometry/delay-responder/internal/config"
	"github.com/isometry/delay-responder/internal/helpers"
)

var envMapString = map[*string]boundEnvVar[string]{
	&config.Global.Mode: {
		Name:        "mode",
		Description: "The application runtime mode. Possible values are 'service', 'lambda-http' and 'lambda-event'",
		Short:       helpers.Ptr("m"),
	},
	&config.Global.Variant: {
		Name:        "variant",
		Description: "The delay variant to serve. Possible values are 'short' (5s, prints the payload) and 'long' (300s, ignores the payload)",
		Short:       helpers.Ptr("r"),
	},
	&config.Capture.S3.BucketName: {
		Name:        "capture-s3-bucket",
		Description: "The S3 bucket inspected payloads are captured to",
	},
	&config.Capture.S3.Prefix: {
		Name:        "capture-s3-prefix",
		Description: "The key prefix of captured payloads",
	},
}

var envMapBool = map[*bool]boundEnvVar[bool]{
	&config.Global.Logging.CallerTrace: {
		Name:        "verbosity-caller-trace",
		Description: "Enable caller trace in logs",
		Short:       helpers.Ptr("V"),
	},
	&config.Capture.S3.Enabled: {
		Name:        "capture-s3",
		Description: "Enable S3 capture of inspected payloads",
	},
}

var envMapCount = map[*int]boundEnvVar[int]{
	&config.Global.Logging.Verbosity: {
		Name:        "verbosity",
		Description: "Increase logger verbosity (default WarnLevel)",
		Short:       helpers.Ptr("v"),
	},
}
