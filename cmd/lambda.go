package cmd

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/isometry/delay-responder/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func cmdLambda() *cobra.Command {
	cmd := &cobra.Command{
		Use: "lambda",
	}

	cmd.AddCommand(
		cmdLambdaHTTP(),
		cmdLambdaEvent(),
	)

	bindEnvMap(cmd, lambdaEnvMapString)

	return cmd
}

// cmdLambdaHTTP is the command for running the lambda-http mode.
func cmdLambdaHTTP() *cobra.Command {
	return &cobra.Command{
		Use: "http",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rtm, err := setup(cmd)
			if err != nil {
				return errors.Wrap(err, "failed to setup lambda")
			}

			logger = logger.With("mode", config.ModeLambdaHTTP)
			logger.Info("lambda starting...")
			lambda.StartWithOptions(rtm.Lambda,
				lambda.WithContext(cmd.Context()))

			return nil
		},
	}
}

// cmdLambdaEvent is the command for running the lambda in event mode.
func cmdLambdaEvent() *cobra.Command {
	return &cobra.Command{
		Use: "event",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rtm, err := setup(cmd)
			if err != nil {
				return errors.Wrap(err, "failed to setup lambda")
			}

			logger = logger.With("mode", config.ModeLambdaEvent)
			logger.Info("lambda starting...")
			lambda.StartWithOptions(rtm.LambdaForEvent,
				lambda.WithContext(cmd.Context()))
			return nil
		},
	}
}
