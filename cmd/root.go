// Package cmd provides the entrypoint for the delay-responder cli.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/isometry/delay-responder/internal/capture"
	"github.com/isometry/delay-responder/internal/config"
	"github.com/isometry/delay-responder/internal/responder"
	"github.com/isometry/delay-responder/internal/runtime"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logger *slog.Logger

type boundEnvVar[T argType] struct {
	Name, Description string
	Env, Short        *string
	Hidden            bool
}

// New returns the root command for the delay-responder.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "delay-responder",
		Short:        "Serve every request after a fixed artificial delay",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			config.Global.Mode = strings.TrimSpace(config.Global.Mode)
			logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				AddSource: config.Global.Logging.CallerTrace,
				Level:     slog.LevelWarn - slog.Level(config.Global.Logging.Verbosity*4),
			})).With("mode", config.Global.Mode)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch config.Global.Mode {
			case config.ModeService:
				return cmdService().RunE(cmd, args)
			case config.ModeLambdaHTTP:
				return cmdLambdaHTTP().RunE(cmd, args)
			case config.ModeLambdaEvent:
				return cmdLambdaEvent().RunE(cmd, args)
			default:
				return fmt.Errorf("invalid mode: %s", config.Global.Mode)
			}
		},
	}

	// Configuration loading & defaults
	config.Reset()
	if err := errors.Join(
		config.LoadFromFile(config.FilePath()),
		config.SetDefaults(),
	); err != nil {
		panic(err)
	}

	// Dynamic flags
	setupDynamicFlags(cmd)

	// Subcommands
	cmd.AddCommand(
		cmdCall(),
		cmdLambda(),
		cmdService(),
		cmdVariants(),
	)

	return cmd
}

func setupDynamicFlags(cmd *cobra.Command) {
	// flags bound by an earlier command tree must not shadow the environment
	viper.Reset()
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(replacer)

	bindEnvMap(cmd, envMapString)
	bindEnvMap(cmd, envMapBool)
	bindEnvMap(cmd, envMapCount)
}

// setup wires the responder, its optional payload capture and the runtime from the global configuration.
func setup(cmd *cobra.Command) (*runtime.Runtime, error) {
	variant, err := responder.LookupVariant(config.Global.Variant)
	if err != nil {
		return nil, err
	}

	opts := []responder.Option{
		responder.WithLogger(logger.With("component", "responder")),
	}
	if config.Capture.S3.Enabled {
		if !variant.InspectBody {
			logger.Warn("payload capture is enabled but the variant does not inspect bodies", "variant", variant.Name)
		}
		logger.Debug("creating S3 capturer...")
		capturer, err := capture.NewS3Capturer(
			capture.WithContext(cmd.Context()),
			capture.WithBucket(config.Capture.S3.BucketName),
			capture.WithPrefix(config.Capture.S3.Prefix),
			capture.WithLogger(logger.With("component", "s3-capture")))
		if err != nil {
			return nil, fmt.Errorf("failed to create S3 capturer: %w", err)
		}
		opts = append(opts, responder.WithSink(capturer))
	}

	logger.Debug("creating runtime...", "variant", variant.Name, "delay", variant.Delay.String())
	return runtime.NewRuntime(responder.New(variant, opts...),
		runtime.WithLogger(logger.With("component", "runtime")),
		runtime.WithPath(config.Service.Path),
		runtime.WithIOTimeout(config.Service.Timeout),
		runtime.WithLambdaPayloadType(config.Lambda.PayloadType)), nil
}
