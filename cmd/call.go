package cmd

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/isometry/delay-responder/internal/caller"
	"github.com/isometry/delay-responder/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func cmdCall() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "call [payload|-]",
		Aliases: []string{"c", "client"},
		Short:   "Call a delay responder once and classify the outcome",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: func(_ *cobra.Command, _ []string) error {
			logger = logger.With("mode", "call")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			codes, err := parseStatusCodes(config.Call.FatalCodes)
			if err != nil {
				return err
			}

			url := config.Call.URL
			if url == "" {
				url = "http://" + net.JoinHostPort(config.Service.Addr, config.Service.Port) + config.Service.Path
			}
			c, err := caller.NewCaller(
				caller.WithLogger(logger.With("component", "caller")),
				caller.WithURL(url),
				caller.WithMethod(strings.ToUpper(config.Call.Method)),
				caller.WithTimeout(config.Call.Timeout),
				caller.WithFatalCodes(codes...))
			if err != nil {
				return err
			}

			var body []byte
			if len(args) == 1 {
				body = []byte(args[0])
				if args[0] == "-" {
					if body, err = io.ReadAll(cmd.InOrStdin()); err != nil {
						return errors.Wrap(err, "failed to read payload from stdin")
					}
				}
			}

			result, err := c.Call(cmd.Context(), body)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d %s in %s\n", result.StatusCode, strings.TrimSpace(result.Body), result.Elapsed)
			return nil
		},
	}

	bindEnvMap(cmd, callEnvMapString)
	bindEnvMap(cmd, callEnvMapDuration)

	return cmd
}

// parseStatusCodes parses a comma separated list of HTTP status codes.
func parseStatusCodes(s string) ([]int, error) {
	var codes []int
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f == "" {
			continue
		}
		code, err := strconv.Atoi(f)
		if err != nil || code < 100 || code > 599 {
			return nil, errors.Errorf("invalid status code: %q", f)
		}
		codes = append(codes, code)
	}
	return codes, nil
}
