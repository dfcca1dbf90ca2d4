package cmd_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/isometry/delay-responder/cmd"
	"github.com/isometry/delay-responder/internal/caller"
	"github.com/isometry/delay-responder/internal/config"
	"github.com/isometry/delay-responder/internal/responder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantsCommand(t *testing.T) {
	var buf bytes.Buffer
	c := cmd.New()
	c.SetOut(&buf)
	c.SetArgs([]string{"variants", "--variant", "long"})

	require.NoError(t, c.Execute())

	out := buf.String()
	assert.Contains(t, out, "short")
	assert.Contains(t, out, "5s")
	assert.Contains(t, out, "long")
	assert.Contains(t, out, "5m0s")
	assert.Contains(t, out, "*")
}

func TestInvalidMode(t *testing.T) {
	c := cmd.New()
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	c.SetArgs([]string{"--mode", "batch"})

	err := c.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mode: batch")
}

func TestServiceUnknownVariant(t *testing.T) {
	c := cmd.New()
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	c.SetArgs([]string{"service", "--variant", "medium"})

	err := c.Execute()

	var unknown *responder.UnknownVariantError
	assert.ErrorAs(t, err, &unknown)
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("SERVICE_HOST_PORT", "6000")
	t.Setenv("VARIANT", "long")
	t.Setenv("SERVICE_IO_TIMEOUT", "2s")

	c := cmd.New()
	c.SetOut(&bytes.Buffer{})
	c.SetArgs([]string{"variants"})
	require.NoError(t, c.Execute())

	assert.Equal(t, "6000", config.Service.Port)
	assert.Equal(t, "long", config.Global.Variant)
	assert.Equal(t, 2*time.Second, config.Service.Timeout)
}

func TestServiceServesUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	c := cmd.New()
	c.SetOut(&bytes.Buffer{})
	c.SetArgs([]string{"service", "--service-host-port", "0", "--service-io-timeout", "1s"})

	assert.NoError(t, c.ExecuteContext(ctx))
}

func TestEnvironmentWinsOverEarlierCommandFlags(t *testing.T) {
	first := cmd.New()
	first.SetOut(&bytes.Buffer{})
	first.SetArgs([]string{"variants", "--variant", "short", "--service-host-port", "7000"})
	require.NoError(t, first.Execute())

	t.Setenv("VARIANT", "long")
	second := cmd.New()
	second.SetOut(&bytes.Buffer{})
	second.SetArgs([]string{"variants"})
	require.NoError(t, second.Execute())

	assert.Equal(t, "long", config.Global.Variant)
	assert.Equal(t, "5000", config.Service.Port)
}

func TestCallCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("It's ok!\n"))
	}))
	defer srv.Close()

	testCases := []struct {
		Name           string
		Args           []string
		Stdin          string
		ExpectedOutput string
		ExpectedError  error
	}{
		{
			Name:           "post_payload",
			Args:           []string{"call", "--call-url", srv.URL + "/", `{"x":1}`},
			ExpectedOutput: "200 It's ok!",
		},
		{
			Name:           "payload_from_stdin",
			Args:           []string{"call", "-u", srv.URL + "/", "-"},
			Stdin:          `{"x":1}`,
			ExpectedOutput: "200 It's ok!",
		},
		{
			Name:           "get_without_payload",
			Args:           []string{"call", "-u", srv.URL + "/", "-X", "get"},
			ExpectedOutput: "200 It's ok!",
		},
		{
			Name:          "fatal_code",
			Args:          []string{"call", "-u", srv.URL + "/down", "--call-fatal-codes", "500, 503"},
			ExpectedError: caller.ErrFatal,
		},
		{
			Name:          "retryable_code",
			Args:          []string{"call", "-u", srv.URL + "/down"},
			ExpectedError: caller.ErrFail,
		},
		{
			Name:          "unsupported_method",
			Args:          []string{"call", "-u", srv.URL + "/", "-X", "PUT"},
			ExpectedError: caller.ErrConfig,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var buf bytes.Buffer
			c := cmd.New()
			c.SetOut(&buf)
			c.SetErr(&bytes.Buffer{})
			c.SetIn(strings.NewReader(tc.Stdin))
			c.SetArgs(tc.Args)

			err := c.Execute()

			if tc.ExpectedError != nil {
				assert.ErrorIs(t, err, tc.ExpectedError)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, buf.String(), tc.ExpectedOutput)
		})
	}
}

func TestCallCommandInvalidFatalCodes(t *testing.T) {
	c := cmd.New()
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	c.SetArgs([]string{"call", "--call-fatal-codes", "50x"})

	err := c.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status code")
}

func TestCallCommandDefaultsToServiceAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("It's ok!\n"))
	}))
	defer srv.Close()

	addr := strings.TrimPrefix(srv.URL, "http://")
	host, port, _ := strings.Cut(addr, ":")
	t.Setenv("SERVICE_HOST_ADDR", host)
	t.Setenv("SERVICE_HOST_PORT", port)

	var buf bytes.Buffer
	c := cmd.New()
	c.SetOut(&buf)
	c.SetArgs([]string{"call"})

	require.NoError(t, c.Execute())
	assert.Contains(t, buf.String(), "200 It's ok!")
}
