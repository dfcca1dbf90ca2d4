package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/isometry/delay-responder/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	require.NoError(t, config.SetDefaults())

	assert.Equal(t, config.ModeService, config.Global.Mode)
	assert.Equal(t, "short", config.Global.Variant)
	assert.Equal(t, "/", config.Service.Path)
	assert.Equal(t, "127.0.0.1", config.Service.Addr)
	assert.Equal(t, "5000", config.Service.Port)
	assert.Equal(t, 5*time.Second, config.Service.Timeout)
	assert.Equal(t, "api-gateway-v2", config.Lambda.PayloadType)
	assert.False(t, config.Capture.S3.Enabled)
	assert.Empty(t, config.Call.URL)
	assert.Equal(t, "POST", config.Call.Method)
	assert.Equal(t, 120*time.Second, config.Call.Timeout)
}

func TestLoadFromFile(t *testing.T) {
	testCases := []struct {
		Name        string
		Content     string
		Path        func(dir string) string
		ExpectError bool
		Check       func(t *testing.T)
	}{
		{
			Name: "empty_path",
			Path: func(string) string { return "" },
		},
		{
			Name: "missing_file",
			Path: func(dir string) string { return filepath.Join(dir, "missing.yaml") },
		},
		{
			Name:        "directory",
			Path:        func(dir string) string { return dir },
			ExpectError: true,
		},
		{
			Name:        "invalid_yaml",
			Content:     "global: [",
			ExpectError: true,
		},
		{
			Name: "full_file",
			Content: `
global:
  mode: lambda-http
  variant: long
  logging:
    verbosity: 2
service:
  port: "9090"
  timeout: 10s
capture:
  s3:
    enabled: true
    bucketName: payloads
call:
  url: http://responder:5000/
  fatalCodes: "400,503"
`,
			Check: func(t *testing.T) {
				assert.Equal(t, config.ModeLambdaHTTP, config.Global.Mode)
				assert.Equal(t, "long", config.Global.Variant)
				assert.Equal(t, 2, config.Global.Logging.Verbosity)
				assert.Equal(t, "9090", config.Service.Port)
				assert.Equal(t, 10*time.Second, config.Service.Timeout)
				assert.True(t, config.Capture.S3.Enabled)
				assert.Equal(t, "payloads", config.Capture.S3.BucketName)
				assert.Equal(t, "http://responder:5000/", config.Call.URL)
				assert.Equal(t, "400,503", config.Call.FatalCodes)

				// defaults fill whatever the file left out
				require.NoError(t, config.SetDefaults())
				assert.Equal(t, "127.0.0.1", config.Service.Addr)
				assert.Equal(t, "9090", config.Service.Port)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			config.Reset()
			t.Cleanup(config.Reset)

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			if tc.Path != nil {
				path = tc.Path(dir)
			} else {
				require.NoError(t, os.WriteFile(path, []byte(tc.Content), 0o600))
			}

			err := config.LoadFromFile(path)
			if tc.ExpectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tc.Check != nil {
				tc.Check(t)
			}
		})
	}
}

func TestFilePath(t *testing.T) {
	t.Setenv(config.FileEnv, "/etc/delay-responder.yaml")
	assert.Equal(t, "/etc/delay-responder.yaml", config.FilePath())
}
