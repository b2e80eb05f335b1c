package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgen-dev/pgen/internal/logger"
)

func TestLogger(t *testing.T) {
	type testCase struct {
		name             string
		cfg              logger.Log
		shouldHaveOutPut bool
		outPutIsJSON     bool
	}

	testCases := []testCase{
		{
			name: "no logger enabled log level not set",
			cfg: logger.Log{
				LogLevel:    "",
				ServiceName: "test",
				AppName:     "test",
			},
			shouldHaveOutPut: false,
		},
		{
			name: "console enabled log level info",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true},
			},
			shouldHaveOutPut: true,
		},
		{
			name: "console enabled console writer enabled trace",
			cfg: logger.Log{
				LogLevel:    "trace",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true, UseConsoleWriter: true},
			},
			shouldHaveOutPut: true,
		},
		{
			name: "console enabled console writer disabled info expect json",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true, UseConsoleWriter: false},
			},
			shouldHaveOutPut: true,
			outPutIsJSON:     true,
		},
		{
			name: "console enabled console writer disabled trace expect json stack",
			cfg: logger.Log{
				LogLevel:     "trace",
				ServiceName:  "test",
				AppName:      "test",
				ReportCaller: true,
				Console:      logger.Console{Enabled: true, UseConsoleWriter: false},
			},
			shouldHaveOutPut: true,
			outPutIsJSON:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, stderr := testLoggerConfig(t, tc.cfg)
			t.Logf("stderr: %s", stderr)

			assert.Empty(t, stdout, "logger must never write to stdout")

			if tc.shouldHaveOutPut {
				assert.NotEmpty(t, stderr)
			} else {
				assert.Empty(t, stderr)
			}

			if tc.outPutIsJSON {
				for _, line := range strings.Split(stderr, "\n") {
					if line == "" {
						continue
					}

					var entry struct {
						Level   string
						App     string
						Message string
					}

					require.NoError(t, json.Unmarshal([]byte(line), &entry), "expected json output but got: %s", line)
					assert.Equal(t, "test", entry.App)
				}
			}
		})
	}
}

func TestInitErrors(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     logger.Log
		wantErr error
	}{
		{
			name:    "missing service name",
			cfg:     logger.Log{LogLevel: "info", AppName: "test"},
			wantErr: logger.ErrServiceNameIsEmpty,
		},
		{
			name:    "missing app name",
			cfg:     logger.Log{LogLevel: "info", ServiceName: "test"},
			wantErr: logger.ErrAppNameIsEmpty,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, logger.Init(tc.cfg, prometheus.NewRegistry()), tc.wantErr)
		})
	}

	require.Error(t, logger.Init(logger.Log{LogLevel: "loud", AppName: "a", ServiceName: "s"}, prometheus.NewRegistry()))
}

func TestRollingFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	err := logger.Init(logger.Log{
		LogLevel:    "info",
		AppName:     "test",
		ServiceName: "test",
		File: logger.LogFile{
			Enabled:  true,
			Path:     dir,
			ErrorLog: "error.log",
			InfoLog:  "info.log",
			TraceLog: "trace.log",
			WarnLog:  "warn.log",
		},
	}, prometheus.NewRegistry())
	require.NoError(t, err)

	log.Info().Msg("info line")
	log.Warn().Msg("warn line")
	log.Error().Err(alwaysErrFunc()).Msg("error line")

	for file, want := range map[string]string{
		"info.log":  "info line",
		"warn.log":  "warn line",
		"error.log": "error line",
	} {
		content, err := os.ReadFile(filepath.Join(dir, file))
		require.NoError(t, err)
		assert.Contains(t, string(content), want)
	}
}

func TestPrometheusHook(t *testing.T) {
	reg := prometheus.NewRegistry()

	require.NoError(t, logger.Init(logger.Log{LogLevel: "info", AppName: "test", ServiceName: "hook"}, reg))

	log.Warn().Msg("one")
	log.Warn().Msg("two")
	log.Debug().Msg("filtered by level")

	hook := logger.NewPrometheusHook("hook", reg) // reuses the registered counter
	hook.Run(nil, 0, "")

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "log_statements_total", families[0].GetName())

	count, err := testutil.GatherAndCount(reg, "log_statements_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "expected warn and debug series")
}

func alwaysErrFunc() error {
	return errors.New("a test error") //nolint:goerr113
}

func testLoggerConfig(t *testing.T, cfg logger.Log) (string, string) {
	t.Helper()
	// keep default std out
	stdout := os.Stdout
	stderr := os.Stderr

	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	err := logger.Init(cfg, prometheus.NewRegistry())
	if err != nil {
		t.Error(err)
	}

	log.Info().Msg("this info message should be seen...")
	log.Error().Err(alwaysErrFunc()).Msg("this err message should be seen...")
	log.Trace().Err(alwaysErrFunc()).Msg("this trace message should be seen...")

	outC := make(chan string)
	errC := make(chan string)
	// copy the output in a separate goroutine so printing can't block indefinitely
	drain := func(r io.Reader, c chan<- string) {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		c <- buf.String()
	}

	go drain(rOut, outC)
	go drain(rErr, errC)

	// back to normal state
	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout = stdout // restoring the real stdout
	os.Stderr = stderr // restoring the real stderr

	return <-outC, <-errC
}
