package logging_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/agentstation/omm/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	previous := *logging.Default()
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		logging.SetDefault(previous)
		zerolog.SetGlobalLevel(prevLevel)
	})
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	buf := &bytes.Buffer{}
	logging.SetDefault(zerolog.New(buf).Level(zerolog.DebugLevel))

	logging.Debug().Msg("debug message")
	logging.Info().Msg("info message")
	logging.Warn().Msg("warning message")
	logging.Error().Msg("error message")

	output := buf.String()
	assert.Contains(t, output, "debug message")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warning message")
	assert.Contains(t, output, "error message")
}

func TestNew(t *testing.T) {
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prevLevel) })
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	buf := &bytes.Buffer{}
	logger := logging.New(buf)
	logger.Info().Str("store", "modules.yaml").Msg("saved")

	assert.Contains(t, buf.String(), `"store":"modules.yaml"`)
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		present []string
		absent  []string
	}{
		{"debug level", "debug", []string{`"level":"debug"`, `"level":"info"`}, nil},
		{"error level only", "error", []string{`"level":"error"`}, []string{`"level":"info"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prevLevel := zerolog.GlobalLevel()
			t.Cleanup(func() { zerolog.SetGlobalLevel(prevLevel) })

			buf := &bytes.Buffer{}
			logger := logging.NewLoggerFromConfig(&logging.Config{Level: tt.level, Format: "json"}).Output(buf)

			logger.Debug().Msg("debug")
			logger.Info().Msg("info")
			logger.Error().Msg("error")

			for _, s := range tt.present {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}
