package logging

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupVerbosityLevels(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.DebugLevel},
	}

	for _, tt := range tests {
		Setup(tt.verbosity)
		assert.Equal(t, tt.want, zerolog.GlobalLevel(), "verbosity %d", tt.verbosity)
	}
}

func TestGetLoggerTagsComponent(t *testing.T) {
	Setup(1)
	var b strings.Builder
	log.Logger = zerolog.New(&b)

	logger := GetLogger("demo")
	logger.Warn().Msg("hello")

	assert.Contains(t, b.String(), `"component":"demo"`)
	assert.Contains(t, b.String(), `"message":"hello"`)
}
