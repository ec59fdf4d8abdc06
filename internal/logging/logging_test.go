package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/go-logr/zapr"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"":        zapcore.Level(-DEFAULT),
		"info":    zapcore.Level(-DEFAULT),
		"VERBOSE": zapcore.Level(-VERBOSE),
		"debug":   zapcore.Level(-DEBUG),
		"error":   zapcore.ErrorLevel,
	}
	for in, want := range tests {
		got, err := parseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := parseLevel("loud")
	assert.Error(t, err)
}

func TestNewEnablesVerbosity(t *testing.T) {
	logger, err := New("debug", true)
	require.NoError(t, err)
	assert.True(t, logger.V(DEBUG).Enabled())

	logger, err = New("info", false)
	require.NoError(t, err)
	assert.True(t, logger.V(DEFAULT).Enabled())
	assert.False(t, logger.V(DEBUG).Enabled())
}

func TestLevelEncoderNamesVerbosity(t *testing.T) {
	var buf bytes.Buffer
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeLevel = levelEncoder(false)
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(&buf), zapcore.Level(-DEBUG))
	logger := zapr.NewLogger(zap.New(core))

	logger.V(DEFAULT).Info("default")
	logger.V(VERBOSE).Info("verbose")
	logger.V(DEBUG).Info("debug")
	logger.Info("plain")

	out := buf.String()
	assert.NotContains(t, out, "Level(")
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 4)
	assert.Contains(t, string(lines[0]), `"level":"info"`)
	assert.Contains(t, string(lines[1]), `"level":"verbose"`)
	assert.Contains(t, string(lines[2]), `"level":"debug"`)
	assert.Contains(t, string(lines[3]), `"level":"info"`)
}
