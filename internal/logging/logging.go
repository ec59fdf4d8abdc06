package logging

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for logger.V.
const (
	DEFAULT = 2
	VERBOSE = 3
	DEBUG   = 4
)

// New builds a zap-backed logr.Logger. level is one of error, info, verbose, debug.
func New(level string, development bool) (logr.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return logr.Discard(), err
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeLevel = levelEncoder(development)

	zapLog, err := cfg.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("build zap logger: %w", err)
	}
	return zapr.NewLogger(zapLog), nil
}

// zapr maps logr verbosity V(n) onto zap level -n.
func parseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "error":
		return zapcore.ErrorLevel, nil
	case "", "info":
		return zapcore.Level(-DEFAULT), nil
	case "verbose":
		return zapcore.Level(-VERBOSE), nil
	case "debug":
		return zapcore.Level(-DEBUG), nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// levelEncoder names verbosity levels below info the same way parseLevel
// accepts them, instead of zap's "Level(-2)".
func levelEncoder(development bool) zapcore.LevelEncoder {
	return func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		var name string
		switch {
		case l >= zapcore.InfoLevel:
			if development {
				zapcore.CapitalColorLevelEncoder(l, enc)
			} else {
				zapcore.LowercaseLevelEncoder(l, enc)
			}
			return
		case l >= -DEFAULT:
			name = "info"
		case l >= -VERBOSE:
			name = "verbose"
		default:
			name = "debug"
		}
		if development {
			name = strings.ToUpper(name)
		}
		enc.AppendString(name)
	}
}
