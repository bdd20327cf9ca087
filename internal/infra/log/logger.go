package log

import (
	"crypto/sha256"
	"encoding/hex"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the development logger at levelEnv. An unparsable level falls
// back to debug and is reported through the returned logger.
func New(levelEnv string, opts ...zap.Option) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zap.DebugLevel)
	var levelErr error
	if levelEnv != "" {
		levelErr = level.UnmarshalText([]byte(levelEnv))
		if levelErr != nil {
			level.SetLevel(zap.DebugLevel)
		}
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = level

	l, err := cfg.Build(append([]zap.Option{zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)}, opts...)...)
	if err != nil {
		return nil, err
	}
	if levelErr != nil {
		l.Warn("bad LOG_LEVEL, falling back to debug", zap.String("value", levelEnv), zap.Error(levelErr))
	}
	return l, nil
}

func Must(levelEnv string) *zap.Logger {
	l, err := New(levelEnv)
	if err != nil {
		panic(err)
	}
	return l
}

// Digest is a log-safe stand-in for a username or email.
func Digest(s string) zap.Field {
	sum := sha256.Sum256([]byte(s))
	return zap.String("user", hex.EncodeToString(sum[:8]))
}
