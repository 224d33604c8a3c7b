package schedule

import (
	"context"
	"os"

	"github.com/rs/zerolog"
)

// Logger 为最小日志接口，应用可注入自定义实现。
// kv 为交替的键值对。
type Logger interface {
	Debug(ctx context.Context, msg string, kv ...interface{})
	Info(ctx context.Context, msg string, kv ...interface{})
	Error(ctx context.Context, msg string, kv ...interface{})
}

// defaultLogger 基于 zerolog 输出到 stderr。
type defaultLogger struct {
	l zerolog.Logger
}

func newDefaultLogger() Logger {
	return defaultLogger{
		l: zerolog.New(os.Stderr).With().Timestamp().Str("component", "schedule").Logger(),
	}
}

func (d defaultLogger) Debug(ctx context.Context, msg string, kv ...interface{}) {
	d.l.Debug().Fields(kv).Msg(msg)
}

func (d defaultLogger) Info(ctx context.Context, msg string, kv ...interface{}) {
	d.l.Info().Fields(kv).Msg(msg)
}

func (d defaultLogger) Error(ctx context.Context, msg string, kv ...interface{}) {
	d.l.Error().Fields(kv).Msg(msg)
}
