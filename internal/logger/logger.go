package logger

import (
	"go.uber.org/zap"
)

var base = zap.NewNop()

// Init replaces the no-op default with a production zap logger.
// Call once from main before anything else logs.
func Init() {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	base = l
	base.Info("logger initialized")
}

func Info(msg string, fields map[string]any) {
	base.Info(msg, zapFields(fields)...)
}

func Warn(msg string, fields map[string]any) {
	base.Warn(msg, zapFields(fields)...)
}

func Error(msg string, fields map[string]any) {
	base.Error(msg, zapFields(fields)...)
}

// Fatal logs and exits the process.
func Fatal(msg string, fields map[string]any) {
	base.Fatal(msg, zapFields(fields)...)
}

func zapFields(m map[string]any) []zap.Field {
	if len(m) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(m))
	for k, v := range m {
		out = append(out, zap.Any(k, v))
	}
	return out
}
