package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines an interface for swapd logger.
type Logger interface {
	// Debug logs a message at Debug level.
	Debug(msg string, fields ...zap.Field)
	// Info logs a message at Info level.
	Info(msg string, fields ...zap.Field)
	// Warn logs a message at Warn level.
	Warn(msg string, fields ...zap.Field)
	// Error logs a message at Error level.
	Error(msg string, fields ...zap.Field)
}

var _ Logger = &loggerImpl{}

type loggerImpl struct {
	zapLogger *zap.Logger
}

// NewLogger creates a new logger.
// If fileName is non-empty, it pipes logs to the file and stdout.
// if isProduction is true, uses production config, development config otherwise.
// logLevel is one of debug, info, warn or error; defaults to info.
func NewLogger(isProduction bool, fileName, logLevel string) (Logger, error) {
	level := zap.InfoLevel
	if err := level.Set(logLevel); logLevel != "" && err != nil {
		return nil, err
	}

	var encoderConfig zapcore.EncoderConfig
	if isProduction {
		encoderConfig = zap.NewProductionEncoderConfig()
	} else {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	writers := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if fileName != "" {
		file, err := os.OpenFile(fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		writers = append(writers, zapcore.AddSync(file))
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(writers...), level)

	return &loggerImpl{
		zapLogger: zap.New(core, zap.AddCaller()),
	}, nil
}

func (l *loggerImpl) Debug(msg string, fields ...zap.Field) {
	l.zapLogger.Debug(msg, fields...)
}

func (l *loggerImpl) Info(msg string, fields ...zap.Field) {
	l.zapLogger.Info(msg, fields...)
}

func (l *loggerImpl) Warn(msg string, fields ...zap.Field) {
	l.zapLogger.Warn(msg, fields...)
}

func (l *loggerImpl) Error(msg string, fields ...zap.Field) {
	l.zapLogger.Error(msg, fields...)
}

var _ Logger = &NoOpLogger{}

// NoOpLogger is a logger that does nothing. Useful in tests.
type NoOpLogger struct{}

func (l *NoOpLogger) Debug(msg string, fields ...zap.Field) {}

func (l *NoOpLogger) Info(msg string, fields ...zap.Field) {}

func (l *NoOpLogger) Warn(msg string, fields ...zap.Field) {}

func (l *NoOpLogger) Error(msg string, fields ...zap.Field) {}
