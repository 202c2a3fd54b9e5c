// Package objlog defines the logging interface consumed by the loader and
// its worker pool. Implementations must be safe for use from any goroutine.
package objlog

import "go.uber.org/zap"

// Severity classifies a log message.
type Severity int

const (
	Debug Severity = iota
	Info
	Warning
	Error
	Success
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case Debug:
		return "Debug"
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	case Success:
		return "Success"
	default:
		return "Unknown"
	}
}

// Sink receives severity-tagged messages. The loader never reads log
// state back; a Sink is write-only from its perspective.
type Sink interface {
	Log(severity Severity, message string)
}

// NopSink discards all messages.
type NopSink struct{}

// Log implements Sink.
func (NopSink) Log(Severity, string) {}

// ZapSink adapts a *zap.Logger to the Sink interface. Success messages
// log at info level with a status field, since zap has no success level.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink wraps the given zap logger.
func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{logger: logger}
}

// Log implements Sink.
func (z *ZapSink) Log(severity Severity, message string) {
	switch severity {
	case Debug:
		z.logger.Debug(message)
	case Info:
		z.logger.Info(message)
	case Warning:
		z.logger.Warn(message)
	case Error:
		z.logger.Error(message)
	case Success:
		z.logger.Info(message, zap.String("status", "success"))
	}
}
