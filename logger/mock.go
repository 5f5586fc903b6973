package logger

import "fmt"

var (
	mockELKLogger *MockELKLogger
)

// MockELKLogger prints to stdout instead of shipping to logstash. The CLI
// and tests use it when no logstash endpoint is configured.
type MockELKLogger struct {
}

var _ Logger = (*MockELKLogger)(nil)

func (m MockELKLogger) SetLogLevel(level string) {
	// mock logger
}

func (m MockELKLogger) Info(msg string, fields ...Field) {
	fmt.Printf("%s %+v \n", msg, fields)
}

func (m MockELKLogger) Warn(msg string, fields ...Field) {
	fmt.Printf("%s %+v \n", msg, fields)
}

func (m MockELKLogger) Error(msg string, fields ...Field) {
	fmt.Printf("%s %+v \n", msg, fields)
}

func (m MockELKLogger) Fatal(msg string, fields ...Field) {
	fmt.Printf("%s %+v \n", msg, fields)
}

func (m MockELKLogger) Debug(msg string, fields ...Field) {
	fmt.Printf("%s %+v \n", msg, fields)
}

func (m MockELKLogger) Infof(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

func (m MockELKLogger) Warnf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

func (m MockELKLogger) Errorf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

func (m MockELKLogger) Fatalf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

func (m MockELKLogger) Debugf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

func (m MockELKLogger) SweetenFields(args []interface{}) []Field {
	fields := make([]Field, 0, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		if key, ok := args[i].(string); ok {
			fields = append(fields, WithField(key, args[i+1]))
		}
	}
	return fields
}

func NewMockELKLogger() Logger {
	once.Do(func() {
		mockELKLogger = &MockELKLogger{}
	})

	return mockELKLogger
}
