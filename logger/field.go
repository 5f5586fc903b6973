package logger

import "sync"

var once sync.Once

// Field is one structured key/value attached to a log line.
type Field struct {
	Key string
	Val interface{}
}

func WithField(key string, val interface{}) Field {
	return Field{Key: key, Val: val}
}
