package logger

import (
	"errors"
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingOverLogstash(t *testing.T) {
	// stand-in logstash endpoint
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 4096)
		for {
			if _, err := conn.Read(buf); err != nil {
				return
			}
		}
	}()

	l := NewELKLogger("bvs-crypto-test", ln.Addr().String())
	l.SetLogLevel("debug")
	l.Info("this is a info log test")
	l.Warn("this is a warn log test")
	l.Error("this is a error log test", WithField("age", 100), WithField("gender", "man"))
	l.Debug("this is a debug log test")

	// singleton: concurrent and repeated calls all yield the first instance,
	// even with a different service name or endpoint
	var wg sync.WaitGroup
	results := make([]Logger, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = NewELKLogger("other-service", "127.0.0.1:1")
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.Same(t, l, r)
	}
}

func TestSweetenFields(t *testing.T) {
	l := NewMockELKLogger()

	fields := l.SweetenFields([]interface{}{"op", "deserialize", "bytes", 192})
	require.Len(t, fields, 2)
	assert.Equal(t, "op", fields[0].Key)
	assert.Equal(t, "deserialize", fields[0].Val)
	assert.Equal(t, "bytes", fields[1].Key)
	assert.Equal(t, 192, fields[1].Val)
}

func TestSweetenFieldsELK(t *testing.T) {
	l := &ELKLogger{}

	err := errors.New("boom")
	fields := l.SweetenFields([]interface{}{err, "op", "add"})
	require.Len(t, fields, 2)
	assert.Equal(t, "error", fields[0].Key)
	assert.Equal(t, err, fields[0].Val)
	assert.Equal(t, "op", fields[1].Key)
}
