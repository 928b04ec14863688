package logger_adapter_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"

	logger_adapter "github.com/Tushar123097/Home-rent-app/internal/adapters/logger"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postedRecord struct {
	tag  string
	data port.Fields
}

type fakeFluent struct {
	mu      sync.Mutex
	records []postedRecord
	closed  bool
}

func (f *fakeFluent) Post(tag string, message interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, postedRecord{tag: tag, data: message.(port.Fields)})
	return nil
}

func (f *fakeFluent) Close() error {
	f.closed = true
	return nil
}

func TestSlogAdapter_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{Writer: &buf, IsJSON: true})

	log.WithFields(port.Fields{"use_case": "Login"}).Error("Use case failed", errors.New("boom"), port.Fields{"user_id": "user1"})

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "Use case failed", record["msg"])
	assert.Equal(t, "Login", record["use_case"])
	assert.Equal(t, "user1", record["user_id"])
	assert.Equal(t, "boom", record["error"])
}

func TestSlogAdapter_LevelFilter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{Writer: &buf, Level: slog.LevelWarn})

	log.Debug("hidden", nil)
	log.Info("hidden", nil)
	assert.Zero(t, buf.Len())

	log.Warn("shown", nil)
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, logger_adapter.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logger_adapter.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logger_adapter.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logger_adapter.ParseLevel("verbose"))
}

func TestFluentLoggerAdapter(t *testing.T) {
	t.Parallel()

	client := &fakeFluent{}
	log, err := logger_adapter.NewFluentLoggerAdapter(client, "home-rent", slog.LevelInfo)
	require.NoError(t, err)

	scoped := log.WithFields(port.Fields{"component": "rest"})
	scoped.Debug("dropped", nil)
	scoped.Error("failed", errors.New("boom"), port.Fields{"status_code": 500})

	require.Len(t, client.records, 1)
	rec := client.records[0]
	assert.Equal(t, "home-rent.error", rec.tag)
	assert.Equal(t, "rest", rec.data["component"])
	assert.Equal(t, "boom", rec.data["error"])
	assert.Equal(t, "failed", rec.data["message"])
	assert.Equal(t, 500, rec.data["status_code"])

	require.NoError(t, log.Close())
	assert.True(t, client.closed)

	_, err = logger_adapter.NewFluentLoggerAdapter(nil, "", nil)
	assert.Error(t, err)
}

func TestMultiLogger(t *testing.T) {
	t.Parallel()

	_, err := logger_adapter.NewMultiloggerAdapter()
	assert.Error(t, err)

	a, b := &fakeFluent{}, &fakeFluent{}
	la, _ := logger_adapter.NewFluentLoggerAdapter(a, "", slog.LevelDebug)
	lb, _ := logger_adapter.NewFluentLoggerAdapter(b, "", slog.LevelDebug)

	multi, err := logger_adapter.NewMultiloggerAdapter(la, lb)
	require.NoError(t, err)

	multi.WithFields(port.Fields{"trace_id": "t1"}).Info("hello", nil)

	for _, c := range []*fakeFluent{a, b} {
		require.Len(t, c.records, 1)
		assert.Equal(t, "info", c.records[0].tag)
		assert.Equal(t, "t1", c.records[0].data["trace_id"])
	}
}
