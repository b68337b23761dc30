package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
	}{
		{"debug level with text format", "debug", "text", logrus.DebugLevel},
		{"info level with json format", "info", "json", logrus.InfoLevel},
		{"upper case level", "WARN", "text", logrus.WarnLevel},
		{"invalid level defaults to info", "invalid", "text", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			require.NotNil(t, logger)

			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok, "logger should be a LogrusAdapter")
			assert.Equal(t, tt.expectLevel, adapter.Level())

			if tt.format == "json" {
				_, ok := adapter.logger.Formatter.(*logrus.JSONFormatter)
				assert.True(t, ok, "formatter should be JSONFormatter")
			} else {
				_, ok := adapter.logger.Formatter.(*logrus.TextFormatter)
				assert.True(t, ok, "formatter should be TextFormatter")
			}
		})
	}
}

func TestNewLogrusAdapterFromLogger(t *testing.T) {
	t.Run("with existing logger", func(t *testing.T) {
		existingLogger := logrus.New()
		existingLogger.SetLevel(logrus.DebugLevel)

		adapter, ok := NewLogrusAdapterFromLogger(existingLogger).(*LogrusAdapter)
		require.True(t, ok)
		assert.Equal(t, existingLogger, adapter.logger)
	})

	t.Run("with nil logger creates new one", func(t *testing.T) {
		adapter, ok := NewLogrusAdapterFromLogger(nil).(*LogrusAdapter)
		require.True(t, ok)
		assert.NotNil(t, adapter.logger)
	})
}

func TestLogrusAdapter_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrusAdapterWithOutput("info", "json", &buf)

	logger.Info("record appended", F(FieldDate, "01-01-2025"), F(FieldAmount, "100"))

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "record appended", line["msg"])
	assert.Equal(t, "01-01-2025", line[FieldDate])
	assert.Equal(t, "100", line[FieldAmount])
}

func TestLogrusAdapter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrusAdapterWithOutput("warn", "text", &buf)

	logger.Info("hidden")
	logger.Debug("hidden too")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogrusAdapter_ChainedCalls(t *testing.T) {
	logrusLogger := logrus.New()
	var buf bytes.Buffer
	logrusLogger.SetOutput(&buf)
	logrusLogger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	logger := NewLogrusAdapterFromLogger(logrusLogger)

	logger.
		WithField(FieldOperation, "delete").
		WithFields(F(FieldDate, "06-01-2025")).
		WithError(errors.New("disk full")).
		Error("operation failed")

	output := buf.String()
	assert.Contains(t, output, "operation failed")
	assert.Contains(t, output, "delete")
	assert.Contains(t, output, "06-01-2025")
	assert.Contains(t, output, "disk full")
}

func TestConvertFields(t *testing.T) {
	logrusFields := convertFields([]Field{
		{Key: "key1", Value: "value1"},
		{Key: "key2", Value: 42},
	})

	assert.Len(t, logrusFields, 2)
	assert.Equal(t, "value1", logrusFields["key1"])
	assert.Equal(t, 42, logrusFields["key2"])
	assert.Len(t, convertFields(nil), 0)
}

func TestLogrusAdapter_ImplementsInterface(t *testing.T) {
	var _ Logger = (*LogrusAdapter)(nil)
	var _ Logger = (*MockLogger)(nil)
}

func TestMockLogger_SharesEntriesWithDerivedLoggers(t *testing.T) {
	mock := NewMockLogger()

	mock.Info("first")
	mock.WithField(FieldCount, 2).Warn("second")
	mock.WithError(errors.New("bad")).Error("third", F(FieldFile, "x.csv"))
	mock.Fatalf("fatal %d", 4)

	entries := mock.GetEntries()
	require.Len(t, entries, 4)
	assert.True(t, mock.HasEntry("INFO", "first"))
	assert.Equal(t, []Field{{Key: FieldCount, Value: 2}}, entries[1].Fields)
	assert.EqualError(t, entries[2].Error, "bad")
	assert.Equal(t, "fatal 4", entries[3].Message)
	assert.Len(t, mock.GetEntriesByLevel("ERROR"), 1)
}

func TestMockLogger_ZeroValueUsable(t *testing.T) {
	var mock MockLogger
	mock.Debug("works")
	assert.True(t, mock.HasEntry("DEBUG", "works"))
}

func TestConfigure(t *testing.T) {
	logger := logrus.New()

	Configure(logger, "error", "json")
	assert.Equal(t, logrus.ErrorLevel, logger.GetLevel())
	_, ok := logger.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)

	Configure(logger, "nope", "text")
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	_, ok = logger.Formatter.(*logrus.TextFormatter)
	assert.True(t, ok)
}
