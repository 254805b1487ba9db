package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	log := newWithOutput("studyqa", "info", &buf)

	log.WithRequestID("req-1").Info("question created")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "question created", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "studyqa", entry["service"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Contains(t, entry, "timestamp")
}

func TestLogger_Level(t *testing.T) {
	tests := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"":        logrus.InfoLevel,
		"verbose": logrus.InfoLevel,
	}
	for level, want := range tests {
		var buf bytes.Buffer
		assert.Equal(t, want, newWithOutput("studyqa", level, &buf).GetLevel(), level)
	}
}
