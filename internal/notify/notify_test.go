package notify

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	var r Recorder
	_, ok := r.Last()
	assert.False(t, ok)

	r.Notify(context.Background(), Notification{Message: "a", Severity: SeverityInfo})
	r.Notify(context.Background(), Notification{Message: "b", Severity: SeverityError})

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].Message)

	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, SeverityError, last.Severity)
}

func TestLogSink_Levels(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(&buf)

	sink.Notify(context.Background(), Notification{Message: "saved", Severity: SeveritySuccess})
	sink.Notify(context.Background(), Notification{Message: "disk full", Severity: SeverityWarning})

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, `message="disk full"`)
}

func TestNewLogSink_NilWriter(t *testing.T) {
	assert.NotPanics(t, func() {
		NewLogSink(nil).Notify(context.Background(), Notification{Message: "x"})
	})
}

func TestFanout(t *testing.T) {
	var a, b Recorder
	sink := Fanout(&a, nil, &b)
	sink.Notify(context.Background(), Notification{Message: "m"})

	assert.Len(t, a.All(), 1)
	assert.Len(t, b.All(), 1)
}
