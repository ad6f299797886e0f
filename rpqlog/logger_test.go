package rpqlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/katalvlaran/windowrpq/rpqlog"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := rpqlog.New(rpqlog.Config{Level: "debug", Output: &buf})
	l.Info("hello")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, "hello", decoded["msg"])
}

func TestLoggerContextRoundTrip(t *testing.T) {
	l := rpqlog.New(rpqlog.DefaultConfig())
	ctx := l.WithContext(context.Background())
	require.Same(t, l, rpqlog.FromContext(ctx))
}

func TestFromContextWithoutLoggerDiscards(t *testing.T) {
	got := rpqlog.FromContext(context.Background())
	require.NotNil(t, got)
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	base := rpqlog.New(rpqlog.Config{Level: "debug", Output: &buf})
	derived := base.WithField("component", "driver")
	derived.Info("scoped")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, "driver", decoded["component"])

	buf.Reset()
	base.Info("unscoped")
	var parentDecoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parentDecoded))
	require.NotContains(t, parentDecoded, "component")
}
