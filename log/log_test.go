package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToLevel(t *testing.T) {

	cases := []struct {
		name string
		set  any
		want Level
	}{
		{"level->info", INFO, INFO},
		{"integer->debug", 0, DEBUG},
		{"string->debug", "debug", DEBUG},
		{"string->info", "info", INFO},
		{"string->warning", "warning", WARN},
		{"string->warn", "warn", WARN},
		{"string->error", "error", ERROR},
		{"string->err", "err", ERROR},
		{"string->unknown", "unknown", defaultLevel},
		{"struct->defaultLevel", struct{}{}, defaultLevel},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, ToLevel(c.set))
		})
	}
}

func TestLevelString(t *testing.T) {

	cases := []struct {
		name   string
		level  Level
		expect string
	}{
		{"< debug", Level(-1), "[Level(-1)]"},
		{"> error", Level(100), "[Level(100)]"},
		{"debug", DEBUG, "[DEBUG] "},
		{"error", ERROR, "[ERROR] "},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.expect, c.level.String())
		})
	}
}

func capture(t *testing.T, lv Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	l := DefaultLogger()
	l.SetOutput(&buf)
	l.SetLevel(lv)
	t.Cleanup(func() {
		l.SetOutput(os.Stderr)
		l.SetLevel(defaultLevel)
	})
	return &buf
}

func TestLevelFilter(t *testing.T) {
	buf := capture(t, WARN)
	Debugf("dropped %d", 1)
	Infof("dropped %d", 2)
	require.Equal(t, "", buf.String())

	Warnf("kept %d", 3)
	require.Contains(t, buf.String(), "[WARN ] kept 3")
}

func TestDebugEnabled(t *testing.T) {
	buf := capture(t, DEBUG)
	Debug("skipped line")
	require.Contains(t, buf.String(), "[DEBUG] skipped line")
	Errorf("code %d", 7)
	require.Contains(t, buf.String(), "[ERROR] code 7")
}

func TestDefaultLogger(t *testing.T) {
	require.NotNil(t, DefaultLogger())
}
