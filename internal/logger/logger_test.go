package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"quiet", LevelSilent, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestConsoleLevels(t *testing.T) {
	var out, errOut bytes.Buffer
	log := newConsole(LevelInfo, &out, &errOut, false)

	log.Debug("hidden %d", 1)
	log.Info("shown %d", 2)
	log.Warn("careful")
	log.Error("broken: %s", "disk")

	require.Equal(t, "shown 2\n", out.String())
	require.Equal(t, "careful\nbroken: disk\n", errOut.String())
}

func TestConsoleComponent(t *testing.T) {
	var out bytes.Buffer
	log := newConsole(LevelDebug, &out, &out, false)

	log.WithComponent("compositor").Debug("ran %s", "frame")
	log.Info("plain")

	require.Equal(t, "[compositor] ran frame\nplain\n", out.String())
}

func TestConsoleColor(t *testing.T) {
	var out, errOut bytes.Buffer
	log := newConsole(LevelDebug, &out, &errOut, true)

	log.WithComponent("export").Error("oops")

	line := errOut.String()
	require.True(t, strings.HasPrefix(line, colorRed))
	require.Contains(t, line, colorCyan+"[export]"+colorReset)
	require.Empty(t, out.String())
}

func TestNoop(t *testing.T) {
	var log Logger = NewNoop()
	log.Info("nothing")
	require.NotNil(t, log.WithComponent("x"))
}
