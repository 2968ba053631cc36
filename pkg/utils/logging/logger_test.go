package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slackinvite/pkg/utils/logging"
)

func TestParseFormat(t *testing.T) {
	testCases := []struct {
		input    string
		expected logging.Format
		wantErr  bool
	}{
		{"", logging.FormatAuto, false},
		{"auto", logging.FormatAuto, false},
		{"console", logging.FormatConsole, false},
		{"json", logging.FormatJSON, false},
		{"xml", logging.FormatAuto, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			format, err := logging.ParseFormat(tc.input)
			if tc.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Equal(t, tc.expected, format)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	gt.Equal(t, slog.LevelDebug, logging.ParseLogLevel("debug"))
	gt.Equal(t, slog.LevelInfo, logging.ParseLogLevel(""))
	gt.Equal(t, slog.LevelWarn, logging.ParseLogLevel("warning"))
	gt.Equal(t, slog.LevelError, logging.ParseLogLevel("ERROR"))
	gt.Equal(t, slog.LevelInfo, logging.ParseLogLevel("verbose"))
}

func TestAutoFormatWritesJSONToNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(slog.LevelInfo, &buf)

	logger.Info("batch processed", "channelID", "C0123456789", "size", 30)
	logger.Debug("filtered out")

	var record map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &record)).Required()
	gt.Equal(t, "batch processed", record["msg"])
	gt.Equal(t, "C0123456789", record["channelID"])
}
