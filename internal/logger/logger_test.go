package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelsFilterOutput(t *testing.T) {
	tests := []struct {
		level     Level
		wantDebug bool
		wantInfo  bool
	}{
		{LevelOff, false, false},
		{LevelNormal, false, true},
		{LevelVerbose, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			log := New(tt.level, &buf)
			log.Debug("debug %d", 1)
			log.Info("info %d", 2)
			log.Error("error %d", 3)

			out := buf.String()
			if got := strings.Contains(out, "[DBG] ") && strings.Contains(out, "debug 1"); got != tt.wantDebug {
				t.Errorf("debug visible = %v, expected %v\n%s", got, tt.wantDebug, out)
			}
			if got := strings.Contains(out, "[INF] ") && strings.Contains(out, "info 2"); got != tt.wantInfo {
				t.Errorf("info visible = %v, expected %v\n%s", got, tt.wantInfo, out)
			}
			if got := strings.Contains(out, "error 3"); got != tt.wantInfo {
				t.Errorf("error visible = %v, expected %v", got, tt.wantInfo)
			}
		})
	}
}

func TestNamedPrefixesAndSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	root := New(LevelNormal, &buf)
	bank := root.Named("engine").Named("bank")

	bank.Warn("line %s stuck", "GPIO4")
	if !strings.Contains(buf.String(), "[WRN] ") || !strings.Contains(buf.String(), "engine.bank: line GPIO4 stuck") {
		t.Fatalf("unexpected output %q", buf.String())
	}

	buf.Reset()
	root.SetLevel(LevelOff)
	bank.Error("hidden")
	if buf.Len() != 0 {
		t.Fatalf("derived logger ignored SetLevel: %q", buf.String())
	}
	if bank.GetLevel() != LevelOff {
		t.Fatalf("expected derived level off, got %s", bank.GetLevel())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"", LevelNormal, false},
		{"normal", LevelNormal, false},
		{"INFO", LevelNormal, false},
		{" verbose ", LevelVerbose, false},
		{"debug", LevelVerbose, false},
		{"off", LevelOff, false},
		{"quiet", LevelOff, false},
		{"loud", LevelNormal, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %s, expected %s", tt.in, got, tt.want)
		}
	}
}
