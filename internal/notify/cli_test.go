package notify

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/hammamikhairi/ottobar/internal/logger"
)

func TestCLINotifierUsesPrintFunc(t *testing.T) {
	var lines []string
	n := NewCLINotifier(logger.New(logger.LevelOff, nil), func(format string, a ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, a...))
	})

	if err := n.Notify(context.Background(), "2 Cuba Libre(s) are ready!"); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if err := n.NotifyUrgent(context.Background(), "pump fault"); err != nil {
		t.Fatalf("notify urgent: %v", err)
	}

	if len(lines) != 2 {
		t.Fatalf("expected 2 printed lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "2 Cuba Libre(s) are ready!") {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[1], "pump fault") {
		t.Fatalf("unexpected second line %q", lines[1])
	}
}
