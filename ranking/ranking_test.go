package ranking

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestLines(t *testing.T) {
	lines := Lines([]int{50, 40})
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[0]), "1") || !strings.HasSuffix(lines[0], "50") {
		t.Errorf("Unexpected first line %q", lines[0])
	}

	empty := Lines(nil)
	if len(empty) != 1 || empty[0] != EmptyText {
		t.Errorf("Expected empty notice, got %v", empty)
	}
}

func TestPrint(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	Print(&buf, []int{30, 20, 10})
	out := buf.String()

	for _, want := range []string{Title, HeaderText, "30", "20", "10"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("Expected no escape codes with color disabled")
	}
}

func TestPrintSummary_Empty(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	PrintSummary(&buf, 0, nil)
	out := buf.String()

	if !strings.Contains(out, "Final score: 0") {
		t.Errorf("Expected final score line, got:\n%s", out)
	}
	if !strings.Contains(out, EmptyText) {
		t.Errorf("Expected empty notice, got:\n%s", out)
	}
}
