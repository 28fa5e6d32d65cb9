package macro

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dshills/arbor/internal/input/key"
)

// eventsPerLine is how many keys Save writes per line.
const eventsPerLine = 16

// Save writes events to path as a key sequence.
// The file is written atomically using a temporary file and rename.
func Save(path string, events []key.Event) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# arbor key sequence, %d keys, recorded %s\n", len(events), time.Now().Format(time.RFC3339))
	for start := 0; start < len(events); start += eventsPerLine {
		end := min(start+eventsPerLine, len(events))
		sb.WriteString(Format(events[start:end]))
		sb.WriteByte('\n')
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Write atomically using temp file + rename
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Load reads a key sequence file written by Save or by hand.
func Load(path string) ([]key.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open key sequence: %w", err)
	}
	defer f.Close()

	var events []key.Event
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		evs, err := key.ParseSequence(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		events = append(events, evs...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read key sequence: %w", err)
	}
	return events, nil
}
