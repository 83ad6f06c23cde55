package telemetry

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// TextSnapshot is the human-readable dump of one grid state.
//
// Format: a header line with tick and season name, a counts line, then one
// line per grid row using '.', 'G', 'r' and 'W'. Grass maturity is not
// recorded.
type TextSnapshot struct {
	Tick    int
	Season  string
	Grass   int
	Rabbits int
	Wolves  int
	Rows    []string

	// Bookmark that triggered the snapshot, if any. Only affects the file name.
	Bookmark *Bookmark
}

const snapshotHeader = "Ecosystem snapshot - tick "

// WriteTo writes the snapshot text to w.
func (s *TextSnapshot) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s%d (season: %s)\n", snapshotHeader, s.Tick, s.Season)
	fmt.Fprintf(&buf, "Grass: %d, Rabbits: %d, Wolves: %d\n", s.Grass, s.Rabbits, s.Wolves)
	for _, row := range s.Rows {
		buf.WriteString(row)
		buf.WriteByte('\n')
	}
	return buf.WriteTo(w)
}

// SnapshotFileName returns ecosystem_tick_<tick>.txt, with the bookmark type
// appended before the extension when set.
func SnapshotFileName(tick int, bookmark *Bookmark) string {
	name := fmt.Sprintf("ecosystem_tick_%d", tick)
	if bookmark != nil {
		// Sanitize bookmark type for filename
		name += "_" + strings.ReplaceAll(string(bookmark.Type), " ", "_")
	}
	return name + ".txt"
}

// SaveSnapshot writes a snapshot into dir, creating it if needed. An empty
// dir means the working directory. Returns the path written.
func SaveSnapshot(snapshot *TextSnapshot, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	path := filepath.Join(dir, SnapshotFileName(snapshot.Tick, snapshot.Bookmark))

	var buf bytes.Buffer
	if _, err := snapshot.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("render snapshot: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	return path, nil
}

// LoadSnapshot reads a snapshot written by SaveSnapshot.
func LoadSnapshot(path string) (*TextSnapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	defer f.Close()

	snapshot, err := ParseSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return snapshot, nil
}

// ParseSnapshot reads the text form produced by WriteTo.
func ParseSnapshot(r io.Reader) (*TextSnapshot, error) {
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		return nil, fmt.Errorf("missing header line")
	}
	rest, ok := strings.CutPrefix(sc.Text(), snapshotHeader)
	if !ok {
		return nil, fmt.Errorf("bad header %q", sc.Text())
	}
	tickText, seasonText, ok := strings.Cut(rest, " (season: ")
	if !ok || !strings.HasSuffix(seasonText, ")") {
		return nil, fmt.Errorf("bad header %q", sc.Text())
	}

	s := &TextSnapshot{Season: strings.TrimSuffix(seasonText, ")")}
	if _, err := fmt.Sscanf(tickText, "%d", &s.Tick); err != nil {
		return nil, fmt.Errorf("bad tick %q: %w", tickText, err)
	}

	if !sc.Scan() {
		return nil, fmt.Errorf("missing counts line")
	}
	if _, err := fmt.Sscanf(sc.Text(), "Grass: %d, Rabbits: %d, Wolves: %d", &s.Grass, &s.Rabbits, &s.Wolves); err != nil {
		return nil, fmt.Errorf("bad counts line %q: %w", sc.Text(), err)
	}

	for sc.Scan() {
		s.Rows = append(s.Rows, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return s, nil
}
