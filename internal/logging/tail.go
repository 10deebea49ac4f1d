package logging

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Tail returns the last n records of the log file at path whose level is at
// least floor. A missing file yields no records.
func Tail(path string, n int, floor slog.Level) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = file.Close() }()
	return tail(file, n, floor)
}

func tail(r io.Reader, n int, floor slog.Level) ([]string, error) {
	ring := make([]string, n)
	next, kept := 0, 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if lvl, ok := recordLevel(line); ok && lvl < floor {
			continue
		}
		ring[next] = line
		next = (next + 1) % n
		kept = min(kept+1, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	out := make([]string, kept)
	start := (next - kept + n) % n
	for i := range out {
		out[i] = ring[(start+i)%n]
	}
	return out, nil
}

// recordLevel extracts the level attribute of a text handler record. Lines
// without one, such as wrapped stack output, are always kept.
func recordLevel(line string) (slog.Level, bool) {
	_, rest, found := strings.Cut(line, "level=")
	if !found {
		return 0, false
	}
	value, _, _ := strings.Cut(rest, " ")
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(value)); err != nil {
		return 0, false
	}
	return lvl, true
}
