package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"os/user"
	"path/filepath"
	"time"
)

// FileName is the history file inside the configuration directory.
const FileName = "history.jsonl"

// Operations recorded by the CLI.
const (
	OpSettingSet   = "settings.set"
	OpSettingReset = "settings.reset"
	OpInputSet     = "input.set"
)

const timestampFormat = "2006-01-02T15:04:05.000000Z"

// Entry represents a single history entry.
type Entry struct {
	Timestamp string `json:"ts"`
	User      string `json:"user,omitempty"`
	Operation string `json:"op"`

	Section string `json:"section,omitempty"`
	Name    string `json:"name,omitempty"`
	Old     string `json:"old,omitempty"`
	New     string `json:"new,omitempty"`
}

// LogPath returns the history file path for dir, or "" if dir is empty.
func LogPath(dir string) string {
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, FileName)
}

// Log appends entry to the history file in dir, filling in the timestamp
// and user when they are empty. Failures are ignored.
func Log(dir string, entry Entry) {
	path := LogPath(dir)
	if path == "" {
		return
	}

	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(timestampFormat)
	}
	if entry.User == "" {
		if u, err := user.Current(); err == nil {
			entry.User = u.Username
		}
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	_, _ = f.Write(append(data, '\n'))
}

// ReadEntries returns every entry in the history file in dir, oldest
// first. A missing file yields no entries.
func ReadEntries(dir string) ([]Entry, error) {
	path := LogPath(dir)
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data. Blank and malformed lines are
// skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, scanner.Err()
}

// Last returns at most n entries from the end of entries. n <= 0 returns
// all of them.
func Last(entries []Entry, n int) []Entry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[len(entries)-n:]
}
