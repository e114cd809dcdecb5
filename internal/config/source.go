// Copyright (c) 2026 genpwd Team
// genpwd - memorable passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

var (
	// ErrMalformedConfigLine marks a persisted line that is not exactly KEY=VALUE.
	ErrMalformedConfigLine = errors.New("malformed config line")
	// ErrDuplicateConfigKey marks a key defined twice in one source.
	ErrDuplicateConfigKey = errors.New("duplicate config key")
	// ErrInvalidConfigValue marks a persisted value that cannot be converted
	// to the type of its field.
	ErrInvalidConfigValue = errors.New("invalid config value")
	// ErrConfigUnavailable marks a config file that exists but cannot be read.
	ErrConfigUnavailable = errors.New("config unavailable")
)

// MalformedLineError reports the line that did not split into two fields.
type MalformedLineError struct {
	Path   string
	Line   int
	Fields int
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("%s:%d: %v: expected KEY=VALUE, got %d field(s)", e.Path, e.Line, ErrMalformedConfigLine, e.Fields)
}

func (e *MalformedLineError) Is(target error) bool { return target == ErrMalformedConfigLine }

// DuplicateKeyError reports the second definition of a key.
type DuplicateKeyError struct {
	Path  string
	Key   string
	Line  int
	First int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s:%d: %v %q (first defined on line %d)", e.Path, e.Line, ErrDuplicateConfigKey, e.Key, e.First)
}

func (e *DuplicateKeyError) Is(target error) bool { return target == ErrDuplicateConfigKey }

// InvalidValueError reports a persisted value of the wrong type.
type InvalidValueError struct {
	Path  string
	Line  int
	Key   string
	Value string
	Err   error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s:%d: %v for %s: %q: %v", e.Path, e.Line, ErrInvalidConfigValue, e.Key, e.Value, e.Err)
}

func (e *InvalidValueError) Is(target error) bool { return target == ErrInvalidConfigValue }

func (e *InvalidValueError) Unwrap() error { return e.Err }

// Entry is one KEY=VALUE pair with surrounding whitespace trimmed.
type Entry struct {
	Key   string
	Value string
	Line  int
}

// Source is a parsed persisted configuration. The zero value and a nil
// *Source both behave as an empty, absent source.
type Source struct {
	Path    string
	present bool
	entries []Entry
	index   map[string]int
}

// LoadSource reads the persisted configuration at path. A missing file is
// not an error and yields an empty source.
func LoadSource(path string) (*Source, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Source{Path: path}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigUnavailable, path, err)
	}
	defer func() { _ = f.Close() }()
	return Parse(f, path)
}

// Parse reads KEY=VALUE lines from r. Blank lines are skipped. Keys are
// case-sensitive and must be unique.
func Parse(r io.Reader, path string) (*Source, error) {
	src := &Source{Path: path, present: true, index: make(map[string]int)}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		fields := strings.Split(text, "=")
		if len(fields) != 2 {
			return nil, &MalformedLineError{Path: path, Line: line, Fields: len(fields)}
		}
		key := strings.TrimSpace(fields[0])
		if key == "" {
			return nil, &MalformedLineError{Path: path, Line: line, Fields: 1}
		}
		if first, dup := src.index[key]; dup {
			return nil, &DuplicateKeyError{Path: path, Key: key, Line: line, First: src.entries[first].Line}
		}

		src.index[key] = len(src.entries)
		src.entries = append(src.entries, Entry{Key: key, Value: strings.TrimSpace(fields[1]), Line: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigUnavailable, path, err)
	}
	return src, nil
}

// Present reports whether the source was read from an existing file.
func (s *Source) Present() bool { return s != nil && s.present }

// Lookup returns the entry for key. Matching is exact.
func (s *Source) Lookup(key string) (Entry, bool) {
	if s == nil {
		return Entry{}, false
	}
	i, ok := s.index[key]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Entries returns the entries in file order.
func (s *Source) Entries() []Entry {
	if s == nil {
		return nil
	}
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *Source) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}
