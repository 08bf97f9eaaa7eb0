// Package target parses the user-supplied target list: the ordered song
// requests that drive a pipeline run.
// Pure functions: text in, domain queries out. No library dependencies.
package target

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/heartmarshall/songdeck/internal/domain"
)

var (
	// "512"
	reNumberOnly = regexp.MustCompile(`^\d+$`)
	// "512 Amazing Grace"
	reNumberTitle = regexp.MustCompile(`^(\d+)\s+(.+)$`)
	// "Amazing Grace (Hymn 512)", also "Hymns" and an optional comma.
	reTitleHymn = regexp.MustCompile(`(?i)^(.*?)\s*\(hymns?,?\s*(\d+)\)$`)
)

// Parse turns one target line into a Query. Rules are tried in order,
// first match wins: bare number, "number title", "title (Hymn number)",
// plain title. Parse never fails: a numeric-looking fragment that does
// not fit an int falls through to title-only treatment.
func Parse(line string) domain.Query {
	line = strings.TrimSpace(line)

	if reNumberOnly.MatchString(line) {
		if n, err := strconv.Atoi(line); err == nil {
			return domain.Query{Raw: line, Number: &n}
		}
		return domain.Query{Raw: line, Title: line}
	}

	if m := reNumberTitle.FindStringSubmatch(line); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return domain.Query{Raw: line, Number: &n, Title: strings.TrimSpace(m[2])}
		}
		return domain.Query{Raw: line, Title: line}
	}

	if m := reTitleHymn.FindStringSubmatch(line); m != nil {
		if n, err := strconv.Atoi(m[2]); err == nil {
			return domain.Query{Raw: line, Number: &n, Title: strings.TrimSpace(m[1])}
		}
	}

	return domain.Query{Raw: line, Title: line}
}

// ReadList reads a target list from r: one query per non-empty line,
// original order preserved.
func ReadList(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan target list: %w", err)
	}
	return lines, nil
}

// ReadFile reads a target list from a file.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open target list: %w", err)
	}
	defer f.Close()

	return ReadList(f)
}
