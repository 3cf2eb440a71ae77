// Package taskfile reads and writes the flat task file.
//
// The format is one record per line, `<flag>;<text>`, where flag 1 marks a
// completed task and anything else does not. Text is written literally with
// no escaping; lines are parsed by splitting on the first semicolon, so
// embedded semicolons in task text survive a round-trip. The known caveat,
// kept for compatibility with existing task files: text that itself begins
// with an integer and a semicolon is misread as a flag on reload.
package taskfile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/colonyops/tracker/internal/core/task"
)

// Delimiter separates the completion flag from the task text.
const Delimiter = ";"

// Record is one parsed line of a task file.
type Record struct {
	Text string
	Done bool
}

// Save writes every task to path in order, overwriting the previous file.
// Each Save is a complete pass; there is no partial or incremental write.
func Save(path string, tasks []task.Task) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open task file for writing: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := bufio.NewWriter(f)
	for _, t := range tasks {
		flag := 0
		if t.Done {
			flag = 1
		}
		if _, err := fmt.Fprintf(w, "%d%s%s\n", flag, Delimiter, t.Text); err != nil {
			return fmt.Errorf("write task file: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush task file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close task file: %w", err)
	}
	return nil
}

// Load reads the task file at path line by line.
//
// A missing file is the normal first-run condition and yields an empty
// slice, not an error. A line without the delimiter degrades to "whole line
// is text, not completed"; an unparsable flag means not completed. Malformed
// input is never rejected.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open task file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		records = append(records, parseLine(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}
	return records, nil
}

func parseLine(line string) Record {
	line = strings.TrimRight(line, "\r\n")

	flag, text, found := strings.Cut(line, Delimiter)
	if !found {
		return Record{Text: line}
	}

	n, err := strconv.Atoi(flag)
	done := err == nil && n == 1
	return Record{Text: text, Done: done}
}
