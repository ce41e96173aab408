package logtail

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
)

// Read returns at most maxLines from the end of the file at path. A maxLines
// of zero or less returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	lines, _, _, err := readTail(path, maxLines)
	return lines, err
}

// Tail is Read for a file that is still being written. It leaves out an
// unterminated final line and reports the byte offset just past the last
// complete line, where Follow should pick up. A missing file reports
// offset 0.
func Tail(path string, maxLines int) ([]string, int64, error) {
	lines, offset, partial, err := readTail(path, maxLines)
	if partial && len(lines) > 0 {
		lines = lines[:len(lines)-1]
	}
	return lines, offset, err
}

func readTail(path string, maxLines int) (lines []string, offset int64, partial bool, err error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, false, nil
		}
		return nil, 0, false, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(func(data []byte, atEOF bool) (int, []byte, error) {
		advance, token, err := bufio.ScanLines(data, atEOF)
		if advance > 0 {
			partial = bytes.IndexByte(data[:advance], '\n') < 0
			if !partial {
				offset += int64(advance)
			}
		}
		return advance, token, err
	})

	if maxLines <= 0 {
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, 0, false, fmt.Errorf("read log: %w", err)
		}
		return lines, offset, partial, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, false, fmt.Errorf("read log: %w", err)
	}

	lines = make([]string, count)
	if count == maxLines {
		for i := range count {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, offset, partial, nil
}
