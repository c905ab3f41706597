package platform

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// DefaultBlocklistFile is looked up relative to the working directory
const DefaultBlocklistFile = "blocklist.txt"

// ReadBlocklist returns the preset names listed in a blocklist file, one per
// line. Empty lines are skipped; CRLF line endings are accepted.
// A missing file is not an error and yields no names.
func ReadBlocklist(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open blocklist: %w", err)
	}
	defer f.Close()

	names, err := parseBlocklist(f)
	if err != nil {
		return nil, fmt.Errorf("read blocklist %s: %w", path, err)
	}
	return names, nil
}

func parseBlocklist(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	return names, scanner.Err()
}
