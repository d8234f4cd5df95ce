package document

import (
	"bufio"
	"fmt"
	"os"
)

// LoadLines reads every physical line of the file at path, in order.
// A file that cannot be opened or that contains no lines at all is an
// error; the search core requires a non-empty document.
func LoadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("document %q has no lines", path)
	}
	return lines, nil
}
