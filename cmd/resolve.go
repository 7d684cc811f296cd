package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const textExt = ".txt"

var (
	ErrTextFileNotFound = errors.New("text file not found")
	ErrTextFileEmpty    = errors.New("text file is empty")
)

// readFileOrString resolves a voice/instruct argument. A value with a .txt
// extension is treated as a path and must exist — extension is checked
// first, existence second, so a missing file is an error rather than being
// read as literal text. Anything else is returned verbatim.
func readFileOrString(value string) (string, error) {
	if filepath.Ext(value) != textExt {
		return value, nil
	}

	data, err := os.ReadFile(value)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTextFileNotFound, value)
		}
		return "", fmt.Errorf("read %s: %w", value, err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("%w: %s", ErrTextFileEmpty, value)
	}
	return text, nil
}
