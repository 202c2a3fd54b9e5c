package obj

import (
	"errors"
	"os"
)

// ReadFileToBuffer slurps path into a contiguous byte buffer. No
// decoding happens here; the parsers walk raw bytes.
func ReadFileToBuffer(path string) ([]byte, error) {
	if path == "" {
		return nil, &IoError{Path: path, Err: errors.New("empty path")}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IoError{Path: path, Err: err}
	}
	return data, nil
}
