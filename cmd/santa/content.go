package main

import (
	"fmt"
	"os"
	"strings"

	"santa-lab/errors"

	"github.com/gabriel-vasile/mimetype"
)

// loadExtraContent reads the optional file appended to every participant
// e-mail. Only text content is accepted.
func loadExtraContent(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read extra content: %w", err)
	}

	detected := mimetype.Detect(data)
	if !strings.HasPrefix(detected.String(), "text/") {
		return "", fmt.Errorf("%w: %s detected as %s", errors.ErrUnsupportedContent, path, detected)
	}

	return string(data), nil
}
