package output

import (
	"fmt"
	"os"

	"vetparser/internal/formatter"
	"vetparser/internal/scraper"
)

// WriteFile renders content and writes it to name plus the format's
// extension, replacing any existing file. It returns the path written.
// Rendering happens before the file is created, so a formatting error
// leaves the filesystem untouched.
func WriteFile(content scraper.Content, name, format string) (path string, err error) {
	ext, ok := formatter.Extension(format)
	if !ok {
		return "", fmt.Errorf("unsupported output format: %s", format)
	}

	data, err := formatter.Format(content, format)
	if err != nil {
		return "", fmt.Errorf("failed to format output: %w", err)
	}

	path = name + ext
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if _, err := f.WriteString(data); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
