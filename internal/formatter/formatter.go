package formatter

import (
	"fmt"
	"strings"

	"vetparser/internal/scraper"
)

// extensions maps each supported format to its file extension.
var extensions = map[string]string{
	"csv":      ".csv",
	"json":     ".json",
	"markdown": ".md",
	"text":     ".txt",
	"html":     ".html",
}

// Format renders content in the given format.
func Format(content scraper.Content, format string) (string, error) {
	switch strings.ToLower(format) {
	case "html":
		return content.ToHTML()
	case "text":
		return content.ToText()
	case "markdown":
		return content.ToMarkdown()
	case "csv":
		return content.ToCSV()
	case "json":
		b, err := content.ToJSON()
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

// Extension returns the file extension for format, including the dot.
func Extension(format string) (string, bool) {
	ext, ok := extensions[strings.ToLower(format)]
	return ext, ok
}
