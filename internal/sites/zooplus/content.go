package zooplus

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html"
	"strings"
)

// VetContent holds the collected listings and implements scraper.Content.
type VetContent struct {
	sourceURL string
	records   []Record
}

// NewVetContent creates a new VetContent instance.
func NewVetContent(sourceURL string, records []Record) *VetContent {
	return &VetContent{sourceURL: sourceURL, records: records}
}

// Records returns the listings in collection order.
func (c *VetContent) Records() []Record {
	return c.records
}

// ToCSV writes a header row followed by one row per record.
func (c *VetContent) ToCSV() (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(Header()); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range c.records {
		if err := w.Write(r.Values()); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.String(), nil
}

func (c *VetContent) ToJSON() ([]byte, error) {
	type jsonOutput struct {
		Source  string   `json:"source"`
		Count   int      `json:"count"`
		Records []Record `json:"records"`
	}
	records := c.records
	if records == nil {
		records = []Record{}
	}
	return json.MarshalIndent(jsonOutput{Source: c.sourceURL, Count: len(records), Records: records}, "", "  ")
}

func (c *VetContent) ToMarkdown() (string, error) {
	var sb strings.Builder
	sb.WriteString("# Veterinarians\n\n")
	sb.WriteString(fmt.Sprintf("%d listings from %s\n\n", len(c.records), c.sourceURL))

	cols := Header()
	sb.WriteString("| " + strings.Join(cols, " | ") + " |\n")
	sb.WriteString("|" + strings.Repeat("---|", len(cols)) + "\n")
	for _, r := range c.records {
		cells := r.Values()
		for i, v := range cells {
			cells[i] = markdownCell(v)
		}
		sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	return sb.String(), nil
}

func (c *VetContent) ToText() (string, error) {
	var sb strings.Builder
	for i, r := range c.records {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, strings.TrimSpace(r.Name)))
		if r.Clinic != nil {
			sb.WriteString("   " + strings.TrimSpace(*r.Clinic) + "\n")
		}
		sb.WriteString("   " + strings.TrimSpace(r.Address) + "\n")
		sb.WriteString("   " + strings.TrimSpace(r.ReceptionTime) + "\n")
		sb.WriteString(fmt.Sprintf("   rating %d, %s reviews\n\n", r.Rating, formatFloat(r.NumReviews)))
	}
	return sb.String(), nil
}

func (c *VetContent) ToHTML() (string, error) {
	var sb strings.Builder
	sb.WriteString("<table>\n  <tr>")
	for _, col := range Header() {
		sb.WriteString("<th>" + html.EscapeString(col) + "</th>")
	}
	sb.WriteString("</tr>\n")
	for _, r := range c.records {
		sb.WriteString("  <tr>")
		for _, v := range r.Values() {
			sb.WriteString("<td>" + html.EscapeString(v) + "</td>")
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</table>\n")
	return sb.String(), nil
}

func markdownCell(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
