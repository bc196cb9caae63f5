// package formatter renders build results as a console table and exports them to report files (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/desertthunder/setlistx/internal/shared"
	"github.com/desertthunder/setlistx/internal/tasks"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ReportFormat is the file format of a written report.
type ReportFormat string

const (
	FormatCSV      ReportFormat = "csv"
	FormatMarkdown ReportFormat = "markdown"
	FormatText     ReportFormat = "text"
)

// FormatForPath picks a report format from the file extension. Unknown extensions are plain text.
func FormatForPath(path string) ReportFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".md", ".markdown":
		return FormatMarkdown
	default:
		return FormatText
	}
}

func match(outcome tasks.SongOutcome) string {
	if outcome.Track == nil {
		return ""
	}
	return fmt.Sprintf("%s - %s", outcome.Track.Artist, outcome.Track.Title)
}

func videoID(outcome tasks.SongOutcome) string {
	if outcome.Track == nil {
		return ""
	}
	return outcome.Track.ID
}

func errText(outcome tasks.SongOutcome) string {
	if outcome.Err == nil {
		return ""
	}
	return outcome.Err.Error()
}

// RenderSummary renders one row per song plus a footer with the added count.
func RenderSummary(result *tasks.BuildResult) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Song", "Match", "Status"})

	for i, outcome := range result.Outcomes {
		tw.AppendRow(table.Row{i + 1, outcome.Query, match(outcome), outcome.Status.String()})
	}

	tw.AppendFooter(table.Row{"", "Added", fmt.Sprintf("%d/%d (%.1f%%)", result.Added, result.Attempted, result.SuccessRate()), ""})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, WidthMax: 48},
		{Number: 3, WidthMax: 48},
	})

	return tw.Render()
}

// ExportToCSV converts a BuildResult to CSV with columns: Position, Query, Status, VideoID, Match, Error
func ExportToCSV(result *tasks.BuildResult) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Position", "Query", "Status", "VideoID", "Match", "Error"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i, outcome := range result.Outcomes {
		record := []string{
			strconv.Itoa(i + 1),
			outcome.Query,
			outcome.Status.String(),
			videoID(outcome),
			match(outcome),
			errText(outcome),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a BuildResult to Markdown with a link to the playlist and a list of songs not added
func ExportToMarkdown(result *tasks.BuildResult) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", result.PlaylistName))
	buf.WriteString(fmt.Sprintf("**Playlist**: [%s](%s)\n", result.PlaylistID, shared.PlaylistURL(result.PlaylistID)))
	buf.WriteString(fmt.Sprintf("**Songs added**: %d/%d (%.1f%%)\n\n", result.Added, result.Attempted, result.SuccessRate()))

	buf.WriteString("## Songs\n\n")
	for i, outcome := range result.Outcomes {
		line := fmt.Sprintf("%d. %s", i+1, outcome.Query)
		if m := match(outcome); m != "" && outcome.Status == tasks.SongAdded {
			line += fmt.Sprintf(" → %s", m)
		}
		buf.WriteString(fmt.Sprintf("%s `%s`\n", line, outcome.Status))
	}

	if len(result.Failed) > 0 {
		buf.WriteString("\n## Not added\n\n")
		for _, query := range result.Failed {
			buf.WriteString(fmt.Sprintf("- %s\n", query))
		}
	}

	return buf.Bytes(), nil
}

// ExportToText converts a BuildResult to plain text
func ExportToText(result *tasks.BuildResult) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Playlist: %s\n", result.PlaylistName))
	buf.WriteString(fmt.Sprintf("URL: %s\n", shared.PlaylistURL(result.PlaylistID)))
	buf.WriteString(fmt.Sprintf("Songs added: %d/%d\n\n", result.Added, result.Attempted))

	for i, outcome := range result.Outcomes {
		buf.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, outcome.Status, outcome.Query))
	}

	if len(result.Failed) > 0 {
		buf.WriteString(fmt.Sprintf("\nFailed to add %d songs:\n", len(result.Failed)))
		for _, query := range result.Failed {
			buf.WriteString(fmt.Sprintf("  - %s\n", query))
		}
	}

	return buf.Bytes(), nil
}

// WriteReport exports result to path in the format implied by its extension.
func WriteReport(result *tasks.BuildResult, path string) (ReportFormat, error) {
	if path == "" {
		return "", fmt.Errorf("%w: report path is empty", shared.ErrMissingArgument)
	}

	format := FormatForPath(path)

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatCSV:
		data, err = ExportToCSV(result)
	case FormatMarkdown:
		data, err = ExportToMarkdown(result)
	default:
		data, err = ExportToText(result)
	}
	if err != nil {
		return format, fmt.Errorf("failed to generate %s report: %w", format, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return format, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return format, fmt.Errorf("failed to write report file: %w", err)
	}

	return format, nil
}
