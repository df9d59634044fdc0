package report_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/maxbolgarin/commitlens/internal/model"
	"github.com/maxbolgarin/commitlens/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []model.AnalysisRecord {
	return []model.AnalysisRecord{
		{
			CommitID:     "aaaaaaa1111",
			Author:       "Alice",
			Date:         1700000000000,
			FilesChanged: 2,
			LinesAdded:   10,
			LinesRemoved: 3,
			NetChange:    7,
		},
		{
			CommitID:     "bbbbbbb2222",
			Author:       "Bob",
			Date:         1700100000000,
			FilesChanged: 1,
			LinesAdded:   1,
			LinesRemoved: 5,
			NetChange:    -4,
		},
		{
			CommitID:     "ccccccc3333",
			Author:       "Alice",
			Date:         1700200000000,
			FilesChanged: 3,
			LinesAdded:   6,
			LinesRemoved: 2,
			NetChange:    4,
		},
	}
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "Unknown date", report.FormatTimestamp(0))

	want := time.UnixMilli(1700000000000).Format("2006-01-02 15:04:05")
	got := report.FormatTimestamp(1700000000000)
	assert.Equal(t, want, got)
	assert.NotEqual(t, "Unknown date", got)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, got)
}

func TestTextReport(t *testing.T) {
	out := report.TextReport(sampleRecords(), false)

	assert.Contains(t, out, "Commit Analysis Report")
	assert.Contains(t, out, "Commit: aaaaaaa")
	assert.Contains(t, out, "Commit: bbbbbbb")
	assert.Contains(t, out, "Author: Alice")
	assert.Contains(t, out, "Net Change: -4")

	assert.Contains(t, out, "Total Files Changed: 6")
	assert.Contains(t, out, "Total Lines Added: 17")
	assert.Contains(t, out, "Total Lines Removed: 10")
	assert.Contains(t, out, "Total Net Change: 7")
}

func TestTextReport_CumulativeAccumulatesRepeatAuthors(t *testing.T) {
	out := report.TextReport(sampleRecords(), true)

	// Alice appears twice: her totals cover both records, not just the
	// first occurrence.
	assert.Contains(t, out, "Author: Alice\nFiles Changed: 5\nLines Added: 16\nLines Removed: 5\nNet Change: 11")
	assert.Contains(t, out, "Author: Bob\nFiles Changed: 1\nLines Added: 1\nLines Removed: 5\nNet Change: -4")
}

func TestTextReport_Empty(t *testing.T) {
	assert.Equal(t, "No results to report.", report.TextReport(nil, false))
	assert.Equal(t, "No results to report.", report.TextReport(nil, true))
}

func TestJSONReport_Empty(t *testing.T) {
	out, err := report.JSONReport(nil, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error": "No results to report."}`, out)
}

type reportPayload struct {
	Summary struct {
		TotalCommits      int `json:"total_commits"`
		TotalFilesChanged int `json:"total_files_changed"`
		TotalLinesAdded   int `json:"total_lines_added"`
		TotalLinesRemoved int `json:"total_lines_removed"`
		TotalNetChange    int `json:"total_net_change"`
	} `json:"summary"`
	Commits []struct {
		AnalyzedCommit         string `json:"analyzed_commit"`
		Author                 string `json:"author"`
		Date                   int64  `json:"date"`
		FilesChanged           int    `json:"files_changed"`
		LinesAdded             int    `json:"lines_added"`
		LinesRemoved           int    `json:"lines_removed"`
		NetChange              int    `json:"net_change"`
		CumulativeFilesChanged int    `json:"cumulative_files_changed"`
		CumulativeLinesAdded   int    `json:"cumulative_lines_added"`
		CumulativeLinesRemoved int    `json:"cumulative_lines_removed"`
		CumulativeNetChange    int    `json:"cumulative_net_change"`
	} `json:"commits"`
}

func TestJSONReport(t *testing.T) {
	records := sampleRecords()

	out, err := report.JSONReport(records, false)
	require.NoError(t, err)

	var payload reportPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))

	assert.Equal(t, 3, payload.Summary.TotalCommits)
	assert.Equal(t, 6, payload.Summary.TotalFilesChanged)
	assert.Equal(t, 17, payload.Summary.TotalLinesAdded)
	assert.Equal(t, 10, payload.Summary.TotalLinesRemoved)
	assert.Equal(t, 7, payload.Summary.TotalNetChange)

	require.Len(t, payload.Commits, 3)
	assert.Equal(t, "aaaaaaa1111", payload.Commits[0].AnalyzedCommit)
	assert.Equal(t, -4, payload.Commits[1].NetChange)

	// Without cumulative mode the annotations are absent.
	assert.Zero(t, payload.Commits[2].CumulativeLinesAdded)
}

func TestJSONReport_CumulativeMatchesSummary(t *testing.T) {
	out, err := report.JSONReport(sampleRecords(), true)
	require.NoError(t, err)

	var payload reportPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Len(t, payload.Commits, 3)

	// Running totals are in input order.
	assert.Equal(t, 2, payload.Commits[0].CumulativeFilesChanged)
	assert.Equal(t, 3, payload.Commits[1].CumulativeFilesChanged)

	// The last commit's cumulative fields equal the summary totals.
	last := payload.Commits[2]
	assert.Equal(t, payload.Summary.TotalFilesChanged, last.CumulativeFilesChanged)
	assert.Equal(t, payload.Summary.TotalLinesAdded, last.CumulativeLinesAdded)
	assert.Equal(t, payload.Summary.TotalLinesRemoved, last.CumulativeLinesRemoved)
	assert.Equal(t, payload.Summary.TotalNetChange, last.CumulativeNetChange)
}

func TestTableReport(t *testing.T) {
	out, err := report.TableReport(sampleRecords())
	require.NoError(t, err)

	assert.Contains(t, out, "aaaaaaa")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "Bob")
	assert.Contains(t, out, "Total")

	empty, err := report.TableReport(nil)
	require.NoError(t, err)
	assert.Equal(t, "No results to report.", empty)
}

func TestReporterGenerate(t *testing.T) {
	reporter, err := report.New(report.Config{Format: report.FormatJSON})
	require.NoError(t, err)

	out, err := reporter.Generate(sampleRecords())
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))

	_, err = report.New(report.Config{Format: "yaml"})
	require.Error(t, err)
}
