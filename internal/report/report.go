package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/maxbolgarin/commitlens/internal/model"
	"github.com/maxbolgarin/erro"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/lang"
	"github.com/maxbolgarin/logze/v2"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	noResultsMessage = "No results to report."
	reportHeader     = "Commit Analysis Report"
	ruleWidth        = 30
	commitIDWidth    = 7
)

// Reporter renders analysis records in the configured format. Rendering is a
// pure transformation of the record list; the Reporter itself carries no
// state between calls.
type Reporter struct {
	cfg Config
	log logze.Logger
}

// New creates a new reporter
func New(cfg Config) (*Reporter, error) {
	if err := cfg.PrepareAndValidate(); err != nil {
		return nil, erro.Wrap(err, "failed to prepare and validate config")
	}

	return &Reporter{
		cfg: cfg,
		log: logze.With("component", "reporter"),
	}, nil
}

// Generate renders records in the configured format.
func (r *Reporter) Generate(records []model.AnalysisRecord) (string, error) {
	r.log.Debug("generating report", "format", string(r.cfg.Format), "records", len(records))

	switch r.cfg.Format {
	case FormatJSON:
		return JSONReport(records, r.cfg.ShowCumulative)
	case FormatTable:
		return TableReport(records)
	default:
		return TextReport(records, r.cfg.ShowCumulative), nil
	}
}

// FormatTimestamp renders a milliseconds-since-epoch timestamp as a local
// human-readable date. A zero timestamp renders as "Unknown date".
func FormatTimestamp(ms int64) string {
	if ms == 0 {
		return "Unknown date"
	}
	return time.UnixMilli(ms).Format("2006-01-02 15:04:05")
}

// TextReport renders a human-readable report. Without cumulative mode it
// prints one block per record followed by a grand-total footer; with
// cumulative mode it prints per-author totals in first-appearance order,
// accumulating every occurrence of an author.
func TextReport(records []model.AnalysisRecord, showCumulative bool) string {
	if len(records) == 0 {
		return noResultsMessage
	}

	var b strings.Builder
	b.WriteString(reportHeader + "\n")
	b.WriteString(strings.Repeat("=", ruleWidth) + "\n\n")

	if showCumulative {
		writeAuthorBreakdown(&b, records)
		return b.String()
	}

	for _, rec := range records {
		fmt.Fprintf(&b, "Commit: %s\n", lang.TruncateString(rec.CommitID, commitIDWidth))
		fmt.Fprintf(&b, "Author: %s\n", rec.Author)
		fmt.Fprintf(&b, "Date: %s\n", FormatTimestamp(rec.Date))
		fmt.Fprintf(&b, "Files Changed: %d\n", rec.FilesChanged)
		fmt.Fprintf(&b, "Lines Added: %d\n", rec.LinesAdded)
		fmt.Fprintf(&b, "Lines Removed: %d\n", rec.LinesRemoved)
		fmt.Fprintf(&b, "Net Change: %d\n", rec.NetChange)
		b.WriteString(strings.Repeat("-", ruleWidth) + "\n\n")
	}

	sum := sumRecords(records)
	fmt.Fprintf(&b, "Total Files Changed: %d\n", sum.files)
	fmt.Fprintf(&b, "Total Lines Added: %d\n", sum.added)
	fmt.Fprintf(&b, "Total Lines Removed: %d\n", sum.removed)
	fmt.Fprintf(&b, "Total Net Change: %d\n", sum.net)

	return b.String()
}

// JSONReport renders a machine-readable report: a summary object plus the
// commits array. With cumulative mode each commit is annotated, in input
// order, with running totals up to and including that commit. Empty input
// yields a single-key error object.
func JSONReport(records []model.AnalysisRecord, showCumulative bool) (string, error) {
	if len(records) == 0 {
		out, err := json.Marshal(map[string]string{"error": noResultsMessage})
		if err != nil {
			return "", errm.Wrap(err, "marshal empty report")
		}
		return string(out), nil
	}

	sum := sumRecords(records)
	payload := reportJSON{
		Summary: summaryJSON{
			TotalCommits:      len(records),
			TotalFilesChanged: sum.files,
			TotalLinesAdded:   sum.added,
			TotalLinesRemoved: sum.removed,
			TotalNetChange:    sum.net,
		},
	}

	if showCumulative {
		annotated := make([]cumulativeRecordJSON, 0, len(records))
		var running totals
		for _, rec := range records {
			running.add(rec)
			annotated = append(annotated, cumulativeRecordJSON{
				AnalysisRecord:         rec,
				CumulativeFilesChanged: running.files,
				CumulativeLinesAdded:   running.added,
				CumulativeLinesRemoved: running.removed,
				CumulativeNetChange:    running.net,
			})
		}
		payload.Commits = annotated
	} else {
		payload.Commits = records
	}

	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", errm.Wrap(err, "marshal report")
	}
	return string(out), nil
}

// TableReport renders the records as an aligned table with a totals row.
func TableReport(records []model.AnalysisRecord) (string, error) {
	if len(records) == 0 {
		return noResultsMessage, nil
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.Header([]string{"Commit", "Author", "Date", "Files", "Added", "Removed", "Net"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, rec := range records {
		data = append(data, []string{
			lang.TruncateString(rec.CommitID, commitIDWidth),
			rec.Author,
			FormatTimestamp(rec.Date),
			strconv.Itoa(rec.FilesChanged),
			strconv.Itoa(rec.LinesAdded),
			strconv.Itoa(rec.LinesRemoved),
			strconv.Itoa(rec.NetChange),
		})
	}

	sum := sumRecords(records)
	data = append(data, []string{
		"Total", "", "",
		strconv.Itoa(sum.files),
		strconv.Itoa(sum.added),
		strconv.Itoa(sum.removed),
		strconv.Itoa(sum.net),
	})

	if err := table.Bulk(data); err != nil {
		return "", errm.Wrap(err, "fill table")
	}
	if err := table.Render(); err != nil {
		return "", errm.Wrap(err, "render table")
	}

	return buf.String(), nil
}

func writeAuthorBreakdown(b *strings.Builder, records []model.AnalysisRecord) {
	perAuthor := make(map[string]*totals)
	var order []string

	for _, rec := range records {
		sum, ok := perAuthor[rec.Author]
		if !ok {
			sum = &totals{}
			perAuthor[rec.Author] = sum
			order = append(order, rec.Author)
		}
		sum.add(rec)
	}

	for _, author := range order {
		sum := perAuthor[author]
		fmt.Fprintf(b, "Author: %s\n", author)
		fmt.Fprintf(b, "Files Changed: %d\n", sum.files)
		fmt.Fprintf(b, "Lines Added: %d\n", sum.added)
		fmt.Fprintf(b, "Lines Removed: %d\n", sum.removed)
		fmt.Fprintf(b, "Net Change: %d\n", sum.net)
		b.WriteString(strings.Repeat("-", ruleWidth) + "\n\n")
	}
}

type totals struct {
	files, added, removed, net int
}

func (t *totals) add(rec model.AnalysisRecord) {
	t.files += rec.FilesChanged
	t.added += rec.LinesAdded
	t.removed += rec.LinesRemoved
	t.net += rec.NetChange
}

func sumRecords(records []model.AnalysisRecord) totals {
	var sum totals
	for _, rec := range records {
		sum.add(rec)
	}
	return sum
}

type reportJSON struct {
	Summary summaryJSON `json:"summary"`
	Commits any         `json:"commits"`
}

type summaryJSON struct {
	TotalCommits      int `json:"total_commits"`
	TotalFilesChanged int `json:"total_files_changed"`
	TotalLinesAdded   int `json:"total_lines_added"`
	TotalLinesRemoved int `json:"total_lines_removed"`
	TotalNetChange    int `json:"total_net_change"`
}

type cumulativeRecordJSON struct {
	model.AnalysisRecord
	CumulativeFilesChanged int `json:"cumulative_files_changed"`
	CumulativeLinesAdded   int `json:"cumulative_lines_added"`
	CumulativeLinesRemoved int `json:"cumulative_lines_removed"`
	CumulativeNetChange    int `json:"cumulative_net_change"`
}
