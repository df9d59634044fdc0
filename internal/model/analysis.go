package model

// AnalysisRecord holds the diff statistics computed for one significant
// commit. Records are created once by the analyzer and never mutated
// afterwards; NetChange always equals LinesAdded - LinesRemoved.
type AnalysisRecord struct {
	CommitID     string `json:"analyzed_commit"`
	Author       string `json:"author"`
	Date         int64  `json:"date"` // milliseconds since epoch, 0 if unknown
	FilesChanged int    `json:"files_changed"`
	LinesAdded   int    `json:"lines_added"`
	LinesRemoved int    `json:"lines_removed"`
	NetChange    int    `json:"net_change"`
}

// UnknownAuthor is the sentinel used when the API returns no author name.
const UnknownAuthor = "Unknown"
