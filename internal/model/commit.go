package model

// Commit represents a single commit as returned by the repository API.
type Commit struct {
	ID              string   `json:"id"`
	DisplayID       string   `json:"display_id"`
	Author          User     `json:"author"`
	AuthorTimestamp int64    `json:"author_timestamp"` // milliseconds since epoch
	Message         string   `json:"message"`
	Parents         []string `json:"parents"`
}

// IsInitial reports whether the commit has no parents.
func (c Commit) IsInitial() bool {
	return len(c.Parents) == 0
}

// IsMerge reports whether the commit has more than one parent.
func (c Commit) IsMerge() bool {
	return len(c.Parents) > 1
}

// FileChange represents a single file touched by a commit diff.
type FileChange struct {
	Path          string
	Type          string // ADD, MODIFY, DELETE, MOVE, COPY
	SrcExecutable bool
	Executable    bool
}

// SegmentType defines the kind of lines a diff segment carries.
type SegmentType string

const (
	SegmentAdded   SegmentType = "ADDED"
	SegmentRemoved SegmentType = "REMOVED"
	SegmentContext SegmentType = "CONTEXT"
)

// Diff represents the hunked diff of a single file between two commits.
type Diff struct {
	Source      string
	Destination string
	Hunks       []Hunk
}

// Hunk is a contiguous region of a diff.
type Hunk struct {
	Segments []Segment
}

// Segment is an ordered run of lines of one type inside a hunk.
type Segment struct {
	Type  SegmentType
	Lines []string
}
