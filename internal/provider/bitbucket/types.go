package bitbucket

import "github.com/maxbolgarin/commitlens/internal/model"

// Bitbucket Server REST 1.0 structures

type commitsPage struct {
	Values        []bitbucketCommit `json:"values"`
	IsLastPage    bool              `json:"isLastPage"`
	NextPageStart int               `json:"nextPageStart"`
}

type changesPage struct {
	Values        []bitbucketChange `json:"values"`
	IsLastPage    bool              `json:"isLastPage"`
	NextPageStart int               `json:"nextPageStart"`
}

type bitbucketCommit struct {
	ID        string `json:"id"`
	DisplayID string `json:"displayId"`
	Author    struct {
		Name         string `json:"name"`
		EmailAddress string `json:"emailAddress"`
	} `json:"author"`
	AuthorTimestamp int64  `json:"authorTimestamp"`
	Message         string `json:"message"`
	Parents         []struct {
		ID string `json:"id"`
	} `json:"parents"`
}

func (c bitbucketCommit) toModel() model.Commit {
	parents := make([]string, 0, len(c.Parents))
	for _, parent := range c.Parents {
		parents = append(parents, parent.ID)
	}

	return model.Commit{
		ID:        c.ID,
		DisplayID: c.DisplayID,
		Author: model.User{
			Name:  c.Author.Name,
			Email: c.Author.EmailAddress,
		},
		AuthorTimestamp: c.AuthorTimestamp,
		Message:         c.Message,
		Parents:         parents,
	}
}

type bitbucketChange struct {
	Path struct {
		ToString string `json:"toString"`
	} `json:"path"`
	Type          string `json:"type"`
	SrcExecutable bool   `json:"srcExecutable"`
	Executable    bool   `json:"executable"`
}

func (c bitbucketChange) toModel() model.FileChange {
	return model.FileChange{
		Path:          c.Path.ToString,
		Type:          c.Type,
		SrcExecutable: c.SrcExecutable,
		Executable:    c.Executable,
	}
}

type diffResponse struct {
	Diffs []struct {
		Source *struct {
			ToString string `json:"toString"`
		} `json:"source"`
		Destination *struct {
			ToString string `json:"toString"`
		} `json:"destination"`
		Hunks []struct {
			Segments []struct {
				Type  string `json:"type"`
				Lines []struct {
					Line string `json:"line"`
				} `json:"lines"`
			} `json:"segments"`
		} `json:"hunks"`
	} `json:"diffs"`
}

func (r diffResponse) toModel() []model.Diff {
	diffs := make([]model.Diff, 0, len(r.Diffs))
	for _, rawDiff := range r.Diffs {
		diff := model.Diff{}
		if rawDiff.Source != nil {
			diff.Source = rawDiff.Source.ToString
		}
		if rawDiff.Destination != nil {
			diff.Destination = rawDiff.Destination.ToString
		}

		for _, rawHunk := range rawDiff.Hunks {
			hunk := model.Hunk{}
			for _, rawSegment := range rawHunk.Segments {
				segment := model.Segment{
					Type:  model.SegmentType(rawSegment.Type),
					Lines: make([]string, 0, len(rawSegment.Lines)),
				}
				for _, line := range rawSegment.Lines {
					segment.Lines = append(segment.Lines, line.Line)
				}
				hunk.Segments = append(hunk.Segments, segment)
			}
			diff.Hunks = append(diff.Hunks, hunk)
		}

		diffs = append(diffs, diff)
	}
	return diffs
}
