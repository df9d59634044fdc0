package interfaces

import (
	"context"

	"github.com/maxbolgarin/commitlens/internal/model"
)

// RepositoryProvider defines the read-only operations the analyzer needs from
// a source-control server. Implementations translate these calls into
// paginated REST requests and return fully materialized collections.
type RepositoryProvider interface {
	// GetCommits returns every commit reachable from the branch,
	// newest-first (server-native order).
	GetCommits(ctx context.Context, branch string) ([]model.Commit, error)

	// GetCommitChanges returns the file changes between two commits.
	// An empty previousID diffs against the commit's inherent baseline.
	GetCommitChanges(ctx context.Context, currentID, previousID string) ([]model.FileChange, error)

	// GetFileDiff returns the hunked diff of a single file between two commits.
	GetFileDiff(ctx context.Context, currentID, previousID, filePath string) ([]model.Diff, error)
}
