package analyzer

import (
	"context"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/maxbolgarin/commitlens/internal/model"
	"github.com/maxbolgarin/commitlens/internal/model/interfaces"
	"github.com/maxbolgarin/erro"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/lang"
	"github.com/maxbolgarin/logze/v2"
	"github.com/panjf2000/ants/v2"
)

// Analyzer decides which commits matter and quantifies each one's impact.
// It restricts analysis to initial and merge commits, which gives a coarse
// integration-history view: each record answers "how much code changed at
// this integration point".
type Analyzer struct {
	provider interfaces.RepositoryProvider
	pool     *ants.Pool

	cfg Config
	log logze.Logger
}

// New creates a new analyzer
func New(cfg Config, provider interfaces.RepositoryProvider) (*Analyzer, error) {
	if err := cfg.PrepareAndValidate(); err != nil {
		return nil, erro.Wrap(err, "failed to prepare and validate config")
	}

	pool, err := ants.NewPool(cfg.Concurrency)
	if err != nil {
		return nil, erro.Wrap(err, "failed to create ants pool")
	}

	return &Analyzer{
		provider: provider,
		pool:     pool,
		cfg:      cfg,
		log:      logze.With("component", "analyzer"),
	}, nil
}

// Stop releases the worker pool.
func (a *Analyzer) Stop(_ context.Context) error {
	a.pool.Release()
	return nil
}

// FilterSignificant keeps only initial and merge commits, preserving the
// relative order of the input.
func (a *Analyzer) FilterSignificant(commits []model.Commit) []model.Commit {
	var filtered []model.Commit
	for _, commit := range commits {
		if commit.IsInitial() || commit.IsMerge() {
			filtered = append(filtered, commit)
		}
	}

	a.log.Info("filtered significant commits", "significant", len(filtered), "total", len(commits))
	return filtered
}

// ShouldIncludeFile reports whether a file's line changes are counted. Every
// file is included when no exclusions are configured.
func (a *Analyzer) ShouldIncludeFile(filePath string) bool {
	if len(a.cfg.ExcludedExtensions) == 0 {
		return true
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	return !slices.Contains(a.cfg.ExcludedExtensions, ext)
}

// AnalyzeCommit computes the diff statistics of one commit against a
// baseline. The baseline is previousID when given, else the commit's first
// parent, else the commit's inherent baseline (initial-commit case).
// FilesChanged counts every entry in the change list; line counts cover
// included files only.
func (a *Analyzer) AnalyzeCommit(ctx context.Context, commit model.Commit, previousID string) (model.AnalysisRecord, error) {
	baseline := previousID
	if baseline == "" && !commit.IsInitial() {
		baseline = commit.Parents[0]
		a.log.Debug("using parent as baseline", "commit", lang.TruncateString(commit.ID, 7), "baseline", lang.TruncateString(baseline, 7))
	}

	changes, err := a.provider.GetCommitChanges(ctx, commit.ID, baseline)
	if err != nil {
		return model.AnalysisRecord{}, errm.Wrap(err, "get commit changes")
	}

	added, removed, err := a.countLines(ctx, commit.ID, baseline, changes)
	if err != nil {
		return model.AnalysisRecord{}, errm.Wrap(err, "count changed lines")
	}

	record := model.AnalysisRecord{
		CommitID:     commit.ID,
		Author:       lang.Check(commit.Author.Name, model.UnknownAuthor),
		Date:         commit.AuthorTimestamp,
		FilesChanged: len(changes),
		LinesAdded:   added,
		LinesRemoved: removed,
		NetChange:    added - removed,
	}

	a.log.Info("analyzed commit",
		"commit", lang.TruncateString(commit.ID, 7),
		"files_changed", record.FilesChanged,
		"lines_added", record.LinesAdded,
		"lines_removed", record.LinesRemoved,
		"net_change", record.NetChange,
	)

	return record, nil
}

// AnalyzeBranch analyzes every significant commit reachable from a branch,
// oldest-first. The commit list arrives newest-first from the server, so the
// significant subset is walked in reverse; each iteration's baseline is the
// previously analyzed significant commit, carried as fold state. Returns an
// empty result without error when the branch has no commits or no
// significant commits.
func (a *Analyzer) AnalyzeBranch(ctx context.Context, branch string) ([]model.AnalysisRecord, error) {
	log := a.log.WithFields("branch", branch)
	log.Info("starting branch analysis")

	commits, err := a.provider.GetCommits(ctx, branch)
	if err != nil {
		return nil, errm.Wrap(err, "get commits")
	}
	if len(commits) == 0 {
		log.Warn("no commits found in branch")
		return nil, nil
	}

	significant := a.FilterSignificant(commits)
	if len(significant) == 0 {
		log.Warn("no significant commits found in branch")
		return nil, nil
	}

	records := make([]model.AnalysisRecord, 0, len(significant))
	previousID := ""

	for i := len(significant) - 1; i >= 0; i-- {
		record, err := a.AnalyzeCommit(ctx, significant[i], previousID)
		if err != nil {
			return nil, errm.Wrap(err, "analyze commit")
		}
		records = append(records, record)
		previousID = significant[i].ID
	}

	log.Info("completed branch analysis", "records", len(records))
	return records, nil
}

// countLines sums added and removed lines across the per-file diffs of all
// included files. Fetches run on the worker pool; the first failure aborts
// the whole count so a commit never reports partial totals.
func (a *Analyzer) countLines(ctx context.Context, currentID, previousID string, changes []model.FileChange) (int, int, error) {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		added    int
		removed  int
		firstErr error
	)

	for _, change := range changes {
		if !a.ShouldIncludeFile(change.Path) {
			a.log.Debug("skipping excluded file", "path", change.Path)
			continue
		}

		path := change.Path
		wg.Add(1)
		err := a.pool.Submit(func() {
			defer wg.Done()

			diffs, err := a.provider.GetFileDiff(ctx, currentID, previousID, path)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			fileAdded, fileRemoved := countSegmentLines(diffs)
			added += fileAdded
			removed += fileRemoved
		})
		if err != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = errm.Wrap(err, "submit diff fetch")
			}
			mu.Unlock()
			break
		}
	}

	wg.Wait()

	if firstErr != nil {
		return 0, 0, firstErr
	}
	return added, removed, nil
}

func countSegmentLines(diffs []model.Diff) (added, removed int) {
	for _, diff := range diffs {
		for _, hunk := range diff.Hunks {
			for _, segment := range hunk.Segments {
				switch segment.Type {
				case model.SegmentAdded:
					added += len(segment.Lines)
				case model.SegmentRemoved:
					removed += len(segment.Lines)
				}
			}
		}
	}
	return added, removed
}
