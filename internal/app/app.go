package app

import (
	"context"
	"fmt"
	"os"

	"github.com/maxbolgarin/abstract"
	"github.com/maxbolgarin/commitlens/internal/analyzer"
	"github.com/maxbolgarin/commitlens/internal/config"
	"github.com/maxbolgarin/commitlens/internal/model/interfaces"
	"github.com/maxbolgarin/commitlens/internal/provider"
	"github.com/maxbolgarin/commitlens/internal/report"
	"github.com/maxbolgarin/contem"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"
)

// CommitLens is the main service that orchestrates all components
type CommitLens struct {
	provider interfaces.RepositoryProvider
	analyzer *analyzer.Analyzer
	reporter *report.Reporter

	cfg config.Config
	log logze.Logger
}

// LoadConfig loads the application configuration
func LoadConfig(path string) (config.Config, error) {
	return config.Load(path)
}

// New creates a new commit analysis service
func New(ctx contem.Context, cfg config.Config) (*CommitLens, error) {
	service := &CommitLens{
		cfg: cfg,
		log: logze.With("component", "app"),
	}

	if err := service.init(ctx, cfg); err != nil {
		return nil, errm.Wrap(err, "failed to initialize service")
	}

	return service, nil
}

// Run analyzes the configured branch and writes the rendered report to the
// configured output file or stdout.
func (s *CommitLens) Run(ctx context.Context) error {
	timer := abstract.StartTimer()

	records, err := s.analyzer.AnalyzeBranch(ctx, s.cfg.Branch)
	if err != nil {
		return errm.Wrap(err, "failed to analyze branch")
	}

	out, err := s.reporter.Generate(records)
	if err != nil {
		return errm.Wrap(err, "failed to generate report")
	}

	if err := s.writeReport(out); err != nil {
		return errm.Wrap(err, "failed to write report")
	}

	s.log.Info("analysis finished",
		"branch", s.cfg.Branch,
		"commits", len(records),
		"elapsed_time", timer.ElapsedTime().String(),
	)
	return nil
}

func (s *CommitLens) init(ctx contem.Context, cfg config.Config) (err error) {
	if err := cfg.Validate(); err != nil {
		return errm.Wrap(err, "failed to validate config")
	}

	s.provider, err = provider.NewProvider(cfg.Provider)
	if err != nil {
		return errm.Wrap(err, "failed to create repository provider")
	}

	s.analyzer, err = analyzer.New(cfg.Analyzer, s.provider)
	if err != nil {
		return errm.Wrap(err, "failed to create analyzer")
	}
	ctx.Add(s.analyzer.Stop)

	s.reporter, err = report.New(cfg.Report)
	if err != nil {
		return errm.Wrap(err, "failed to create reporter")
	}

	return nil
}

func (s *CommitLens) writeReport(out string) error {
	if path := s.cfg.Report.OutputPath; path != "" {
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			return errm.Wrap(err, "write report file")
		}
		s.log.Info("report written", "path", path)
		return nil
	}

	fmt.Println(out)
	return nil
}
