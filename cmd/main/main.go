package main

import (
	"github.com/alecthomas/kingpin/v2"
	"github.com/maxbolgarin/commitlens/internal/app"
	"github.com/maxbolgarin/commitlens/internal/config"
	"github.com/maxbolgarin/commitlens/internal/report"
	"github.com/maxbolgarin/contem"
	"github.com/maxbolgarin/erro"
	"github.com/maxbolgarin/lang"
	"github.com/maxbolgarin/logze/v2"
)

var (
	Version, Branch, Commit, BuildDate string
)

var (
	configPath = kingpin.Flag("config", "path to config file").Short('c').String()
	branch     = kingpin.Flag("branch", "branch to analyze").Short('b').String()
	format     = kingpin.Flag("format", "report format: text, json or table").Short('f').String()
	output     = kingpin.Flag("output", "write the report to a file instead of stdout").Short('o').String()
	exclude    = kingpin.Flag("exclude", "file extension to exclude from line counts, repeatable").Strings()
	cumulative = kingpin.Flag("cumulative", "show cumulative totals in the report").Bool()
	verbose    = kingpin.Flag("verbose", "enable verbose logging").Short('v').Bool()
)

func main() {
	kingpin.Parse()

	var err error
	ctx := contem.New(contem.WithLogger(logze.DefaultPtr()), contem.Exit(&err))
	defer ctx.Shutdown()

	err = run(ctx)
	if err != nil {
		logze.DefaultPtr().Error("cannot run", "error", err)
	}
}

func run(ctx contem.Context) error {
	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		return erro.Wrap(err, "load config")
	}
	applyFlags(&cfg)

	logze.Init(logze.C().WithConsole().WithLevel(lang.If(*verbose, logze.LevelDebug, logze.LevelInfo)))

	service, err := app.New(ctx, cfg)
	if err != nil {
		return erro.Wrap(err, "new app")
	}

	if err := service.Run(ctx); err != nil {
		return erro.Wrap(err, "run analysis")
	}

	return nil
}

func applyFlags(cfg *config.Config) {
	cfg.Branch = lang.Check(*branch, cfg.Branch)
	cfg.Report.Format = report.Format(lang.Check(*format, string(cfg.Report.Format)))
	cfg.Report.OutputPath = lang.Check(*output, cfg.Report.OutputPath)
	if len(*exclude) > 0 {
		cfg.Analyzer.ExcludedExtensions = *exclude
	}
	if *cumulative {
		cfg.Report.ShowCumulative = true
	}
}
