package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/preflop-tools/gtocoach/gto"
	"github.com/preflop-tools/gtocoach/internal/display"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Chart    string           `short:"c" type:"path" help:"Path to an HCL chart file (defaults to the embedded chart)"`
	LogLevel string           `default:"info" enum:"debug,info,warn,error" help:"Log level"`

	Analyze   AnalyzeCmd   `cmd:"" help:"Look up the GTO action for a hand"`
	Validate  ValidateCmd  `cmd:"" help:"Check a proposed action against the chart"`
	Compare   CompareCmd   `cmd:"" help:"Compare one hand across all positions"`
	Ranges    RangesCmd    `cmd:"" help:"Show the range grid for a position and scenario"`
	Scenarios ScenariosCmd `cmd:"" help:"List chart coverage per position"`
	Drill     DrillCmd     `cmd:"" help:"Run an interactive training session"`
	Check     CheckCmd     `cmd:"" help:"Validate a chart file"`
	Export    ExportCmd    `cmd:"" help:"Dump the parsed chart"`
}

// Context carries the shared application state into command Run methods.
type Context struct {
	Logger   *log.Logger
	Analyzer *gto.Analyzer
	Styles   *display.Styles
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("gtocoach"),
		kong.Description("Preflop GTO chart lookup and training tool"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	logger := setupLogger(cli.LogLevel)

	chart, err := loadChart(cli.Chart)
	if err != nil {
		// A malformed chart is fatal: the analyzer cannot run correctly
		// against a partially parsed chart.
		logger.Fatal("chart load failed", "err", err)
	}
	logger.Debug("chart loaded", "name", chart.Name, "ranges", len(chart.Keys()))

	appCtx := &Context{
		Logger:   logger,
		Analyzer: gto.NewAnalyzer(chart),
		Styles:   display.NewStyles(),
	}
	err = ctx.Run(appCtx)
	ctx.FatalIfErrorf(err)
}

func loadChart(path string) (*gto.Chart, error) {
	if path == "" {
		return gto.DefaultChart()
	}
	return gto.LoadChartFile(path)
}

func setupLogger(level string) *log.Logger {
	logger := log.New(os.Stderr)
	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}
