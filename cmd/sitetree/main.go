package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/sitetree/internal/config"
	"git.home.luguber.info/inful/sitetree/internal/logfields"
	"git.home.luguber.info/inful/sitetree/internal/preview"
	"git.home.luguber.info/inful/sitetree/internal/render"
	"git.home.luguber.info/inful/sitetree/internal/version"
)

var CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"site.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `help:"Print version information and quit"`

	Build struct {
		Root   string `short:"r" help:"Root content directory (default from config, else \".\")"`
		Output string `short:"o" help:"Output directory for the rendered site (default from config, else \"dist\")"`
	} `cmd:"" default:"withargs" help:"Render the site tree into the output directory"`

	Serve struct {
		Root   string `short:"r" help:"Root content directory"`
		Output string `short:"o" help:"Output directory to build and serve"`
		Port   int    `short:"p" help:"Port to serve the site on" default:"1313"`
	} `cmd:"" help:"Build the site, then serve the output directory locally"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("sitetree"),
		kong.Description("Renders a directory tree of Markdown, HTML templates and assets into a static site."),
		kong.Vars{
			"version": fmt.Sprintf("sitetree %s (commit %s, built %s)",
				version.Version, version.GitCommit, version.BuildTime),
		},
	)

	// Set up logging
	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	switch ctx.Command() {
	case "build":
		if err := runBuild(CLI.Build.Root, CLI.Build.Output); err != nil {
			slog.Error("Build failed", logfields.Error(err))
			os.Exit(1)
		}
	case "serve":
		if err := runServe(); err != nil {
			slog.Error("Serve failed", logfields.Error(err))
			os.Exit(1)
		}
	}
}

func runBuild(rootFlag, outputFlag string) error {
	cfg, err := loadConfig(rootFlag, outputFlag)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	start := time.Now()
	slog.Info("Starting site build",
		logfields.RunID(runID),
		logfields.Root(cfg.Root),
		logfields.Output(cfg.Output))

	pipeline, err := render.New(cfg)
	if err != nil {
		return err
	}
	if err := pipeline.Run(); err != nil {
		return err
	}

	slog.Info("Site build completed",
		logfields.RunID(runID),
		logfields.DurationMS(float64(time.Since(start).Milliseconds())))
	return nil
}

func runServe() error {
	cfg, err := loadConfig(CLI.Serve.Root, CLI.Serve.Output)
	if err != nil {
		return err
	}

	pipeline, err := render.New(cfg)
	if err != nil {
		return err
	}
	if err := pipeline.Run(); err != nil {
		return err
	}

	return preview.Serve(fmt.Sprintf(":%d", CLI.Serve.Port), pipeline.OutputDir())
}

// loadConfig loads the optional config file; non-empty flags win over it.
func loadConfig(rootFlag, outputFlag string) (*config.Config, error) {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return nil, err
	}
	if rootFlag != "" {
		cfg.Root = rootFlag
	}
	if outputFlag != "" {
		cfg.Output = outputFlag
	}
	return cfg, nil
}
