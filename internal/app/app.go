package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gymcli/internal/config"
	"gymcli/internal/files"
	"gymcli/internal/infrastructure"
	"gymcli/internal/validation"
)

// App holds the shared runtime of one extraction binary run.
type App struct {
	Name    string
	Config  *config.Config
	Paths   *config.Paths
	Logger  *slog.Logger
	Tracing *infrastructure.OTelProviders

	traceFile *os.File
}

// New bootstraps an extraction binary named name ("events", "individual",
// "team"). The name selects the log and trace file names.
func New(name string) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	paths, err := config.GetPaths()
	if err != nil {
		return nil, fmt.Errorf("resolve paths: %w", err)
	}
	paths.ApplyOverrides(cfg.Paths)
	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("create directories: %w", err)
	}

	logCfg := cfg.Logging
	if logCfg.FilePath == "" {
		logCfg.FilePath = paths.GetLogPath(name + ".log")
	}
	logger, err := infrastructure.InitializeLogger(logCfg)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}
	logger = logger.With(slog.String("binary", name))

	a := &App{
		Name:   name,
		Config: cfg,
		Paths:  paths,
		Logger: logger,
	}

	// Spans go to a trace file next to the log, never to stdout, which
	// is reserved for operator-facing summaries.
	otelCfg := infrastructure.DefaultOTelConfig()
	traceFile, err := os.Create(paths.GetLogPath(name + "_trace.jsonl"))
	if err != nil {
		logger.Warn("Trace file unavailable, tracing disabled",
			slog.String("error", err.Error()))
		otelCfg.Exporter = "none"
	} else {
		a.traceFile = traceFile
		otelCfg.Writer = traceFile
	}

	tracing, err := infrastructure.InitializeOTel(otelCfg, logger)
	if err != nil {
		logger.Warn("Tracing initialization failed, continuing without",
			slog.String("error", err.Error()))
	} else {
		a.Tracing = tracing
	}

	logger.Info("Extraction run starting",
		slog.String("app", config.AppName),
		slog.String("version", config.AppVersion),
		slog.String("executable_dir", paths.ExecutableDir))
	return a, nil
}

// Shutdown flushes tracing and closes the log and trace files.
func (a *App) Shutdown(ctx context.Context) {
	if err := a.Tracing.Shutdown(ctx); err != nil {
		a.Logger.Warn("Tracing shutdown failed", slog.String("error", err.Error()))
	}
	if a.traceFile != nil {
		a.traceFile.Close()
	}
	infrastructure.CloseLogFile()
}

// ResolveInput decides which PDF to read. An explicit flag value wins;
// otherwise the conventional file name in the downloads dir; if that is
// absent too, the newest PDF in the downloads dir. The chosen file is
// validated before it is returned.
func (a *App) ResolveInput(flagValue, defaultName string) (string, error) {
	fv := validation.NewFileValidator(a.Logger)

	if flagValue != "" {
		return flagValue, fv.ValidatePDFFile(flagValue)
	}

	path := a.Paths.GetDownloadPath(defaultName)
	if config.FileExists(path) {
		return path, fv.ValidatePDFFile(path)
	}

	pdfs, err := files.NewDiscovery(a.Paths.ExecutableDir).FindPDFFiles(a.Paths.DownloadsDir)
	if err != nil {
		return "", fmt.Errorf("scan downloads dir: %w", err)
	}
	latest, ok := files.GetLatestFile(pdfs)
	if !ok {
		return "", fmt.Errorf("no input PDF: %s not found and %s holds no PDFs",
			path, a.Paths.DownloadsDir)
	}

	a.Logger.Info("Falling back to newest downloaded PDF",
		slog.String("file", latest.Path))
	return latest.Path, fv.ValidatePDFFile(latest.Path)
}

// ResolveOutput decides where a result file goes. An explicit flag value
// wins; otherwise the conventional name in the reports dir.
func (a *App) ResolveOutput(flagValue, defaultName string) string {
	if flagValue != "" {
		if filepath.IsAbs(flagValue) {
			return flagValue
		}
		abs, err := filepath.Abs(flagValue)
		if err == nil {
			return abs
		}
		return flagValue
	}
	return a.Paths.GetReportPath(defaultName)
}
