package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/aleister1102/prettydiff/internal/buffer"
	"github.com/aleister1102/prettydiff/internal/config"
	"github.com/aleister1102/prettydiff/internal/differ"
	"github.com/aleister1102/prettydiff/internal/formatter"
	"github.com/aleister1102/prettydiff/internal/logger"
	"github.com/aleister1102/prettydiff/internal/orchestrator"
	"github.com/aleister1102/prettydiff/internal/renderer"
	"github.com/aleister1102/prettydiff/internal/reporter"
	"github.com/rs/zerolog"
)

const (
	exitIdentical = 0
	exitChanged   = 1
	exitError     = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile, zerolog.Nop())
	if err != nil {
		log.Printf("[FATAL] Could not load global config using path '%s': %v", flags.GlobalConfigFile, err)
		return exitError
	}
	applyFlagOverrides(gCfg, flags)

	if err := config.ValidateConfig(gCfg); err != nil {
		log.Printf("[FATAL] Configuration validation failed: %v", err)
		return exitError
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Printf("[FATAL] Could not initialize logger: %v", err)
		return exitError
	}

	language, err := formatter.ParseLanguage(flags.Language)
	if err != nil {
		zLogger.Error().Err(err).Str("lang", flags.Language).Msg("Unsupported language")
		return exitError
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch flags.Mode {
	case "format":
		return runFormat(flags, gCfg, language, zLogger)
	case "compare":
		return runCompare(ctx, flags, gCfg, language, zLogger)
	default:
		zLogger.Error().Str("mode", flags.Mode).Msg("Unknown mode, expected format or compare")
		return exitError
	}
}

// applyFlagOverrides lets command-line flags take precedence over the config file
func applyFlagOverrides(gCfg *config.GlobalConfig, flags AppFlags) {
	if flags.SQLDialect != "" {
		gCfg.FormatConfig.SQLDialect = flags.SQLDialect
	}
	if flags.ViewMode != "" {
		gCfg.DiffConfig.ViewMode = flags.ViewMode
	}
	if flags.Theme != "" {
		gCfg.DiffConfig.Theme = flags.Theme
	}
	if flags.ReportDir != "" {
		gCfg.ReporterConfig.OutputDir = flags.ReportDir
	}
}

// newDispatcher builds the format dispatcher from the loaded configuration
func newDispatcher(gCfg *config.GlobalConfig, zLogger zerolog.Logger) (*formatter.Dispatcher, error) {
	formatCfg := formatter.DefaultConfig()
	formatCfg.IndentSize = gCfg.FormatConfig.IndentSize
	formatCfg.MaxPreserveNewlines = gCfg.FormatConfig.MaxPreserveNewlines
	formatCfg.WrapLineLength = gCfg.FormatConfig.WrapLineLength

	return formatter.NewDispatcherBuilder(zLogger).
		WithConfig(formatCfg).
		Build()
}

// runFormat formats a single input file and writes the result to stdout
func runFormat(flags AppFlags, gCfg *config.GlobalConfig, language formatter.Language, zLogger zerolog.Logger) int {
	if len(flags.InputFiles) != 1 {
		zLogger.Error().Int("count", len(flags.InputFiles)).Msg("Format mode requires exactly one -in file")
		return exitError
	}

	content, err := os.ReadFile(flags.InputFiles[0])
	if err != nil {
		zLogger.Error().Err(err).Str("file", flags.InputFiles[0]).Msg("Failed to read input file")
		return exitError
	}

	dispatcher, err := newDispatcher(gCfg, zLogger)
	if err != nil {
		zLogger.Error().Err(err).Msg("Failed to initialize format dispatcher")
		return exitError
	}

	formatted, err := dispatcher.Format(string(content), language, formatter.Options{
		SQLDialect: gCfg.FormatConfig.SQLDialect,
	})
	if err != nil {
		zLogger.Error().Err(err).Str("file", flags.InputFiles[0]).Msg("Formatting failed")
		return exitError
	}

	if flags.OutputFile != "" {
		if err := os.WriteFile(flags.OutputFile, []byte(formatted), 0o644); err != nil {
			zLogger.Error().Err(err).Str("file", flags.OutputFile).Msg("Failed to write output file")
			return exitError
		}
		return exitIdentical
	}

	fmt.Print(formatted)
	return exitIdentical
}

// runCompare loads the input files into buffer slots, runs one comparison
// cycle and writes the HTML report
func runCompare(ctx context.Context, flags AppFlags, gCfg *config.GlobalConfig, language formatter.Language, zLogger zerolog.Logger) int {
	if len(flags.InputFiles) < 2 || len(flags.InputFiles) > len(buffer.Slots()) {
		zLogger.Error().Int("count", len(flags.InputFiles)).Msg("Compare mode requires two or three -in files")
		return exitError
	}

	session, err := loadSession(flags)
	if err != nil {
		zLogger.Error().Err(err).Msg("Failed to load input buffers")
		return exitError
	}

	viewMode, err := differ.ParseViewMode(gCfg.DiffConfig.ViewMode)
	if err != nil {
		zLogger.Error().Err(err).Msg("Invalid view mode")
		return exitError
	}
	scheme, err := renderer.ParseColorScheme(gCfg.DiffConfig.Theme)
	if err != nil {
		zLogger.Error().Err(err).Msg("Invalid theme")
		return exitError
	}

	dispatcher, err := newDispatcher(gCfg, zLogger)
	if err != nil {
		zLogger.Error().Err(err).Msg("Failed to initialize format dispatcher")
		return exitError
	}

	htmlRenderer, err := renderer.NewHTMLRenderer(zLogger, renderer.RenderConfig{
		Language:  language.String(),
		Scheme:    scheme,
		Highlight: true,
	})
	if err != nil {
		zLogger.Error().Err(err).Msg("Failed to initialize diff renderer")
		return exitError
	}

	engine, err := differ.NewEngineBuilder(zLogger).
		WithDiffConfig(differ.DiffConfig{ContextLines: gCfg.DiffConfig.ContextLines}).
		WithPatchRenderer(htmlRenderer).
		Build()
	if err != nil {
		zLogger.Error().Err(err).Msg("Failed to initialize diff engine")
		return exitError
	}

	orch, err := orchestrator.NewOrchestratorBuilder(zLogger).
		WithDispatcher(dispatcher).
		WithEngine(engine).
		Build()
	if err != nil {
		zLogger.Error().Err(err).Msg("Failed to initialize orchestrator")
		return exitError
	}

	summary, err := orch.RunComparison(ctx, session, orchestrator.CompareOptions{
		Language:   language,
		SQLDialect: gCfg.FormatConfig.SQLDialect,
		ViewMode:   viewMode,
	})
	if err != nil {
		zLogger.Error().Err(err).Msg("Comparison failed")
		return exitError
	}

	htmlReporter, err := reporter.NewHTMLReporter(gCfg.ReporterConfig, zLogger)
	if err != nil {
		zLogger.Error().Err(err).Msg("Failed to initialize HTML reporter")
		return exitError
	}

	reportPath, err := htmlReporter.GenerateReport(summary, reporter.ReportMeta{
		Language:    language.String(),
		ViewMode:    viewMode.String(),
		Theme:       scheme.String(),
		GeneratedAt: time.Now(),
	})
	if err != nil {
		zLogger.Error().Err(err).Msg("Failed to generate HTML report")
		return exitError
	}

	printSummary(summary, reportPath)

	if summary.Status == differ.OutcomeChanged {
		return exitChanged
	}
	return exitIdentical
}

// loadSession fills buffer slots A, B, C from the input files in order,
// applies the requested base slot and any buffer rotations
func loadSession(flags AppFlags) (*buffer.Session, error) {
	session := buffer.NewSession()

	for i, path := range flags.InputFiles {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
		}
		slot := buffer.Slots()[i]
		session.SetContent(slot, string(content))
		session.SetTitle(slot, filepath.Base(path))
	}

	if flags.BaseSlot != "" {
		slot, err := buffer.ParseSlot(flags.BaseSlot)
		if err != nil {
			return nil, err
		}
		session.SetBase(slot)
	}

	for i := 0; i < flags.Rotations; i++ {
		session.Rotate()
	}

	return session, nil
}

// printSummary writes the per-pair outcomes to stdout
func printSummary(summary *orchestrator.ComparisonSummary, reportPath string) {
	for _, result := range summary.Results {
		fmt.Printf("%s <-> %s: %s", result.BaseLabel, result.OtherLabel, result.Outcome.String())
		if result.Rendered != nil {
			fmt.Printf(" (+%d -%d)", result.Rendered.Additions, result.Rendered.Deletions)
		}
		fmt.Println()
	}
	fmt.Printf("overall: %s\n", summary.Status.String())
	fmt.Printf("report: %s\n", reportPath)
}
