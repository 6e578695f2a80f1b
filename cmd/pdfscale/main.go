package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/kpauljoseph/pdfscale/internal/config"
	"github.com/kpauljoseph/pdfscale/internal/pdf"
	"github.com/kpauljoseph/pdfscale/internal/scanner"
	"github.com/kpauljoseph/pdfscale/pkg/logger"
	"github.com/kpauljoseph/pdfscale/pkg/models"
	"github.com/kpauljoseph/pdfscale/pkg/papersize"
	"github.com/kpauljoseph/pdfscale/pkg/updater"
	"github.com/kpauljoseph/pdfscale/pkg/version"
)

func main() {
	var formatName string
	flag.StringVar(&formatName, "f", "", "target paper format (A4, Letter, 210x297, ...)")
	flag.StringVar(&formatName, "format", "", "target paper format (A4, Letter, 210x297, ...)")
	var outputPath string
	flag.StringVar(&outputPath, "o", "", "output file path (default: input with -scaled suffix)")
	flag.StringVar(&outputPath, "output", "", "output file path (default: input with -scaled suffix)")
	configPath := flag.String("config", "", "path to config file")
	dirPath := flag.String("dir", "", "scale every PDF under this directory instead of a single file")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	debug := flag.Bool("debug", false, "enable debug mode with trace logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	checkUpdate := flag.Bool("check-update", false, "check for a newer release")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetDetailedVersionInfo())
		return
	}

	log := logger.New(
		logger.WithPrefix("[pdfscale] "),
	)
	log.SetVerbose(*verbose)
	if *debug {
		log.SetLevel(logger.LevelTrace)
	}

	if *verbose {
		log.Debug("Verbose logging enabled")
	}

	cfg := loadConfig(*configPath, log)

	if *checkUpdate {
		reportUpdate(log)
	}

	if formatName == "" {
		formatName = cfg.DefaultFormat
	}
	if formatName == "" {
		fmt.Fprintln(os.Stderr, "usage: pdfscale -f <FORMAT> <input.pdf>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	format, err := papersize.Parse(formatName)
	if err != nil {
		log.Fatal("Unrecognized format %q", formatName)
	}

	scaler := pdf.NewScaler(format, cfg.OutputSuffix, cfg.ThresholdPt, log)
	ctx := context.Background()

	if *dirPath != "" {
		if flag.NArg() != 0 {
			log.Fatal("-dir and a file argument are mutually exclusive")
		}
		if err := scaleDirectory(ctx, scaler, *dirPath, cfg.OutputSuffix, log); err != nil {
			log.Fatal("%v", err)
		}
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: pdfscale -f <FORMAT> <input.pdf>")
		os.Exit(1)
	}

	if err := scaleFile(ctx, scaler, flag.Arg(0), outputPath, log); err != nil {
		log.Fatal("%v", err)
	}
}

func loadConfig(path string, log *logger.Logger) *config.Config {
	if path == "" {
		if _, err := os.Stat(config.DefaultPath); err != nil {
			return config.Default()
		}
		path = config.DefaultPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal("Error loading config %s: %v", path, err)
	}
	log.Debug("Loaded config from %s", path)
	return cfg
}

func scaleFile(ctx context.Context, scaler *pdf.Scaler, inputPath, outputPath string, log *logger.Logger) error {
	var (
		result *models.ScaleResult
		err    error
	)
	if outputPath != "" {
		result, err = scaler.ScaleDocumentTo(ctx, inputPath, outputPath)
	} else {
		result, err = scaler.ScaleDocument(ctx, inputPath)
	}
	if err != nil {
		return err
	}

	report(result, log)
	return nil
}

func report(result *models.ScaleResult, log *logger.Logger) {
	if !result.Changed() {
		log.Info("%s already respects the wanted format, nothing to do", result.InputPath)
		return
	}
	log.Info("Scaled (%d/%d) pages: %s -> %s",
		result.ScaledCount, result.PageCount, result.InputPath, result.OutputPath)
}

func reportUpdate(log *logger.Logger) {
	checker := updater.NewChecker(log)
	info, err := checker.CheckForUpdates()
	if err != nil {
		log.Warn("Update check failed: %v", err)
		return
	}
	if info == nil {
		return
	}
	if info.IsAvailable {
		log.Info("Update available: %s -> %s (%s)",
			info.CurrentVersion, info.LatestVersion, info.ReleaseURL)
	} else {
		log.Info("pdfscale is up to date (%s)", info.CurrentVersion)
	}
}

func scaleDirectory(ctx context.Context, scaler *pdf.Scaler, dir, suffix string, log *logger.Logger) error {
	dirScanner := scanner.New(log)

	log.Info("Scanning directory: %s", dir)
	pdfs, err := dirScanner.FindPDFs(ctx, dir, suffix)
	if err != nil {
		return err
	}
	log.Info("Found %d PDFs to scale", len(pdfs))

	failures := 0
	for _, file := range pdfs {
		result, err := scaler.ScaleDocument(ctx, file.AbsolutePath)
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			log.Warn("Error scaling %s: %v", file.RelativePath, err)
			failures++
			continue
		}
		report(result, log)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d PDFs failed", failures, len(pdfs))
	}
	return nil
}
