// Command photofit composites one photo, or a directory of photos, onto a
// fixed-size canvas over a blurred copy of itself.
//
// Single file:
//
//	photofit photo.jpg
//	photofit -out processed photo.jpg
//
// Directory (every supported image, per-file errors are skipped):
//
//	photofit ./holiday-pics
//	photofit -out processed ./holiday-pics
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/menta2k/photofit"
	"github.com/menta2k/photofit/internal/config"
	"github.com/menta2k/photofit/internal/utils"
	"github.com/menta2k/photofit/pkg/processing"
)

func main() {
	var outDir, cfgPath string
	var width, height int
	var blur, brightness, upscale float64
	var verbose bool

	flag.StringVar(&outDir, "out", "", "output directory (default: beside the input)")
	flag.StringVar(&cfgPath, "config", "", "path to a JSON config file")
	flag.IntVar(&width, "width", 0, "canvas width in pixels")
	flag.IntVar(&height, "height", 0, "canvas height in pixels")
	flag.Float64Var(&blur, "blur", -1, "background blur sigma")
	flag.Float64Var(&brightness, "brightness", -1, "background brightness factor (below 1 darkens)")
	flag.Float64Var(&upscale, "upscale", 0, "background upscale factor (at least 1)")
	flag.BoolVar(&verbose, "verbose", false, "enable debug logging")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] input-image-or-directory\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		os.Exit(2)
	}
	input := flag.Arg(0)

	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.LoadFromFile(cfgPath)
		if err != nil {
			logger.Fatal("loading config", "path", cfgPath, "err", err)
		}
		cfg = loaded
	}

	// Flag overrides beat both defaults and the config file.
	if width > 0 {
		cfg.Canvas.Width = width
	}
	if height > 0 {
		cfg.Canvas.Height = height
	}
	if blur >= 0 {
		cfg.Background.BlurSigma = blur
	}
	if brightness >= 0 {
		cfg.Background.Brightness = brightness
	}
	if upscale > 0 {
		cfg.Background.Upscale = upscale
	}
	if outDir != "" {
		cfg.Output.Dir = outDir
	}

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	inputs, defaultOut, err := resolveInputs(input)
	if err != nil {
		logger.Fatal("resolving input", "path", input, "err", err)
	}
	if len(inputs) == 0 {
		logger.Fatal("no supported images found", "path", input)
	}

	if cfg.Output.Dir == "" {
		cfg.Output.Dir = defaultOut
	}
	if err := utils.EnsureDir(cfg.Output.Dir); err != nil {
		logger.Fatal("creating output directory", "dir", cfg.Output.Dir, "err", err)
	}

	fitter := photofit.NewWithConfig(processing.Config{
		CanvasWidth:  cfg.Canvas.Width,
		CanvasHeight: cfg.Canvas.Height,
		BlurSigma:    cfg.Background.BlurSigma,
		Brightness:   cfg.Background.Brightness,
		Upscale:      cfg.Background.Upscale,
	})

	logger.Debug("configuration",
		"canvas", fmt.Sprintf("%dx%d", cfg.Canvas.Width, cfg.Canvas.Height),
		"blur", cfg.Background.BlurSigma,
		"brightness", cfg.Background.Brightness,
		"upscale", cfg.Background.Upscale,
		"out", cfg.Output.Dir)

	var failed int
	for _, in := range inputs {
		outPath := utils.GenerateOutputFilename(in, cfg.Output.Dir, cfg.Output.Prefix, cfg.Output.Suffix)

		src, err := fitter.Load(in)
		if err != nil {
			logger.Error("skipping file", "path", in, "err", err)
			failed++
			continue
		}
		logger.Debug("loaded",
			"path", in,
			"size", fmt.Sprintf("%dx%d", src.Width, src.Height),
			"bytes", utils.FormatFileSize(src.ByteSize),
			"orientation", src.Orientation)

		out, err := fitter.Process(src)
		if err != nil {
			logger.Error("skipping file", "path", in, "err", err)
			failed++
			continue
		}

		if err := fitter.Save(out, outPath, src.ByteSize); err != nil {
			logger.Error("skipping file", "path", in, "err", err)
			failed++
			continue
		}
		logger.Info("wrote", "path", outPath)
	}

	logger.Info("done", "processed", len(inputs)-failed, "failed", failed)
	if failed == len(inputs) {
		os.Exit(1)
	}
}

// resolveInputs expands the input argument into the list of files to process
// and the default output directory used when -out is absent: the input's own
// directory for a single file, an "output" subdirectory for a directory.
func resolveInputs(input string) ([]string, string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, "", err
	}

	if info.IsDir() {
		files, err := utils.ListImageFiles(input)
		if err != nil {
			return nil, "", err
		}
		return files, filepath.Join(input, "output"), nil
	}

	return []string{input}, filepath.Dir(input), nil
}
