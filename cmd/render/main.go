package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"rasterpad/internal/batch"
	"rasterpad/internal/config"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	scenePath := flag.String("scene", "", "Scene file, or a directory of scene files")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	format := flag.String("format", "", "Output format: webp, png, tga or bmp (default: webp)")
	scale := flag.Int("scale", 0, "Supersampling factor (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	flip := flag.Bool("flip", false, "Mirror output left-to-right")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg.Resolve(config.Flags{
		Scene:   *scenePath,
		Output:  *outputDir,
		Format:  *format,
		Scale:   *scale,
		Workers: *workers,
		Flip:    *flip,
	})

	if cfg.ScenePath == "" {
		fmt.Fprintln(os.Stderr, "Error: no scene given. Use -scene or config.json.")
		os.Exit(1)
	}

	paths, err := collectScenes(cfg.ScenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no scene files in %s\n", cfg.ScenePath)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	results := batch.Run(batch.Config{
		OutputDir: cfg.OutputDir,
		Format:    cfg.Format,
		Scale:     cfg.Scale,
		Workers:   cfg.Workers,
		Flip:      cfg.Flip,
	}, paths)

	if err := batch.WriteManifest(filepath.Join(cfg.OutputDir, "manifest.json"), results); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing manifest: %v\n", err)
	}

	ok := 0
	for _, r := range results {
		if r.Success {
			ok++
			continue
		}
		fmt.Fprintf(os.Stderr, "  FAIL %s: %s\n", r.Scene, r.Error)
	}
	fmt.Printf("Rendered %d/%d scenes in %.1fs\n", ok, len(results), time.Since(start).Seconds())
	if ok != len(results) {
		os.Exit(1)
	}
}

func collectScenes(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	paths, err := filepath.Glob(filepath.Join(path, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
