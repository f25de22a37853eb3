// Package batch renders many scene files concurrently. Each worker owns its
// buffers outright; the raster engine does no internal locking.
package batch

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"rasterpad/internal/imgio"
	"rasterpad/internal/postprocess"
	"rasterpad/internal/scene"
)

// Config holds shared settings for a batch run.
type Config struct {
	OutputDir string
	Format    string // output extension without the dot
	Scale     int
	Workers   int
	Flip      bool
}

// Result holds the outcome of rendering one scene.
type Result struct {
	Scene   string
	Output  string
	Success bool
	Error   string
}

// Run renders all scene files using a worker pool and reports per-file
// results in input order.
func Run(cfg Config, paths []string) []Result {
	total := len(paths)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f scenes/sec\n", p, total, rate)
				}
			}
		}
	}()

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	pathChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range pathChan {
				results[idx] = renderScene(cfg, paths[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range paths {
		pathChan <- i
	}
	close(pathChan)

	wg.Wait()
	close(done)

	return results
}

func renderScene(cfg Config, path string) Result {
	s, err := scene.Load(path)
	if err != nil {
		return Result{Scene: path, Error: err.Error()}
	}

	buf, err := s.Render(cfg.Scale)
	if err != nil {
		return Result{Scene: path, Error: err.Error()}
	}

	img := imgio.ToNRGBA(buf)
	if cfg.Scale > 1 {
		img = postprocess.Downsample(img, s.Width, s.Height)
	}
	if cfg.Flip {
		img = postprocess.FlipHorizontal(img)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(cfg.OutputDir, name+"."+cfg.Format)
	if err := imgio.Save(outPath, img); err != nil {
		return Result{Scene: path, Error: err.Error()}
	}

	return Result{Scene: path, Output: outPath, Success: true}
}
