// Package runner drives conversions over a directory tree: it finds every
// CSV sheet below the root and writes a sibling .sfz next to each one.
package runner

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/momoluna444/csv2sfz/config"
	"github.com/momoluna444/csv2sfz/metrics"
	"github.com/momoluna444/csv2sfz/sample"
	"github.com/momoluna444/csv2sfz/sheet"
)

// Run converts every *.csv under cfg.Root into a sibling *.sfz. Files are
// converted concurrently by cfg.Jobs workers; each conversion owns its own
// schema and tables, so nothing is shared but the read-only filesystem. Run
// returns an error when the root is unreadable or any file failed.
func Run(ctx context.Context, cfg *config.Config, m *metrics.SentryMetrics) error {
	start := time.Now()
	csvPaths, err := findSheets(cfg.Root)
	if err != nil {
		return fmt.Errorf("scan %s: %w", cfg.Root, err)
	}
	if len(csvPaths) == 0 {
		log.Printf("⚠️  No CSV sheets found under %s", cfg.Root)
		return nil
	}

	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = 1
	}

	var failed atomic.Int64
	var wg sync.WaitGroup
	work := make(chan string)
	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for csvPath := range work {
				if err := convertFile(ctx, csvPath, m); err != nil {
					failed.Add(1)
					log.Printf("❌ %s: %v", csvPath, err)
				}
			}
		}()
	}
	for _, p := range csvPaths {
		work <- p
	}
	close(work)
	wg.Wait()

	m.RecordRun(ctx, cfg.Root, len(csvPaths), int(failed.Load()), time.Since(start))

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d sheets failed", n, len(csvPaths))
	}
	log.Printf("✅ Converted %d sheets in %s", len(csvPaths), time.Since(start).Round(time.Millisecond))
	return nil
}

func convertFile(ctx context.Context, csvPath string, m *metrics.SentryMetrics) error {
	start := time.Now()
	data, err := os.ReadFile(csvPath)
	if err != nil {
		m.RecordConversion(ctx, csvPath, time.Since(start), 0, err)
		return err
	}

	out, err := sheet.Convert(data, filepath.Dir(csvPath))
	if err != nil {
		m.RecordConversion(ctx, csvPath, time.Since(start), 0, err)
		return err
	}

	sfzPath := strings.TrimSuffix(csvPath, filepath.Ext(csvPath)) + ".sfz"
	if err := os.WriteFile(sfzPath, out, 0o644); err != nil {
		m.RecordConversion(ctx, csvPath, time.Since(start), len(out), err)
		return err
	}

	m.RecordConversion(ctx, csvPath, time.Since(start), len(out), nil)
	log.Printf("📄 %s → %s (%d bytes)", csvPath, sfzPath, len(out))
	return nil
}

// findSheets lists every CSV file below root.
func findSheets(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(p), ".csv") {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// Doctor probes every WAV file below the root and logs a one-line report per
// file. It is informational only and never touches conversion output.
func Doctor(cfg *config.Config) error {
	files := 0
	bad := 0
	err := filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(p), ".wav") {
			return nil
		}
		files++
		info, err := sample.ProbeWav(p)
		if err != nil {
			bad++
			log.Printf("❌ %s: %v", p, err)
			return nil
		}
		stem := sample.Stem(filepath.ToSlash(p))
		log.Printf("🔍 %s: %s params=%v", p, info, sample.StemParams(stem))
		return nil
	})
	if err != nil {
		return fmt.Errorf("scan %s: %w", cfg.Root, err)
	}
	log.Printf("✅ Probed %d WAV files, %d unreadable", files, bad)
	if bad > 0 {
		return fmt.Errorf("%d of %d WAV files unreadable", bad, files)
	}
	return nil
}
