package runner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/youpy/go-wav"

	"github.com/momoluna444/csv2sfz/config"
	"github.com/momoluna444/csv2sfz/metrics"
)

func write(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func TestRunConvertsTree(t *testing.T) {
	root := t.TempDir()
	write(t, root, "kit/Kick_k36.wav", "x")
	write(t, root, "kit/Snare_k38.wav", "x")
	write(t, root, "kit/drums.csv", "@header,@sample,key\n<region>,./*.wav,${k}\n")
	write(t, root, "bass/Bass_k50.wav", "x")
	write(t, root, "bass/bass.csv", "@header,@sample,key\n<region>,./Bass_k50.wav,${k}\n")

	cfg := &config.Config{Root: root, Jobs: 2}
	m := metrics.NewSentryMetrics(false)
	require.NoError(t, Run(context.Background(), cfg, m))

	drums, err := os.ReadFile(filepath.Join(root, "kit", "drums.sfz"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(drums), "\n"), "\n")
	assert.ElementsMatch(t, []string{
		"<region> sample=./Kick_k36.wav key=36",
		"<region> sample=./Snare_k38.wav key=38",
	}, lines)

	bass, err := os.ReadFile(filepath.Join(root, "bass", "bass.sfz"))
	require.NoError(t, err)
	assert.Equal(t, "<region> sample=./Bass_k50.wav key=50\n", string(bass))
}

func TestRunReportsFailures(t *testing.T) {
	root := t.TempDir()
	write(t, root, "bad.csv", "key,group\n60,1\n") // no @header column
	write(t, root, "good.csv", "@header,key\n<region>,60\n")

	cfg := &config.Config{Root: root, Jobs: 1}
	err := Run(context.Background(), cfg, metrics.NewSentryMetrics(false))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 sheets failed")

	// The good sheet still converted.
	out, readErr := os.ReadFile(filepath.Join(root, "good.sfz"))
	require.NoError(t, readErr)
	assert.Equal(t, "<region> key=60\n", string(out))
	assert.NoFileExists(t, filepath.Join(root, "bad.sfz"))
}

func TestRunEmptyTree(t *testing.T) {
	cfg := &config.Config{Root: t.TempDir(), Jobs: 1}
	assert.NoError(t, Run(context.Background(), cfg, metrics.NewSentryMetrics(false)))
}

func TestRunMissingRoot(t *testing.T) {
	cfg := &config.Config{Root: filepath.Join(t.TempDir(), "nope"), Jobs: 1}
	assert.Error(t, Run(context.Background(), cfg, metrics.NewSentryMetrics(false)))
}

func TestDoctor(t *testing.T) {
	root := t.TempDir()

	f, err := os.Create(filepath.Join(root, "Kick_k36.wav"))
	require.NoError(t, err)
	w := wav.NewWriter(f, 8, 1, 44100, 16)
	require.NoError(t, w.WriteSamples(make([]wav.Sample, 8)))
	require.NoError(t, f.Close())

	cfg := &config.Config{Root: root}
	assert.NoError(t, Doctor(cfg))

	write(t, root, "broken.wav", "not a wav")
	assert.Error(t, Doctor(cfg))
}
