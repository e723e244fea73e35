package sample

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir,
		"Kick.wav",
		"Snare.wav",
		"Bass_k50.wav",
		"Bass_k60.wav",
		"hats/Closed.wav",
		"hats/Open.wav",
		"hats/deep/Pedal.wav",
		"notes.txt",
		"map.csv",
	)

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{
			name:    "star within directory",
			pattern: "./*.wav",
			want:    []string{"./Bass_k50.wav", "./Bass_k60.wav", "./Kick.wav", "./Snare.wav"},
		},
		{
			name:    "star does not cross separators",
			pattern: "./*Pedal.wav",
			want:    nil,
		},
		{
			name:    "double star crosses separators",
			pattern: "./**.wav",
			want: []string{
				"./Bass_k50.wav", "./Bass_k60.wav", "./Kick.wav", "./Snare.wav",
				"./hats/Closed.wav", "./hats/Open.wav", "./hats/deep/Pedal.wav",
			},
		},
		{
			name:    "question mark",
			pattern: "./Bass_k?0.wav",
			want:    []string{"./Bass_k50.wav", "./Bass_k60.wav"},
		},
		{
			name:    "alternation",
			pattern: "./{Kick,Snare}.wav",
			want:    []string{"./Kick.wav", "./Snare.wav"},
		},
		{
			name:    "character class range",
			pattern: "./Bass_k[5-6]0.wav",
			want:    []string{"./Bass_k50.wav", "./Bass_k60.wav"},
		},
		{
			name:    "negated class",
			pattern: "./Bass_k[!5]0.wav",
			want:    []string{"./Bass_k60.wav"},
		},
		{
			name:    "class escapes a metacharacter",
			pattern: "./Kick[.]wav",
			want:    []string{"./Kick.wav"},
		},
		{
			name:    "csv files are not candidates",
			pattern: "./*.csv",
			want:    nil,
		},
		{
			name:    "non-wav files are candidates",
			pattern: "./*.txt",
			want:    []string{"./notes.txt"},
		},
		{
			name:    "no matches",
			pattern: "./*.flac",
			want:    nil,
		},
		{
			name:    "literal path returned without scan",
			pattern: "./DoesNotExist.wav",
			want:    []string{"./DoesNotExist.wav"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewExpander(dir).Expand(tt.pattern)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandMatchesAreSorted(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "c.wav", "a.wav", "b.wav")

	e := NewExpander(dir)
	first := e.Expand("./*.wav")
	assert.Equal(t, []string{"./a.wav", "./b.wav", "./c.wav"}, first)

	// The scan is cached; repeated expansion is stable.
	assert.Equal(t, first, e.Expand("./*.wav"))
}

func TestExpandBadPattern(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.wav")
	assert.Empty(t, NewExpander(dir).Expand("./[a.wav"))
}
