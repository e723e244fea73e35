package sample

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/youpy/go-wav"
)

// WavInfo summarizes a WAV file for the doctor report.
type WavInfo struct {
	Channels      int
	SampleRate    int
	BitsPerSample int
	Frames        int
	Duration      time.Duration
}

func (i *WavInfo) String() string {
	return fmt.Sprintf("%dch %dHz %dbit %s", i.Channels, i.SampleRate, i.BitsPerSample, i.Duration.Round(time.Millisecond))
}

// ProbeWav reads a WAV file's format header and counts its frames. It is a
// diagnostic helper only; conversion never depends on sample contents.
func ProbeWav(path string) (*WavInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := wav.NewReader(f)
	format, err := r.Format()
	if err != nil {
		return nil, fmt.Errorf("read wav format: %w", err)
	}

	frames := 0
	for {
		samples, err := r.ReadSamples()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read wav samples: %w", err)
		}
		frames += len(samples)
	}

	info := &WavInfo{
		Channels:      int(format.NumChannels),
		SampleRate:    int(format.SampleRate),
		BitsPerSample: int(format.BitsPerSample),
		Frames:        frames,
	}
	if format.SampleRate > 0 {
		info.Duration = time.Duration(float64(frames) / float64(format.SampleRate) * float64(time.Second))
	}
	return info, nil
}
