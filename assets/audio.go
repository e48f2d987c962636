package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed all:audio
var audioFS embed.FS

// AudioLoader handles loading and caching of audio cues
type AudioLoader struct {
	cache   map[string][]byte // Decoded PCM per path
	context *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		cache:   make(map[string][]byte),
		context: ctx,
	}
}

// decode reads and decodes a cue, caching the PCM bytes so repeated plays
// never hit the decoder again.
func (l *AudioLoader) decode(path string) ([]byte, error) {
	if cached, ok := l.cache[path]; ok {
		return cached, nil
	}

	data, err := audioFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}

	l.cache[path] = decoded
	return decoded, nil
}

// LoadCue returns a new one-shot player for the cue at path.
func (l *AudioLoader) LoadCue(path string) (*audio.Player, error) {
	decoded, err := l.decode(path)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(decoded))
}

// LoadLoop returns a player that loops the cue at path until stopped.
func (l *AudioLoader) LoadLoop(path string) (*audio.Player, error) {
	decoded, err := l.decode(path)
	if err != nil {
		return nil, err
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(decoded), int64(len(decoded)))
	return l.context.NewPlayer(loop)
}

// Preload decodes every configured cue up front to avoid lag on first play.
// This is especially important for WASM where decoding is slower.
func (l *AudioLoader) Preload(paths []string) {
	for _, p := range paths {
		_, _ = l.decode(p)
	}
}
