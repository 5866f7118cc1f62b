package game

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/smasonuk/starflight"
)

var cueFiles = map[starflight.SoundCue]string{
	starflight.CueEngineHum: "engine_hum.wav",
	starflight.CueWarp:      "warp.wav",
	starflight.CueImpact:    "impact.wav",
}

// loadClips decodes every cue's WAV file from fsys into PCM at sampleRate.
// Cues whose file is missing or broken are left out and reported in errs.
func loadClips(fsys fs.FS, sampleRate int) (clips map[starflight.SoundCue][]byte, errs []error) {
	clips = make(map[starflight.SoundCue][]byte, len(cueFiles))
	for _, cue := range starflight.SoundCues {
		name := cueFiles[cue]
		pcm, err := decodeWAV(fsys, name, sampleRate)
		if err != nil {
			errs = append(errs, fmt.Errorf("sound %s: %w", cue, err))
			continue
		}
		clips[cue] = pcm
	}
	return clips, errs
}

func decodeWAV(fsys fs.FS, name string, sampleRate int) ([]byte, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	s, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return io.ReadAll(s)
}

// Soundboard plays cues through ebiten audio. One-shots get their own player
// so they can overlap; the engine hum loops forever once started.
type Soundboard struct {
	ctx    *audio.Context
	clips  map[starflight.SoundCue][]byte
	volume float64
	hum    *audio.Player
	shots  []*audio.Player
}

// closer is the part of *audio.Player that reapPlayers needs.
type closer interface {
	IsPlaying() bool
	Close() error
}

// reapPlayers closes the players that finished and returns the ones still
// playing, reusing ps.
func reapPlayers[P closer](ps []P) []P {
	live := ps[:0]
	for _, p := range ps {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		if err := p.Close(); err != nil {
			slog.Warn("closing sound player", "err", err)
		}
	}
	clear(ps[len(live):])
	return live
}

// NewSoundboard loads the cue files from fsys. Missing files are logged once
// here and their cues are skipped from then on.
func NewSoundboard(ctx *audio.Context, fsys fs.FS, volume float64) *Soundboard {
	clips, errs := loadClips(fsys, ctx.SampleRate())
	for _, err := range errs {
		slog.Warn("sound unavailable", "err", err)
	}
	slog.Info("sounds loaded", "count", len(clips))
	return &Soundboard{
		ctx:    ctx,
		clips:  clips,
		volume: volume,
	}
}

func (b *Soundboard) Play(cue starflight.SoundCue) {
	pcm, ok := b.clips[cue]
	if !ok {
		return
	}
	if cue == starflight.CueEngineHum {
		b.startHum(pcm)
		return
	}
	b.shots = reapPlayers(b.shots)
	p := b.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(b.volume)
	p.Play()
	b.shots = append(b.shots, p)
}

func (b *Soundboard) startHum(pcm []byte) {
	if b.hum != nil {
		return
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	p, err := b.ctx.NewPlayer(loop)
	if err != nil {
		slog.Warn("engine hum unavailable", "err", err)
		delete(b.clips, starflight.CueEngineHum)
		return
	}
	p.SetVolume(b.volume * 0.2)
	p.Play()
	b.hum = p
}

func (b *Soundboard) SetEngineLevel(level float64) {
	if b.hum != nil {
		b.hum.SetVolume(b.volume * level)
	}
}

// Close releases the engine hum and every one-shot player.
func (b *Soundboard) Close() error {
	var errs []error
	for _, p := range b.shots {
		errs = append(errs, p.Close())
	}
	b.shots = nil
	if b.hum != nil {
		errs = append(errs, b.hum.Close())
		b.hum = nil
	}
	return errors.Join(errs...)
}
