// Package sfx plays the game's short sound effects.
package sfx

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"slidepuzzle/internal/config"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Sound names.
const (
	Move   = "move"
	Block  = "block"
	Select = "select"
)

// Files maps every sound to its file name inside the audio directory.
var Files = map[string]string{
	Move:   "move.wav",
	Block:  "block.wav",
	Select: "select.wav",
}

// Player plays one sound. Play returns immediately.
type Player interface {
	Play(volume float64)
}

// Silent is a Player that does nothing.
type Silent struct{}

func (Silent) Play(float64) {}

// clip holds decoded PCM and starts a fresh ebiten player per Play so
// overlapping sounds don't cut each other off.
type clip struct {
	context *audio.Context
	pcm     []byte
}

func (c *clip) Play(volume float64) {
	p := c.context.NewPlayerFromBytes(c.pcm)
	p.SetVolume(volume)
	p.Play()
}

// Bank holds one Player per sound name.
type Bank struct {
	players map[string]Player
	volume  float64
	logger  *log.Logger
}

// NewSilentBank returns a bank where every sound is Silent.
func NewSilentBank(logger *log.Logger) *Bank {
	players := make(map[string]Player, len(Files))
	for name := range Files {
		players[name] = Silent{}
	}
	return NewBankWith(players, 0, logger)
}

// NewBankWith builds a bank from existing players.
func NewBankWith(players map[string]Player, volume float64, logger *log.Logger) *Bank {
	return &Bank{players: players, volume: volume, logger: logger}
}

// NewBank loads the WAV files from cfg.Dir. With no directory configured
// every sound is silent. All files are read before the audio context is
// created, so a missing file never touches the audio device.
func NewBank(cfg config.AudioConfig, logger *log.Logger) (*Bank, error) {
	if cfg.Dir == "" {
		logger.Debug("no audio directory configured, sounds are silent")
		return NewSilentBank(logger), nil
	}

	raw := make(map[string][]byte, len(Files))
	for name, file := range Files {
		data, err := os.ReadFile(filepath.Join(cfg.Dir, file))
		if err != nil {
			return nil, fmt.Errorf("sfx: load %s: %w", name, err)
		}
		raw[name] = data
	}

	context := audio.CurrentContext()
	if context == nil {
		context = audio.NewContext(cfg.SampleRate)
	}

	players := make(map[string]Player, len(raw))
	for name, data := range raw {
		stream, err := wav.DecodeWithSampleRate(context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("sfx: decode %s: %w", name, err)
		}
		pcm, err := io.ReadAll(stream)
		if err != nil {
			return nil, fmt.Errorf("sfx: decode %s: %w", name, err)
		}
		players[name] = &clip{context: context, pcm: pcm}
	}
	logger.Info("sounds loaded", "dir", cfg.Dir, "count", len(players))
	return NewBankWith(players, cfg.Volume, logger), nil
}

// Play plays the named sound at the bank volume. Unknown names are logged
// and ignored.
func (b *Bank) Play(name string) {
	p, ok := b.players[name]
	if !ok {
		b.logger.Warn("unknown sound", "name", name)
		return
	}
	p.Play(b.volume)
}
