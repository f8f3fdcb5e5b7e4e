package sfx

import (
	"io"
	"os"
	"testing"

	"slidepuzzle/internal/config"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPlayer struct {
	volumes []float64
}

func (p *countingPlayer) Play(volume float64) {
	p.volumes = append(p.volumes, volume)
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestNewBankWithoutDirIsSilent(t *testing.T) {
	bank, err := NewBank(config.AudioConfig{Volume: 0.5}, quietLogger())
	require.NoError(t, err)

	for name := range Files {
		assert.IsType(t, Silent{}, bank.players[name])
		bank.Play(name)
	}
}

func TestNewBankMissingFile(t *testing.T) {
	_, err := NewBank(config.AudioConfig{Dir: t.TempDir(), Volume: 0.5, SampleRate: 44100}, quietLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBankPlaysAtBankVolume(t *testing.T) {
	move := &countingPlayer{}
	bank := NewBankWith(map[string]Player{Move: move}, 0.25, quietLogger())

	bank.Play(Move)
	bank.Play(Move)
	bank.Play("unknown")

	assert.Equal(t, []float64{0.25, 0.25}, move.volumes)
}
