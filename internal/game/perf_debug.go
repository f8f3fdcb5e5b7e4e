package game

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const perfLogInterval = 3 * time.Second

type perfState struct {
	lastPerfLog time.Time
}

// maybeLogPerfDrop warns about slow ticks, at most once per interval.
func (gl *GameLoop) maybeLogPerfDrop() {
	alerts := gl.game.monitor.CheckPerformanceAlerts(ebiten.TPS())
	if len(alerts) == 0 {
		return
	}

	now := time.Now()
	if !gl.lastPerfLog.IsZero() && now.Sub(gl.lastPerfLog) < perfLogInterval {
		return
	}
	gl.lastPerfLog = now

	for _, alert := range alerts {
		gl.game.logger.Warn(alert.Message,
			"type", alert.Type,
			"tick_us", alert.Value,
			"budget_us", alert.Threshold,
			"fps", fmt.Sprintf("%.1f", ebiten.ActualFPS()),
		)
	}
}

// drawDebug prints the frame rate and the monitor summary over the screen.
func (gl *GameLoop) drawDebug(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.1f  TPS %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), 2, 2)

	face := basicfont.Face7x13
	y := 32
	metrics := gl.game.monitor.GetCurrentMetrics()
	for _, line := range strings.Split(metrics.Summary(), "\n") {
		ebitext.Draw(screen, line, face, 2, y, color.White)
		y += face.Height
	}
}
