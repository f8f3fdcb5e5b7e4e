package monitoring

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// FrameMonitor tracks per-tick timings and a few game counters. It is
// written from the update goroutine and may be read from anywhere.
type FrameMonitor struct {
	// Frame metrics
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds

	// Section metrics
	updateTime  atomic.Uint64
	drawTime    atomic.Uint64
	animateTime atomic.Uint64

	// Game-specific metrics
	movesMade      atomic.Uint64
	tilesAnimating atomic.Int32

	mutex          sync.RWMutex
	totalFrameTime time.Duration
	startTime      time.Time
}

// NewFrameMonitor creates a new frame monitor
func NewFrameMonitor() *FrameMonitor {
	return &FrameMonitor{startTime: time.Now()}
}

// FrameTimer measures one tick
type FrameTimer struct {
	monitor   *FrameMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (fm *FrameMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{monitor: fm, startTime: time.Now()}
}

// EndFrame completes frame timing
func (ft *FrameTimer) EndFrame() {
	elapsed := time.Since(ft.startTime)
	ft.monitor.frameTime.Store(uint64(elapsed.Nanoseconds()))
	ft.monitor.frameCount.Add(1)

	ft.monitor.mutex.Lock()
	ft.monitor.totalFrameTime += elapsed
	ft.monitor.mutex.Unlock()
}

// ProfiledFunction runs fn and stores its duration under name ("update",
// "draw" or "animate"; other names are timed but not stored).
func (fm *FrameMonitor) ProfiledFunction(name string, fn func()) time.Duration {
	start := time.Now()
	fn()
	duration := time.Since(start)

	switch name {
	case "update":
		fm.updateTime.Store(uint64(duration.Nanoseconds()))
	case "draw":
		fm.drawTime.Store(uint64(duration.Nanoseconds()))
	case "animate":
		fm.animateTime.Store(uint64(duration.Nanoseconds()))
	}
	return duration
}

// CountMove records one successful tile move.
func (fm *FrameMonitor) CountMove() {
	fm.movesMade.Add(1)
}

// SetTilesAnimating records how many tiles are mid-slide.
func (fm *FrameMonitor) SetTilesAnimating(n int32) {
	fm.tilesAnimating.Store(n)
}

// GameMetrics is a snapshot of the monitor.
type GameMetrics struct {
	FrameCount     uint64
	LastFrame      time.Duration
	AverageFrame   time.Duration
	LastUpdate     time.Duration
	LastDraw       time.Duration
	LastAnimate    time.Duration
	MovesMade      uint64
	TilesAnimating int32
	Uptime         time.Duration
}

// GetCurrentMetrics returns current metrics
func (fm *FrameMonitor) GetCurrentMetrics() GameMetrics {
	fm.mutex.RLock()
	defer fm.mutex.RUnlock()

	count := fm.frameCount.Load()
	var avg time.Duration
	if count > 0 {
		avg = fm.totalFrameTime / time.Duration(count)
	}

	return GameMetrics{
		FrameCount:     count,
		LastFrame:      time.Duration(fm.frameTime.Load()),
		AverageFrame:   avg,
		LastUpdate:     time.Duration(fm.updateTime.Load()),
		LastDraw:       time.Duration(fm.drawTime.Load()),
		LastAnimate:    time.Duration(fm.animateTime.Load()),
		MovesMade:      fm.movesMade.Load(),
		TilesAnimating: fm.tilesAnimating.Load(),
		Uptime:         time.Since(fm.startTime),
	}
}

// Summary formats the metrics for the debug overlay.
func (m GameMetrics) Summary() string {
	return fmt.Sprintf("frames %d  avg %s\nupdate %s  draw %s\nmoves %d  sliding %d",
		m.FrameCount, m.AverageFrame.Round(time.Microsecond),
		m.LastUpdate.Round(time.Microsecond), m.LastDraw.Round(time.Microsecond),
		m.MovesMade, m.TilesAnimating)
}

// PerformanceAlert represents a performance warning
type PerformanceAlert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
	Timestamp time.Time
}

// CheckPerformanceAlerts reports when the last tick took longer than its
// share of the tick budget at tps ticks per second.
func (fm *FrameMonitor) CheckPerformanceAlerts(tps int) []PerformanceAlert {
	var alerts []PerformanceAlert
	if tps <= 0 {
		return alerts
	}

	budget := time.Second / time.Duration(tps)
	last := time.Duration(fm.frameTime.Load())
	if last > budget {
		alerts = append(alerts, PerformanceAlert{
			Type:      "slow_tick",
			Message:   "Tick took longer than the frame budget",
			Value:     float64(last.Microseconds()),
			Threshold: float64(budget.Microseconds()),
			Timestamp: time.Now(),
		})
	}
	return alerts
}

// Reset resets all counters
func (fm *FrameMonitor) Reset() {
	fm.frameCount.Store(0)
	fm.frameTime.Store(0)
	fm.updateTime.Store(0)
	fm.drawTime.Store(0)
	fm.animateTime.Store(0)
	fm.movesMade.Store(0)
	fm.tilesAnimating.Store(0)

	fm.mutex.Lock()
	fm.totalFrameTime = 0
	fm.startTime = time.Now()
	fm.mutex.Unlock()
}
