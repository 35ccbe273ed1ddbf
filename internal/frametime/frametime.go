// Package frametime averages render durations over fixed windows for display.
package frametime

import (
	"fmt"
	"time"
)

// DefaultWindow is how many renders are averaged before the displayed value changes.
const DefaultWindow = 25

// Averager collects render durations and publishes their mean once per window.
// The published value stays put until the next window completes.
type Averager struct {
	window  int
	sum     time.Duration
	count   int
	last    time.Duration
	average time.Duration
	windows int
}

// NewAverager returns an Averager over window samples. Values below 1 use DefaultWindow.
func NewAverager(window int) *Averager {
	if window < 1 {
		window = DefaultWindow
	}
	return &Averager{window: window}
}

// Add records one render duration. It reports true when the sample completed a
// window and Average changed.
func (a *Averager) Add(d time.Duration) bool {
	a.last = d
	a.sum += d
	a.count++
	if a.count < a.window {
		return false
	}
	a.average = a.sum / time.Duration(a.count)
	a.sum, a.count = 0, 0
	a.windows++
	return true
}

// Time runs fn, records its duration and returns it.
func (a *Averager) Time(fn func()) time.Duration {
	start := time.Now()
	fn()
	d := time.Since(start)
	a.Add(d)
	return d
}

// Last is the most recent sample.
func (a *Averager) Last() time.Duration { return a.last }

// Average is the mean of the last completed window, zero before the first one.
func (a *Averager) Average() time.Duration { return a.average }

// Windows counts completed windows.
func (a *Averager) Windows() int { return a.windows }

// Pending is the number of samples in the current, incomplete window.
func (a *Averager) Pending() int { return a.count }

// String formats the displayed value the way the viewer's title bar shows it.
func (a *Averager) String() string {
	return fmt.Sprintf("Last render: %.3fms", Millis(a.average))
}

// Millis converts d to fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
