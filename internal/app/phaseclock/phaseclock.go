package phaseclock

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

type PhaseType string

const (
	Quarter  PhaseType = "QUARTER"
	Break    PhaseType = "BREAK"
	Halftime PhaseType = "HALFTIME"
)

type Phase struct {
	Type            PhaseType
	QuarterNumber   *int
	DurationSeconds int
	Label           string
}

// BuildPhases lays out the timed segments of a match. With an even quarter count the break after the middle
// quarter is a halftime; an odd count never gets one. No break follows the last quarter.
func BuildPhases(quarterCount, quarterMinutes, breakMinutes, halftimeMinutes int) []Phase {
	if quarterCount <= 0 {
		return []Phase{}
	}

	phases := make([]Phase, 0, 2*quarterCount-1)
	halftimeAfter := 0
	if quarterCount%2 == 0 {
		halftimeAfter = quarterCount / 2
	}

	for q := 1; q <= quarterCount; q++ {
		number := q
		phases = append(phases, Phase{
			Type:            Quarter,
			QuarterNumber:   &number,
			DurationSeconds: quarterMinutes * 60,
			Label:           fmt.Sprintf("%dQ", q),
		})

		if q == quarterCount {
			break
		}

		if q == halftimeAfter {
			phases = append(phases, Phase{
				Type:            Halftime,
				DurationSeconds: halftimeMinutes * 60,
				Label:           "HALFTIME",
			})
			continue
		}

		phases = append(phases, Phase{
			Type:            Break,
			DurationSeconds: breakMinutes * 60,
			Label:           "BREAK",
		})
	}

	return phases
}

// PhaseInfo returns the phase at a 1-based ordinal. Ordinal 0 (not started) and ordinals past the end (finished)
// both return nil.
func PhaseInfo(ordinal int, phases []Phase) *Phase {
	if ordinal < 1 || ordinal > len(phases) {
		return nil
	}

	phase := phases[ordinal-1]
	return &phase
}

// ComputeElapsed returns accumulated seconds, plus the running stretch when the timer is started. A start stamp in
// the future counts as zero.
func ComputeElapsed(accumulatedSeconds int, timerStartedAt *time.Time, now time.Time) int {
	if timerStartedAt == nil {
		return accumulatedSeconds
	}

	running := now.Sub(*timerStartedAt)
	if running < 0 {
		running = 0
	}

	return accumulatedSeconds + int(running/time.Second)
}

func Remaining(phase Phase, elapsedSeconds int) int {
	remaining := phase.DurationSeconds - elapsedSeconds
	if remaining < 0 {
		return 0
	}

	return remaining
}

// Clock is the time source for timer arithmetic.
type Clock struct {
	clock clockwork.Clock
}

func NewClock(clock clockwork.Clock) *Clock {
	return &Clock{clock: clock}
}

func (c *Clock) Now() time.Time {
	return c.clock.Now()
}

func (c *Clock) Elapsed(accumulatedSeconds int, timerStartedAt *time.Time) int {
	return ComputeElapsed(accumulatedSeconds, timerStartedAt, c.clock.Now())
}
