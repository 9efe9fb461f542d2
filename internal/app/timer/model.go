package timer

import (
	"time"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/huhyoujung/footballlog-sub002/internal/app/phaseclock"
)

// MatchClock is the read model of a match timer at a point in time.
type MatchClock struct {
	FixtureID        uint
	Format           models.MatchFormat
	Phases           []phaseclock.Phase
	CurrentPhase     int
	Phase            *phaseclock.Phase
	ElapsedSeconds   int
	RemainingSeconds *int
	Running          bool
	Finished         bool
}

func newMatchClock(fixtureID uint, t models.MatchTimer, now time.Time) MatchClock {
	phases := buildPhases(t.MatchFormat)
	elapsed := phaseclock.ComputeElapsed(t.ElapsedSeconds, t.TimerStartedAt, now)
	phase := phaseclock.PhaseInfo(t.CurrentPhase, phases)

	clock := MatchClock{
		FixtureID:      fixtureID,
		Format:         t.MatchFormat,
		Phases:         phases,
		CurrentPhase:   t.CurrentPhase,
		Phase:          phase,
		ElapsedSeconds: elapsed,
		Running:        t.Running(),
		Finished:       len(phases) > 0 && t.CurrentPhase > len(phases),
	}

	if phase != nil {
		remaining := phaseclock.Remaining(*phase, elapsed)
		clock.RemainingSeconds = &remaining
	}

	return clock
}

func buildPhases(format models.MatchFormat) []phaseclock.Phase {
	return phaseclock.BuildPhases(format.QuarterCount, format.QuarterMinutes, format.BreakMinutes, format.HalftimeMinutes)
}
