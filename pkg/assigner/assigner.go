package assigner

import (
	"math"
	"math/rand"

	"github.com/crossguard/crossguard/pkg/calendar"
	"github.com/crossguard/crossguard/pkg/roster"
)

// Result is the outcome of an assignment run: the best roster found across
// all trials together with its trial score and fill statistics.
type Result struct {
	Roster roster.Roster

	// Score is the winning trial's score: mean winning person score minus
	// the number of unfilled duty days.
	Score float64

	// AssignedCount and FailCount describe the winning trial: how many duty
	// days were filled and how many had no admissible person.
	AssignedCount int
	FailCount     int
}

// CreateAssignment runs cfg.Cycles randomized greedy trials over the period
// and returns the best-scoring one. Each trial works on a deep clone of the
// source roster in a freshly permuted order, so repeated calls with the same
// seed, cycles, roster and period reproduce the same result. The source
// roster is never modified.
func CreateAssignment(cfg Config, source roster.Roster, period roster.Period) *Result {
	best := &Result{Roster: source.Clone(), Score: math.Inf(-1)}

	// one seed chain, advanced once per trial, keeps trials reproducible and
	// independent of each other
	seeds := rand.New(rand.NewSource(cfg.Seed))

	cycles := cfg.Cycles
	if cycles < 1 {
		cycles = 1
	}

	for trial := 0; trial < cycles; trial++ {
		candidate := runTrial(cfg, source, period, seeds.Int63())
		if candidate.Score > best.Score {
			best = candidate
		}
	}
	return best
}

// runTrial performs one greedy pass: clone, permute, then walk the period in
// day order assigning the best-scoring admissible person to each duty day.
func runTrial(cfg Config, source roster.Roster, period roster.Period, seed int64) *Result {
	candidate := permuted(source.Clone(), seed)

	scoreSum := 0.0
	assigned := 0
	failed := 0

	for day := period.First; day <= period.Last; day++ {
		if cfg.Classify(day) != DayRegular {
			continue
		}
		wday := calendar.WeekdayOf(day)
		if !cfg.ActiveWeekdays[wday] {
			continue
		}
		weekNumber := calendar.WeekNumberOfDay(day)

		var winner *roster.Person
		bestScore := 0.0
		for _, p := range candidate {
			// strict comparison: ties go to the earliest person in the
			// permuted order, and a zero score never wins
			if s := p.Score(day, weekNumber); s > bestScore {
				bestScore = s
				winner = p
			}
		}

		if winner == nil {
			failed++
			continue
		}

		winner.AssignedDays = append(winner.AssignedDays, day)
		if winner.PinnedWeekday == calendar.AnyWeekday && winner.Preferences.AlwaysSameWorkday {
			winner.PinnedWeekday = wday
		}
		scoreSum += bestScore
		assigned++
	}

	score := -float64(failed)
	if assigned > 0 {
		// mean fit is bounded by 1, so subtracting the raw failure count
		// makes minimizing failures dominate
		score = scoreSum/float64(assigned) - float64(failed)
	}

	return &Result{
		Roster:        candidate,
		Score:         score,
		AssignedCount: assigned,
		FailCount:     failed,
	}
}

// permuted reorders the roster with a seeded random permutation. Only the
// element order changes; the persons keep their histories.
func permuted(r roster.Roster, seed int64) roster.Roster {
	perm := rand.New(rand.NewSource(seed)).Perm(len(r))
	out := make(roster.Roster, len(r))
	for i, j := range perm {
		out[i] = r[j]
	}
	return out
}
