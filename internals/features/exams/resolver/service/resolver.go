package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	m "pengawasku_backend/internals/features/exams/exam/model"
	helper "pengawasku_backend/internals/helpers"
)

// ClosestWindow is how far around "now" a scheduled exam's start may lie
// for it to count as imminent.
const ClosestWindow = 30 * time.Minute

// ExamSource feeds the resolver. Both queries are bounded by a single
// supervisor's exam count.
type ExamSource interface {
	ActiveBySupervisor(supervisorID uuid.UUID) ([]m.ExamModel, error)
	ScheduledBySupervisor(supervisorID uuid.UUID) ([]m.ExamModel, error)
}

// Resolver answers "which exam should this supervisor be looking at".
// Read-only and polled every few seconds by many clients, so results are
// held in a short-TTL cache.
type Resolver struct {
	Source ExamSource
	Loc    *time.Location
	Clock  func() time.Time

	cache *cache.Cache
}

func NewResolver(source ExamSource, loc *time.Location) *Resolver {
	return &Resolver{
		Source: source,
		Loc:    loc,
		Clock:  time.Now,
		cache:  cache.New(3*time.Second, time.Minute),
	}
}

// ResolveForSupervisor returns the active exam this supervisor runs, else a
// scheduled exam of theirs starting within ±30 minutes of now (today, in
// the fixed reference timezone), else nil.
func (r *Resolver) ResolveForSupervisor(supervisorID uuid.UUID) (*m.ExamModel, error) {
	key := supervisorID.String()
	if v, ok := r.cache.Get(key); ok {
		if v == nil {
			return nil, nil
		}
		return v.(*m.ExamModel), nil
	}

	exam, err := r.resolve(supervisorID)
	if err != nil {
		return nil, err
	}
	if exam == nil {
		r.cache.Set(key, nil, cache.DefaultExpiration)
	} else {
		r.cache.Set(key, exam, cache.DefaultExpiration)
	}
	return exam, nil
}

func (r *Resolver) resolve(supervisorID uuid.UUID) (*m.ExamModel, error) {
	now := r.Clock()

	active, err := r.Source.ActiveBySupervisor(supervisorID)
	if err != nil {
		return nil, err
	}
	if len(active) > 0 {
		// A supervisor on more than one active exam is unusual; pick
		// deterministically: earliest actual start, ties broken by id.
		sort.Slice(active, func(i, j int) bool {
			ai, aj := active[i].ExamActualStartTime, active[j].ExamActualStartTime
			switch {
			case ai == nil && aj == nil:
				return active[i].ExamID.String() < active[j].ExamID.String()
			case ai == nil:
				return false
			case aj == nil:
				return true
			case ai.Equal(*aj):
				return active[i].ExamID.String() < active[j].ExamID.String()
			default:
				return ai.Before(*aj)
			}
		})
		return &active[0], nil
	}

	scheduled, err := r.Source.ScheduledBySupervisor(supervisorID)
	if err != nil {
		return nil, err
	}

	var best *m.ExamModel
	var bestStart time.Time
	for i := range scheduled {
		e := &scheduled[i]
		// Compare wall-clock fields in the reference timezone; never parse
		// the naive date/time strings as UTC.
		start := helper.WallClockInstant(e.ExamDate, e.ExamStartMinutes, r.Loc)
		if !helper.SameCivilDay(start, now, r.Loc) {
			continue
		}
		diff := now.Sub(start)
		if diff < 0 {
			diff = -diff
		}
		if diff > ClosestWindow {
			continue
		}
		if best == nil || start.Before(bestStart) ||
			(start.Equal(bestStart) && e.ExamID.String() < best.ExamID.String()) {
			best = e
			bestStart = start
		}
	}
	return best, nil
}

// Invalidate drops the cached answer for one supervisor, e.g. right after
// an exam they run changes status.
func (r *Resolver) Invalidate(supervisorID uuid.UUID) {
	r.cache.Delete(supervisorID.String())
}
