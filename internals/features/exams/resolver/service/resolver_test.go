package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	m "pengawasku_backend/internals/features/exams/exam/model"
)

type fakeExamSource struct {
	active    []m.ExamModel
	scheduled []m.ExamModel
	calls     int
}

func (f *fakeExamSource) ActiveBySupervisor(uuid.UUID) ([]m.ExamModel, error) {
	f.calls++
	return f.active, nil
}

func (f *fakeExamSource) ScheduledBySupervisor(uuid.UUID) ([]m.ExamModel, error) {
	return f.scheduled, nil
}

var testLoc = time.FixedZone("WIB", 7*3600)

func newTestResolver(src ExamSource, now time.Time) *Resolver {
	r := NewResolver(src, testLoc)
	r.Clock = func() time.Time { return now }
	return r
}

func scheduledExam(id uuid.UUID, date time.Time, startMin int) m.ExamModel {
	return m.ExamModel{
		ExamID:           id,
		ExamDate:         date,
		ExamStartMinutes: startMin,
		ExamEndMinutes:   startMin + 120,
		ExamStatus:       m.StatusScheduled,
	}
}

func TestResolveActiveExamWins(t *testing.T) {
	sup := uuid.New()
	early := time.Date(2025, 1, 10, 9, 0, 0, 0, testLoc)
	late := time.Date(2025, 1, 10, 10, 0, 0, 0, testLoc)
	a := m.ExamModel{ExamID: uuid.New(), ExamStatus: m.StatusActive, ExamActualStartTime: &late}
	b := m.ExamModel{ExamID: uuid.New(), ExamStatus: m.StatusActive, ExamActualStartTime: &early}

	r := newTestResolver(&fakeExamSource{active: []m.ExamModel{a, b}}, late)
	got, err := r.ResolveForSupervisor(sup)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got == nil || got.ExamID != b.ExamID {
		t.Fatal("expected the exam with the earliest actual start")
	}
}

func TestResolveImminentScheduledExam(t *testing.T) {
	sup := uuid.New()
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	exam := scheduledExam(uuid.New(), date, 14*60) // starts 14:00

	// 13:35 is within the ±30 minute window of a 14:00 start.
	now := time.Date(2025, 1, 10, 13, 35, 0, 0, testLoc)
	r := newTestResolver(&fakeExamSource{scheduled: []m.ExamModel{exam}}, now)
	got, err := r.ResolveForSupervisor(sup)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got == nil || got.ExamID != exam.ExamID {
		t.Fatal("expected the imminent scheduled exam")
	}
}

func TestResolveOutsideWindowReturnsNil(t *testing.T) {
	sup := uuid.New()
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	exam := scheduledExam(uuid.New(), date, 14*60)

	// 13:20 is 40 minutes before start.
	now := time.Date(2025, 1, 10, 13, 20, 0, 0, testLoc)
	r := newTestResolver(&fakeExamSource{scheduled: []m.ExamModel{exam}}, now)
	got, err := r.ResolveForSupervisor(sup)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got exam %v", got.ExamID)
	}
}

func TestResolveIgnoresOtherDays(t *testing.T) {
	sup := uuid.New()
	tomorrow := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)
	exam := scheduledExam(uuid.New(), tomorrow, 14*60)

	now := time.Date(2025, 1, 10, 14, 0, 0, 0, testLoc)
	r := newTestResolver(&fakeExamSource{scheduled: []m.ExamModel{exam}}, now)
	got, err := r.ResolveForSupervisor(sup)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != nil {
		t.Fatal("an exam on another civil day must not resolve")
	}
}

func TestResolvePicksEarliestCandidate(t *testing.T) {
	sup := uuid.New()
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	later := scheduledExam(uuid.New(), date, 14*60+20)
	earlier := scheduledExam(uuid.New(), date, 14*60)

	now := time.Date(2025, 1, 10, 14, 10, 0, 0, testLoc)
	r := newTestResolver(&fakeExamSource{scheduled: []m.ExamModel{later, earlier}}, now)
	got, err := r.ResolveForSupervisor(sup)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got == nil || got.ExamID != earlier.ExamID {
		t.Fatal("expected the earliest start among candidates")
	}
}

func TestResolveCachesWithinTTL(t *testing.T) {
	sup := uuid.New()
	start := time.Date(2025, 1, 10, 10, 0, 0, 0, testLoc)
	src := &fakeExamSource{active: []m.ExamModel{{
		ExamID: uuid.New(), ExamStatus: m.StatusActive, ExamActualStartTime: &start,
	}}}
	r := newTestResolver(src, start)

	if _, err := r.ResolveForSupervisor(sup); err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	if _, err := r.ResolveForSupervisor(sup); err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if src.calls != 1 {
		t.Fatalf("expected 1 source hit, got %d", src.calls)
	}

	r.Invalidate(sup)
	if _, err := r.ResolveForSupervisor(sup); err != nil {
		t.Fatalf("third resolve: %v", err)
	}
	if src.calls != 2 {
		t.Fatalf("expected source hit after invalidate, got %d", src.calls)
	}
}
