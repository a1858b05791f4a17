package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"

	m "pengawasku_backend/internals/features/exams/exam/model"
)

func TestNextStatusActivate(t *testing.T) {
	next, changed, err := NextStatus(m.StatusScheduled, EventActivate)
	if err != nil {
		t.Fatalf("activate scheduled: %v", err)
	}
	if !changed || next != m.StatusActive {
		t.Fatalf("expected active/changed, got %s changed=%v", next, changed)
	}
}

func TestNextStatusActivateIsNoOpWhenActive(t *testing.T) {
	next, changed, err := NextStatus(m.StatusActive, EventActivate)
	if err != nil {
		t.Fatalf("re-activate: %v", err)
	}
	if changed || next != m.StatusActive {
		t.Fatalf("expected no-op, got %s changed=%v", next, changed)
	}
}

func TestNextStatusFinish(t *testing.T) {
	for _, src := range []string{m.StatusScheduled, m.StatusActive} {
		next, changed, err := NextStatus(src, EventFinish)
		if err != nil {
			t.Fatalf("finish from %s: %v", src, err)
		}
		if !changed || next != m.StatusFinished {
			t.Fatalf("finish from %s: got %s changed=%v", src, next, changed)
		}
	}
}

func TestNextStatusRefinishIsNoOp(t *testing.T) {
	next, changed, err := NextStatus(m.StatusFinished, EventFinish)
	if err != nil {
		t.Fatalf("re-finish: %v", err)
	}
	if changed || next != m.StatusFinished {
		t.Fatalf("expected no-op, got %s changed=%v", next, changed)
	}
}

func TestNextStatusNoCycleBack(t *testing.T) {
	_, _, err := NextStatus(m.StatusFinished, EventActivate)
	if err == nil {
		t.Fatal("activating a finished exam must fail")
	}
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusConflict {
		t.Fatalf("expected 409, got %v", err)
	}
}

func TestNextStatusUnknownEvent(t *testing.T) {
	_, _, err := NextStatus(m.StatusScheduled, "reschedule")
	if err == nil {
		t.Fatal("unknown event must fail")
	}
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
