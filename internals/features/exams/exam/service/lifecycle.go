package service

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/looplab/fsm"

	m "pengawasku_backend/internals/features/exams/exam/model"
)

// Lifecycle events.
const (
	EventActivate = "activate"
	EventFinish   = "finish"
)

var eventDst = map[string]string{
	EventActivate: m.StatusActive,
	EventFinish:   m.StatusFinished,
}

func newLifecycle(current string) *fsm.FSM {
	return fsm.NewFSM(
		current,
		fsm.Events{
			{Name: EventActivate, Src: []string{m.StatusScheduled}, Dst: m.StatusActive},
			{Name: EventFinish, Src: []string{m.StatusScheduled, m.StatusActive}, Dst: m.StatusFinished},
		},
		fsm.Callbacks{},
	)
}

// NextStatus fires event against an exam currently in current and returns
// the resulting status. Firing an event whose destination the exam already
// reached is a no-op (changed=false), which keeps client retries simple.
// Anything else illegal (e.g. activating a finished exam) is a 409.
func NextStatus(current, event string) (next string, changed bool, err error) {
	dst, ok := eventDst[event]
	if !ok {
		return "", false, fiber.NewError(fiber.StatusBadRequest, "Unknown lifecycle event: "+event)
	}
	if current == dst {
		return current, false, nil
	}

	f := newLifecycle(current)
	if err := f.Event(context.Background(), event); err != nil {
		return "", false, fiber.NewError(fiber.StatusConflict,
			"Illegal exam status transition from "+current+" to "+dst)
	}
	return f.Current(), true, nil
}
