package composer

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// IDGenerator hands out catalog ids. Next never returns a value below floor
// and never repeats a value it returned before.
type IDGenerator interface {
	Next(floor int64) int64
}

// ClockIDGenerator derives ids from the Unix millisecond clock and bumps them
// when two calls land in the same millisecond.
type ClockIDGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewClockIDGenerator uses now as its clock; nil means time.Now.
func NewClockIDGenerator(now func() time.Time) *ClockIDGenerator {
	if now == nil {
		now = time.Now
	}
	return &ClockIDGenerator{now: now}
}

func (g *ClockIDGenerator) Next(floor int64) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := max(g.now().UnixMilli(), g.last+1, floor)
	g.last = id
	return id
}

// SequenceIDGenerator returns floor, floor+1, ... ignoring the clock. Useful
// for deterministic output in tests and demos.
type SequenceIDGenerator struct {
	mu   sync.Mutex
	last int64
}

func (g *SequenceIDGenerator) Next(floor int64) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := max(g.last+1, floor)
	g.last = id
	return id
}

// ItemIDFunc returns a fresh email item id.
type ItemIDFunc func() string

// NewItemID returns a random UUIDv4 string.
func NewItemID() string {
	return uuid.NewString()
}

func nextBlockFloor(blocks []Block) int64 {
	var top int64
	for _, b := range blocks {
		top = max(top, b.ID)
	}
	return top + 1
}

func nextTemplateFloor(templates []Template) int64 {
	var top int64
	for _, t := range templates {
		top = max(top, t.ID)
	}
	return top + 1
}
