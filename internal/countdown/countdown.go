// Package countdown implements the promotional countdown clock shown in
// the pricing section: an hours/minutes/seconds value ticked down once
// per second and clamped at zero.
package countdown

import (
	"context"
	"fmt"
	"time"
)

// Initial offer window. Every fresh mount of the clock restarts here;
// the value is deliberately not synchronized with any external clock.
const (
	InitialHours   = 1
	InitialMinutes = 24
	InitialSeconds = 59
)

// Clock is the decrementing display value. It is a plain state machine
// with no scheduling of its own; see Ticker for the periodic drive.
type Clock struct {
	hours   int
	minutes int
	seconds int
}

func New(hours, minutes, seconds int) *Clock {
	if hours < 0 {
		hours = 0
	}
	if minutes < 0 || minutes > 59 {
		minutes = 0
	}
	if seconds < 0 || seconds > 59 {
		seconds = 0
	}
	return &Clock{hours: hours, minutes: minutes, seconds: seconds}
}

// NewPromo returns a clock at the fixed offer window.
func NewPromo() *Clock {
	return New(InitialHours, InitialMinutes, InitialSeconds)
}

// Tick advances one second toward zero: seconds first, then borrowing
// from minutes, then from hours. At 0:00:00 the value stays put.
func (c *Clock) Tick() {
	switch {
	case c.seconds > 0:
		c.seconds--
	case c.minutes > 0:
		c.minutes--
		c.seconds = 59
	case c.hours > 0:
		c.hours--
		c.minutes = 59
		c.seconds = 59
	}
}

// Done reports whether the clock has reached its terminal 0:00:00 state.
func (c *Clock) Done() bool {
	return c.hours == 0 && c.minutes == 0 && c.seconds == 0
}

// String renders the value with every field zero-padded to two digits.
func (c *Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.hours, c.minutes, c.seconds)
}

// Ticker owns the periodic schedule for one Clock. Formatted values are
// delivered on C until the context ends; the underlying timer is always
// released and C is closed on the way out.
type Ticker struct {
	clock    *Clock
	interval time.Duration
	out      chan string
}

func NewTicker(clock *Clock, interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{
		clock:    clock,
		interval: interval,
		out:      make(chan string, 1),
	}
}

func (t *Ticker) C() <-chan string {
	return t.out
}

// Run ticks the clock until ctx is done. Run owns the timer for its
// whole lifetime, so cancelling ctx is enough to release it.
func (t *Ticker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	defer close(t.out)

	for {
		select {
		case <-ticker.C:
			t.clock.Tick()
			select {
			case t.out <- t.clock.String():
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
