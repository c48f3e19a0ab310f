package main

import (
	"context"
	"math/rand/v2"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Dealer defaults.
const (
	defaultWinRate = 0.2
	defaultDelay   = 800 * time.Millisecond
)

// prizes are the amounts a winning card can carry, in dollars.
var prizes = []int{5, 10, 20, 50, 100, 500, 1000, 5000, 10000}

// ticket is the hidden content of one card.
type ticket struct {
	winner bool
	prize  string
}

// dealer draws tickets after a simulated fetch delay.
type dealer struct {
	rng     *rand.Rand
	winRate float64
	delay   time.Duration
	printer *message.Printer
}

func newDealer(rng *rand.Rand) *dealer {
	return &dealer{
		rng:     rng,
		winRate: defaultWinRate,
		delay:   defaultDelay,
		printer: message.NewPrinter(language.AmericanEnglish),
	}
}

// deal waits out the delay and draws a ticket. It returns ctx.Err() when
// the context ends first.
func (d *dealer) deal(ctx context.Context) (ticket, error) {
	timer := time.NewTimer(d.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ticket{}, ctx.Err()
	case <-timer.C:
	}
	return d.draw(), nil
}

func (d *dealer) draw() ticket {
	amount := prizes[d.rng.IntN(len(prizes))]
	return ticket{
		winner: d.rng.Float64() < d.winRate,
		prize:  d.format(amount),
	}
}

// format renders a dollar amount with digit grouping, e.g. "$10,000".
func (d *dealer) format(amount int) string {
	return d.printer.Sprintf("$%d", amount)
}
