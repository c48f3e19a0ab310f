package scratch

import "sync/atomic"

// RevealState is the lifecycle state of a card.
type RevealState int32

const (
	// StateCovered is the initial state: nothing has been scratched yet.
	StateCovered RevealState = iota

	// StateScratching is entered on the first scratch command.
	StateScratching

	// StateRevealed is terminal for the round. It is entered once the erased
	// percentage exceeds the reveal threshold.
	StateRevealed
)

// String returns the state name.
func (s RevealState) String() string {
	switch s {
	case StateCovered:
		return "Covered"
	case StateScratching:
		return "Scratching"
	case StateRevealed:
		return "Revealed"
	default:
		return "Unknown"
	}
}

// Outcome is the win/lose signal emitted when a card reveals.
type Outcome int

const (
	OutcomeLose Outcome = iota
	OutcomeWin
)

// String returns the outcome name.
func (o Outcome) String() string {
	if o == OutcomeWin {
		return "Win"
	}
	return "Lose"
}

// outcomeOf maps the winner flag to its outcome.
func outcomeOf(winner bool) Outcome {
	if winner {
		return OutcomeWin
	}
	return OutcomeLose
}

// revealHooks are the presentation callbacks fired on reveal.
type revealHooks struct {
	onReveal  func()
	onWin     func()
	onLose    func()
	onOutcome func(Outcome)
}

// revealMachine owns the Covered -> Scratching -> Revealed transitions.
//
// The transition into Revealed is guarded by a one-shot latch: only the
// caller that flips fired from false to true runs the hooks, no matter how
// many scratches observe a coverage above the threshold.
type revealMachine struct {
	threshold float64
	outcome   Outcome
	hooks     revealHooks

	state atomic.Int32
	fired atomic.Bool
}

func newRevealMachine(threshold float64, winner bool, hooks revealHooks) *revealMachine {
	return &revealMachine{
		threshold: threshold,
		outcome:   outcomeOf(winner),
		hooks:     hooks,
	}
}

// State returns the current state.
func (r *revealMachine) State() RevealState {
	return RevealState(r.state.Load())
}

// scratched records a scratch command. Only Covered moves forward.
func (r *revealMachine) scratched() {
	r.state.CompareAndSwap(int32(StateCovered), int32(StateScratching))
}

// observe feeds a coverage measurement to the machine and reports whether
// this call performed the reveal transition. Coverage equal to the threshold
// does not reveal.
func (r *revealMachine) observe(coverage float64) bool {
	if !(coverage > r.threshold) {
		return false
	}
	if !r.fired.CompareAndSwap(false, true) {
		return false
	}
	r.state.Store(int32(StateRevealed))

	if r.hooks.onReveal != nil {
		r.hooks.onReveal()
	}
	switch r.outcome {
	case OutcomeWin:
		if r.hooks.onWin != nil {
			r.hooks.onWin()
		}
	default:
		if r.hooks.onLose != nil {
			r.hooks.onLose()
		}
	}
	if r.hooks.onOutcome != nil {
		r.hooks.onOutcome(r.outcome)
	}
	return true
}
