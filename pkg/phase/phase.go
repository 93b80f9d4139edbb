// Package phase models the classical states of matter and the named
// transitions between them: ice melts, water boils, and a gas that is
// ionized becomes a plasma.
package phase

// Phase is a state of matter.
type Phase int

const (
	Solid Phase = iota
	Liquid
	Gas
	Plasma
)

var phaseNames = map[Phase]string{
	Solid:  "solid",
	Liquid: "liquid",
	Gas:    "gas",
	Plasma: "plasma",
}

func (p Phase) String() string {
	return phaseNames[p]
}

// Transition is a named change from one phase to another. Only adjacent
// phases have a transition: there is no single step from solid to
// plasma.
type Transition int

const (
	Melt Transition = iota
	Freeze
	Boil
	Condense
	Sublime
	Deposit
	Ionize
	Deionize
)

var transitionNames = map[Transition]string{
	Melt:     "melt",
	Freeze:   "freeze",
	Boil:     "boil",
	Condense: "condense",
	Sublime:  "sublime",
	Deposit:  "deposit",
	Ionize:   "ionize",
	Deionize: "deionize",
}

func (t Transition) String() string {
	return transitionNames[t]
}

// From returns the phase the transition starts in.
func (t Transition) From() Phase {
	return transitions[t].from
}

// To returns the phase the transition ends in.
func (t Transition) To() Phase {
	return transitions[t].to
}

var transitions = map[Transition]struct{ from, to Phase }{
	Melt:     {from: Solid, to: Liquid},
	Freeze:   {from: Liquid, to: Solid},
	Boil:     {from: Liquid, to: Gas},
	Condense: {from: Gas, to: Liquid},
	Sublime:  {from: Solid, to: Gas},
	Deposit:  {from: Gas, to: Solid},
	Ionize:   {from: Gas, to: Plasma},
	Deionize: {from: Plasma, to: Gas},
}

// TransitionBetween returns the transition from one phase to another.
// The second return value is false when no direct transition exists,
// as between solid and plasma or between a phase and itself.
func TransitionBetween(from, to Phase) (Transition, bool) {
	for transition, phases := range transitions {
		if phases.from == from && phases.to == to {
			return transition, true
		}
	}
	return 0, false
}
