package core

// OutcomeGenerator produces the random draw that decides a wager. The draw
// is fairness-critical, so the generator is always an injected instance:
// production wires a seeded source, tests substitute a deterministic one.
type OutcomeGenerator interface {
	// Draw returns an integer uniformly distributed over the closed
	// interval [low, high]. A range with low > high is a programming
	// error and panics.
	Draw(low, high int) int
}
