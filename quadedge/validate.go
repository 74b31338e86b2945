package quadedge

import "fmt"

// Validate walks every half-edge reachable from seed and checks the
// structural invariants a correct mesh must hold: every reached record is
// alive, Rot has order four, Sym is its own inverse, every onext ring
// closes on itself, and primal half-edges always carry a coordinate while
// dual half-edges never do. It is meant for debugging and test
// assertions, not for production call sites; no mutator runs it.
func (m *Mesh) Validate(seed Edge) error {
	seen := make(map[int32]bool)
	stack := []Edge{seed}

	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if seen[e.idx] {
			continue
		}
		seen[e.idx] = true

		if !e.Alive() {
			return fmt.Errorf("quadedge: validate: %w: dead edge reachable from seed", ErrInvariantViolated)
		}
		if !e.Rot().Rot().Rot().Rot().Equal(e) {
			return fmt.Errorf("quadedge: validate: %w: rot does not have order four", ErrInvariantViolated)
		}
		if !e.Sym().Sym().Equal(e) {
			return fmt.Errorf("quadedge: validate: %w: sym is not an involution", ErrInvariantViolated)
		}
		if e.IsPrimal() == e.Rot().IsPrimal() {
			return fmt.Errorf("quadedge: validate: %w: rot does not alternate primal/dual", ErrInvariantViolated)
		}

		_, hasOrigin := e.Origin()
		if e.IsPrimal() && !hasOrigin {
			return fmt.Errorf("quadedge: validate: %w: primal edge has no origin", ErrInvariantViolated)
		}
		if !e.IsPrimal() && hasOrigin {
			return fmt.Errorf("quadedge: validate: %w: dual edge has an origin", ErrInvariantViolated)
		}

		ring := e
		for i := 0; i < len(m.records); i++ {
			ring = ring.ONext()
			if ring.Equal(e) {
				break
			}
			if i == len(m.records)-1 {
				return fmt.Errorf("quadedge: validate: %w: onext ring does not close", ErrInvariantViolated)
			}
		}

		stack = append(stack, e.Rot(), e.ONext())
	}

	return nil
}
