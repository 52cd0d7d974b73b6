package solve

// reconstruct walks the frontier history backward from step n, recovering a
// concrete move string. It is only called once the forward loop has
// confirmed s.history[n] intersects the goal.
//
// At each level i (from n down to 1) it tries the four directions in their
// fixed priority order (up, down, left, right) and takes the first whose
// reversed image, intersected with the previous frontier, is non-False. The
// facade's RelprodReversed already performs the current/next rename and
// quantification internally, so no separate "rename current into unprimed
// namespace" step is needed between levels — current is always expressed
// over unprimed variables, including right after being narrowed to cand.
func (s *solver) reconstruct(n int) (*Result, error) {
	current := s.goal
	moves := make([]byte, 0, n)

	for i := n; i >= 1; i-- {
		if err := s.checkContext(); err != nil {
			return nil, err
		}

		found := false
		for _, md := range s.trans.ByMove() {
			cand := s.engine.And(s.history[i-1], s.engine.RelprodReversed(current, md.Rel, s.varset))
			if !s.engine.IsFalse(cand) {
				moves = append(moves, md.Move)
				current = cand
				found = true
				break
			}
		}
		if !found {
			return nil, ErrInternalReconstruction
		}
	}

	for l, r := 0, len(moves)-1; l < r; l, r = l+1, r-1 {
		moves[l], moves[r] = moves[r], moves[l]
	}

	return &Result{
		Won:             true,
		Steps:           len(moves),
		Moves:           string(moves),
		ReachableStates: s.engine.SatCount(s.history[n]),
	}, nil
}
