package game

// PlayOut plays a game to the end with player choosing the human side's
// discards. observe, if not nil, is called after every transition; opponent
// carries the opponent's decision after its discard and is nil otherwise.
func PlayOut(s State, player Strategy, observe func(s State, opponent *Decision)) (State, error) {
	notify := func(s State, opponent *Decision) {
		if observe != nil {
			observe(s, opponent)
		}
	}

	for !s.GameOver() {
		next, draw, err := s.Draw()
		if err != nil {
			return s, err
		}
		s = next
		notify(s, nil)

		if draw.EndOfGame {
			break
		}

		decision := player.ChooseDiscard(s.PlayerView())
		if s, err = s.ApplyPlayerDiscard(decision.Discard); err != nil {
			return s, err
		}
		notify(s, nil)

		var opponent Decision
		if s, opponent, err = s.ResolveOpponentTurn(); err != nil {
			return s, err
		}
		notify(s, &opponent)
	}

	return s, nil
}
