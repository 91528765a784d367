package engine

import (
	"kalah/game"

	"github.com/rs/zerolog/log"
)

type Option func(s *Sequencer)

func WithObserver(observer Observer) Option {
	return func(s *Sequencer) {
		if observer != nil {
			s.observers = append(s.observers, observer)
		}
	}
}

// Sequencer plays a fixed list of moves against a single game.
type Sequencer struct {
	State     *game.GameState
	observers []Observer
}

func NewSequencer(state *game.GameState, options ...Option) *Sequencer {
	s := &Sequencer{State: state}
	for _, option := range options {
		option(s)
	}
	return s
}

// Play sets up a fresh game and runs moves against it.
func Play(houses, seeds int, moves []int, options ...Option) (game.Result, error) {
	state, err := game.NewGameState(houses, seeds)
	if err != nil {
		return game.Result{}, err
	}
	return NewSequencer(state, options...).Run(moves)
}

// Run applies moves in order until the game ends, then finalizes it and
// returns the result. Moves left over after the end are ignored. The first
// failing move stops the run.
func (s *Sequencer) Run(moves []int) (game.Result, error) {
	log.Debug().Int("moves", len(moves)).Msg("starting game")

	for i, house := range moves {
		mover := s.State.Turn()
		landing, err := s.State.ApplyMove(house)
		if err != nil {
			log.Debug().Err(err).Int("step", i+1).Int("house", house).Stringer("player", mover).Msg("move rejected")
			return game.Result{}, err
		}

		log.Debug().
			Int("step", i+1).
			Stringer("player", mover).
			Int("house", house).
			Stringer("landing", landing).
			Ints("pits", s.State.Pits()).
			Msg("applied move")

		u := Update{Step: i + 1, Player: mover, House: house, Landing: landing, State: s.State}
		for _, observe := range s.observers {
			if err := observe(u); err != nil {
				return game.Result{}, err
			}
		}

		if s.State.IsTerminal() {
			if err := s.State.Finalize(); err != nil {
				return game.Result{}, err
			}
			result := s.State.Result()
			log.Debug().Int("step", i+1).Int("ignored", len(moves)-i-1).Interface("result", result).Msg("game over")
			return result, nil
		}
	}

	log.Debug().Msg("moves exhausted before the game ended")
	return game.Result{}, ErrInsufficientMoves
}
