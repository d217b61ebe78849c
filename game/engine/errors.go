package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrPrecondition is wrapped by every rejected command. A rejected
	// command never changes state and never consumes an action.
	ErrPrecondition  = errors.New("precondition unmet")
	ErrWrongPhase    = fmt.Errorf("%w: wrong phase for this command", ErrPrecondition)
	ErrNotYourTurn   = fmt.Errorf("%w: not your turn", ErrPrecondition)
	ErrUnknownPlayer = fmt.Errorf("%w: unknown player", ErrPrecondition)
	ErrCardNotInHand = fmt.Errorf("%w: card not in hand", ErrPrecondition)

	ErrCanceled = errors.New("action canceled")
	ErrSetup    = errors.New("invalid setup")
	ErrGameOver = errors.New("game over")
)

// GameOverError is returned by every command once the game has ended.
type GameOverError struct {
	Outcome Outcome
}

func (e *GameOverError) Error() string {
	return fmt.Sprintf("game over: %s", e.Outcome)
}

func (e *GameOverError) Is(target error) bool {
	return target == ErrGameOver
}

// InvariantError reports corrupted game state. It is raised with panic; it
// always means a bug in the engine, never a bad command.
type InvariantError struct {
	Invariant string
	Detail    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant %q violated: %s", e.Invariant, e.Detail)
}

func precondition(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPrecondition, fmt.Sprintf(format, args...))
}

func setupError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSetup, fmt.Sprintf(format, args...))
}
