package sim

import "errors"

var (
	// ErrSimulationComplete is returned by Step once the current date has
	// reached the end date. Run treats it as the stop signal.
	ErrSimulationComplete = errors.New("simulation has reached end date")

	// ErrInvalidRange is returned when the end date is not after the start date.
	ErrInvalidRange = errors.New("end date must be after start date")

	// ErrDuplicateKey is returned when an entity id is already registered.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrDanglingReference is returned when an entity references an id
	// that has not been registered yet.
	ErrDanglingReference = errors.New("dangling reference")

	// ErrScoreOutOfRange is returned when an entity carries a quality or
	// performance score outside [0, 1].
	ErrScoreOutOfRange = errors.New("score outside [0, 1]")

	// ErrInvalidConfig is returned by EngineConfig.Validate.
	ErrInvalidConfig = errors.New("invalid engine config")
)
