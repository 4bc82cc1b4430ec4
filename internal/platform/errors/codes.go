// Package errors provides structured error handling for Stellar Duel services.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Arena errors
	CodeArenaUnknownKey Code = "ARENA_UNKNOWN_KEY"

	// Match errors
	CodeMatchEmptyArenaKey      Code = "MATCH_EMPTY_ARENA_KEY"
	CodeMatchInvalidDifficulty  Code = "MATCH_INVALID_DIFFICULTY"
	CodeMatchInvalidPhase       Code = "MATCH_INVALID_PHASE"
	CodeMatchAlreadyComplete    Code = "MATCH_ALREADY_COMPLETE"
	CodeMatchNotLive            Code = "MATCH_NOT_LIVE"
	CodeMatchInvalidTickRate    Code = "MATCH_INVALID_TICK_RATE"
	CodeMatchInvalidClock       Code = "MATCH_INVALID_CLOCK"
	CodeMatchControlsOutOfOrder Code = "MATCH_CONTROLS_OUT_OF_ORDER"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"

	// Random/seed errors
	CodeSeedOutOfRange Code = "SEED_OUT_OF_RANGE"

	// Filter errors
	CodeFilterInvalid Code = "FILTER_INVALID"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeArenaUnknownKey,
		CodeMatchEmptyArenaKey,
		CodeMatchInvalidDifficulty,
		CodeMatchInvalidTickRate,
		CodeMatchInvalidClock,
		CodeSeedOutOfRange,
		CodeFilterInvalid:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeMatchInvalidPhase,
		CodeMatchAlreadyComplete,
		CodeMatchNotLive,
		CodeMatchControlsOutOfOrder:
		return codes.FailedPrecondition

	// NotFound - missing records
	case CodeNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
