package mahjong

import "fmt"

// ErrorCode names a violated invariant.
type ErrorCode int

const (
	CodeInvalidTileReference ErrorCode = iota
	CodeMultiplicityExceeded
	CodeMalformedHandSize
	CodeOrphanResponseKey
	CodeTooManyMelds
	CodeDuplicatePairing
)

func (c ErrorCode) String() string {
	switch c {
	case CodeInvalidTileReference:
		return "invalid tile reference"
	case CodeMultiplicityExceeded:
		return "multiplicity exceeded"
	case CodeMalformedHandSize:
		return "malformed hand size"
	case CodeOrphanResponseKey:
		return "orphan response key"
	case CodeTooManyMelds:
		return "too many melds"
	case CodeDuplicatePairing:
		return "duplicate pairing constraint"
	default:
		return "unknown validation error"
	}
}

// ValidationError is the structured result of a failed validator. It is a
// recoverable value, never used for control flow past the caller.
type ValidationError struct {
	Code   ErrorCode
	TileID string // offending tile id, when the violation names one
	Detail string
}

func (e *ValidationError) Error() string {
	if e.TileID != "" {
		return fmt.Sprintf("%s: %s (tile %s)", e.Code, e.Detail, e.TileID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}
