package rational

import "errors"

var (
	// ErrZeroDenominator indicates a fraction with denominator zero was
	// requested, either at construction or through division/inversion.
	ErrZeroDenominator = errors.New("rational: zero denominator")
)
