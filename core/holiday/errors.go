package holiday

import "errors"

var (
	// ErrSourceUnavailable indicates the pack bucket is missing or the
	// backing store cannot be reached. Fatal for the current run.
	ErrSourceUnavailable = errors.New("holiday pack source unavailable")

	// ErrMalformedRecord indicates a holiday record that cannot be merged,
	// such as one with an empty name or no date.
	ErrMalformedRecord = errors.New("malformed holiday record")
)
