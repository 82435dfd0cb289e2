package ghi

// QueryTarget is the kind of event a Query counts or times.
type QueryTarget int

// Query targets.
const (
	QSamplesPassed QueryTarget = iota
	QAnySamplesPassed
	QAnySamplesPassedConservative
	QTimeElapsed
	QTimestamp
	QPrimitivesGenerated
	QXfbPrimitivesWritten
)

// QueryResultFlag configures Query.GetResults.
type QueryResultFlag int

// Result flags.
const (
	// Result64 selects 64-bit results; the default is 32-bit.
	Result64 QueryResultFlag = 1 << iota
	// ResultWait blocks the caller until the result is
	// available; without it, a not-yet-available result reads
	// as zero.
	ResultWait
	// ResultAvailability additionally writes a trailing
	// availability word (0 or 1) after each result, at the
	// given stride.
	ResultAvailability
)

// Query is the interface that defines an occlusion/timer/
// primitive-count query object.
type Query interface {
	Destroyer

	// Target returns the query target this object was created
	// for.
	Target() QueryTarget

	// Begin starts the query on the given stream index (only
	// meaningful for QXfbPrimitivesWritten; 0 otherwise).
	Begin(stream int)

	// End ends the query.
	End()

	// IsResultAvailable reports whether the query's result is
	// ready without blocking.
	IsResultAvailable() bool

	// GetResults reads count consecutive query results starting
	// at first into dst, laid out stride bytes apart, honoring
	// flags. dst must be large enough: it is sized in units of
	// 4 or 8 bytes per result (per Result64) plus, if
	// ResultAvailability is set, one trailing word per result.
	GetResults(first, count int, stride int64, flags QueryResultFlag, dst []byte) error
}
