package ghi

// XfbCapture is the interface that defines a transform-feedback
// capture object: a set of buffer ranges that vertex/geometry
// shader output is streamed into between Begin and End.
type XfbCapture interface {
	Destroyer

	// Begin starts capture into the object's bound buffer ranges.
	// The gl45 implementation always begins capture in triangle
	// mode, so the draw calls recorded between Begin and End must
	// use a triangle topology; point and line capture is not
	// available.
	Begin()

	// End ends capture.
	End()

	// Pause suspends capture without ending it, allowing other
	// draws to be recorded without writing to the bound ranges.
	Pause()

	// Resume resumes a paused capture.
	Resume()
}
