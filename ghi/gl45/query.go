package gl45

import (
	"github.com/go-gl/gl/v4.5-core/gl"

	"github.com/ardentgfx/ghi"
	"github.com/ardentgfx/ghi/device"
)

// query implements ghi.Query as a growable pool of GL query object
// names: each Begin generates and appends one new name, so
// GetResults' (first, count) addressing a range of past begin/end
// pairs maps directly onto a slice index range.
type query struct {
	dev    *device.Device
	target ghi.QueryTarget
	names  []uint32
	active int // index of the name currently between Begin and End, or -1
	stream uint32
}

func (g *GPU) NewQuery(target ghi.QueryTarget) (ghi.Query, error) {
	g.dev.NoteQueryPool(1)
	return &query{dev: g.dev, target: target, active: -1}, nil
}

func (q *query) Destroy() {
	if q == nil || q.dev == nil {
		return
	}
	if len(q.names) > 0 {
		gl.DeleteQueries(int32(len(q.names)), &q.names[0])
	}
	q.names = nil
	q.dev.NoteQueryPool(-1)
	q.dev = nil
}

func (q *query) Target() ghi.QueryTarget { return q.target }

func (q *query) Begin(stream int) {
	var name uint32
	gl.GenQueries(1, &name)
	q.names = append(q.names, name)
	q.active = len(q.names) - 1
	q.stream = uint32(stream)
	if q.target == ghi.QXfbPrimitivesWritten {
		gl.BeginQueryIndexed(glQueryTarget(q.target), uint32(stream), name)
	} else {
		gl.BeginQuery(glQueryTarget(q.target), name)
	}
}

func (q *query) End() {
	if q.target == ghi.QXfbPrimitivesWritten {
		gl.EndQueryIndexed(glQueryTarget(q.target), q.stream)
	} else {
		gl.EndQuery(glQueryTarget(q.target))
	}
	q.active = -1
}

func (q *query) IsResultAvailable() bool {
	if len(q.names) == 0 {
		return false
	}
	var avail int32
	gl.GetQueryObjectiv(q.names[len(q.names)-1], gl.QUERY_RESULT_AVAILABLE, &avail)
	return avail != 0
}

func (q *query) GetResults(first, count int, stride int64, flags ghi.QueryResultFlag, dst []byte) error {
	if first < 0 || count < 0 || first+count > len(q.names) {
		return &ghi.Error{Kind: ghi.EInvalidArgument, Reason: "Query.GetResults: range exceeds recorded query count"}
	}
	resultSize := int64(4)
	if flags&ghi.Result64 != 0 {
		resultSize = 8
	}
	wordsPerResult := 1
	if flags&ghi.ResultAvailability != 0 {
		wordsPerResult = 2
	}
	need := stride*int64(count) - stride + resultSize*int64(wordsPerResult)
	if int64(len(dst)) < need {
		return &ghi.Error{Kind: ghi.EInvalidArgument, Reason: "Query.GetResults: dst too small"}
	}
	param := uint32(gl.QUERY_RESULT)
	if flags&ghi.ResultWait == 0 {
		param = gl.QUERY_RESULT_NO_WAIT
	}
	for i := 0; i < count; i++ {
		off := int64(i) * stride
		name := q.names[first+i]
		if flags&ghi.Result64 != 0 {
			var v uint64
			gl.GetQueryObjectui64v(name, param, &v)
			putU64(dst[off:], v)
			if flags&ghi.ResultAvailability != 0 {
				var avail uint64
				gl.GetQueryObjectui64v(name, gl.QUERY_RESULT_AVAILABLE, &avail)
				putU64(dst[off+8:], avail)
			}
		} else {
			var v uint32
			gl.GetQueryObjectuiv(name, param, &v)
			putU32(dst[off:], v)
			if flags&ghi.ResultAvailability != 0 {
				var avail uint32
				gl.GetQueryObjectuiv(name, gl.QUERY_RESULT_AVAILABLE, &avail)
				putU32(dst[off+4:], avail)
			}
		}
	}
	return nil
}

func putU32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func putU64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}
