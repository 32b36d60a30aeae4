package scanner

import (
	"errors"
	"iter"
	"math"

	"github.com/goodnatureofminers/ledgerscan/internal/ledger/model"
)

var (
	// ErrInvalidBatchSize is returned for a zero window width.
	ErrInvalidBatchSize = errors.New("batch size must be positive")
	// ErrHeightOverflow is returned when the aligned range ends past the
	// largest representable height.
	ErrHeightOverflow = errors.New("aligned height range overflows uint32")
)

// AlignDown returns the greatest multiple of width that is <= v.
func AlignDown(v, width uint32) uint32 {
	return v - v%width
}

// AlignUp returns v + (width - v%width). The result is always strictly
// greater than v: an already aligned v is still moved up by a full width, so
// a scan always covers one window past an aligned end. It is computed in
// uint64 because the result may not fit a height.
func AlignUp(v, width uint32) uint64 {
	return uint64(v) + uint64(width-v%width)
}

// WindowSpan is the run of consecutive aligned windows covering a height
// range. Windows are produced on demand.
type WindowSpan struct {
	start uint64
	end   uint64
	width uint64
}

// Windows returns the span of aligned windows of the given width covering
// [AlignDown(start), AlignUp(end)). A range whose aligned start is not below
// its aligned end has no windows.
func Windows(heights model.HeightRange, width uint32) (WindowSpan, error) {
	if width == 0 {
		return WindowSpan{}, ErrInvalidBatchSize
	}

	start := uint64(AlignDown(heights.Start, width))
	end := AlignUp(heights.End, width)
	if start >= end {
		return WindowSpan{width: uint64(width)}, nil
	}
	if end > math.MaxUint32 {
		return WindowSpan{}, ErrHeightOverflow
	}
	return WindowSpan{start: start, end: end, width: uint64(width)}, nil
}

// Len is the number of windows in the span.
func (s WindowSpan) Len() int {
	if s.width == 0 || s.start >= s.end {
		return 0
	}
	return int((s.end - s.start) / s.width)
}

// All yields the windows in ascending order.
func (s WindowSpan) All() iter.Seq[model.BatchWindow] {
	return func(yield func(model.BatchWindow) bool) {
		if s.width == 0 {
			return
		}
		for w := s.start; w < s.end; w += s.width {
			if !yield(model.BatchWindow{Start: uint32(w), End: uint32(w + s.width)}) {
				return
			}
		}
	}
}
