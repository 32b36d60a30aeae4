package model

import "fmt"

// MaxBlocksPerRequest is the largest block page the node serves in one call.
// The scanner steps through heights in windows of exactly this width.
const MaxBlocksPerRequest uint32 = 50

// HeightRange is a half-open range of block heights [Start, End).
type HeightRange struct {
	Start uint32
	End   uint32
}

// Contains reports whether height lies in the range.
func (r HeightRange) Contains(height uint32) bool {
	return height >= r.Start && height < r.End
}

func (r HeightRange) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// BatchWindow is an aligned page of heights fetched in one call.
type BatchWindow struct {
	Start uint32
	End   uint32
}

func (w BatchWindow) String() string {
	return fmt.Sprintf("[%d, %d)", w.Start, w.End)
}
