package state

import "GeoBoard/internal/geometry"

// Mode selects which family of constructs the figure derives and shows.
type Mode string

const (
	ModeEuclidean Mode = "euclidean"
	ModeAffine    Mode = "affine"
	ModeBoth      Mode = "both"
)

// Valid reports whether m is one of the three display modes.
func (m Mode) Valid() bool {
	return m == ModeEuclidean || m == ModeAffine || m == ModeBoth
}

// NamedPoint is a draggable labeled point of the figure.
type NamedPoint struct {
	Label string         `json:"label"`
	Pos   geometry.Point `json:"pos"`
}

// SegmentKind tells the renderer how to style a derived segment.
type SegmentKind string

const (
	SegBase          SegmentKind = "base"          // the main segment AB
	SegPerpendicular SegmentKind = "perpendicular" // perpendicular bisector
	SegParallel      SegmentKind = "parallel"      // parallel demonstration line
	SegTriangle      SegmentKind = "triangle"      // triangle ABC edge
	SegSheared       SegmentKind = "sheared"       // shear image of a triangle edge
)

// LabeledSegment is one derived segment of the construct set.
type LabeledSegment struct {
	Seg   geometry.Segment `json:"seg"`
	Kind  SegmentKind      `json:"kind"`
	Label string           `json:"label,omitempty"`
}

// Readout is a live text measurement shown beside the canvas, such as
// "d(A,B) = 276.6".
type Readout struct {
	Text string `json:"text"`
}

// ConstructSet is everything derived from the current point positions.
// It holds no state of its own: it is recomputed in full after every
// mutation and is always consistent with the latest positions.
type ConstructSet struct {
	Segments []LabeledSegment `json:"segments"`
	Readouts []Readout        `json:"readouts"`
}

// OpType identifies a figure mutation for session sharing.
type OpType string

const (
	OpMovePoint OpType = "move_point"
	OpSetMode   OpType = "set_mode"
	OpSnapshot  OpType = "snapshot"
)

// Op is a single replicated figure mutation. Move and mode ops carry a
// Lamport timestamp and site ID so viewers apply them last-writer-wins;
// a snapshot carries the whole figure for a newly joined viewer.
type Op struct {
	Type    OpType         `json:"type"`
	Index   int            `json:"index,omitempty"`
	Pos     geometry.Point `json:"pos,omitempty"`
	Mode    Mode           `json:"mode,omitempty"`
	Points  []NamedPoint   `json:"points,omitempty"`
	Lamport uint64         `json:"lamport"`
	Site    string         `json:"site"`
}
