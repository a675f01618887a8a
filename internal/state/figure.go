package state

import (
	"fmt"
	"log"
	"math"
	"sync"

	"GeoBoard/internal/geometry"
)

const (
	// bisectorHalfLength is the half-length of the perpendicular
	// bisector drawn through the midpoint of AB.
	bisectorHalfLength = 80
	// parallelDemoLength is the drawn length of the line through C
	// parallel to AB.
	parallelDemoLength = 160
)

// stamp records which op last moved a point, for last-writer-wins merge.
type stamp struct {
	lamport uint64
	site    string
}

// Figure owns the ordered labeled points, the display mode and the
// drag state. All derived constructs are recomputed from scratch on
// every mutation; the only state machine is "dragging / not dragging".
type Figure struct {
	mu     sync.RWMutex
	points []NamedPoint
	mode   Mode
	shear  float64

	// dragIndex is the point being dragged, or -1.
	dragIndex int

	// halfW/halfH bound dragging to the visible canvas; zero means
	// unbounded.
	halfW, halfH float64

	clock    *Clock
	lastMove map[int]stamp

	// OnChange fires after any mutation that altered the figure.
	OnChange func()
	// OnOp fires for every local mutation, for session broadcast.
	OnOp func(Op)
}

// NewFigure creates the default four-point figure.
func NewFigure() *Figure {
	return &Figure{
		points: []NamedPoint{
			{Label: "A", Pos: geometry.Pt(-120, -80)},
			{Label: "B", Pos: geometry.Pt(150, 120)},
			{Label: "C", Pos: geometry.Pt(-80, 150)},
			{Label: "D", Pos: geometry.Pt(120, -120)},
		},
		mode:      ModeBoth,
		dragIndex: -1,
		clock:     NewClock(),
		lastMove:  make(map[int]stamp),
	}
}

// Site returns the session's site ID.
func (f *Figure) Site() string {
	return f.clock.Site()
}

// Len returns the number of points.
func (f *Figure) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.points)
}

// Points returns a copy of the current points.
func (f *Figure) Points() []NamedPoint {
	f.mu.RLock()
	defer f.mu.RUnlock()
	pts := make([]NamedPoint, len(f.points))
	copy(pts, f.points)
	return pts
}

// Mode returns the active display mode.
func (f *Figure) Mode() Mode {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.mode
}

// SetBounds constrains dragging to |x| <= halfW, |y| <= halfH.
func (f *Figure) SetBounds(halfW, halfH float64) {
	f.mu.Lock()
	f.halfW, f.halfH = halfW, halfH
	f.mu.Unlock()
}

// SetShear sets the shear factor of the animated affine demonstration.
// Driven by the UI ticker; does not emit an op.
func (f *Figure) SetShear(k float64) {
	f.mu.Lock()
	f.shear = k
	f.mu.Unlock()
}

// StartDrag marks the point at index as actively dragged. An
// out-of-range index is ignored.
func (f *Figure) StartDrag(index int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if index < 0 || index >= len(f.points) {
		log.Printf("[FIGURE] StartDrag: index %d out of range, ignoring", index)
		return
	}
	f.dragIndex = index
}

// Dragging returns the active drag index, if any.
func (f *Figure) Dragging() (int, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.dragIndex, f.dragIndex >= 0
}

// MoveDrag moves the actively dragged point to (x, y). No-op when no
// drag is active.
func (f *Figure) MoveDrag(x, y float64) {
	f.mu.Lock()
	if f.dragIndex < 0 {
		f.mu.Unlock()
		return
	}
	pos := f.clamp(geometry.Pt(x, y))
	idx := f.dragIndex
	f.points[idx].Pos = pos
	op := Op{
		Type:    OpMovePoint,
		Index:   idx,
		Pos:     pos,
		Lamport: f.clock.Tick(),
		Site:    f.clock.Site(),
	}
	f.lastMove[idx] = stamp{op.Lamport, op.Site}
	f.mu.Unlock()

	f.emit(op)
}

// EndDrag clears the active-drag marker. The point count is never
// altered by a drag sequence.
func (f *Figure) EndDrag() {
	f.mu.Lock()
	f.dragIndex = -1
	f.mu.Unlock()
}

// SetMode switches the display mode. Invalid modes are ignored; setting
// the current mode again changes nothing and emits nothing.
func (f *Figure) SetMode(m Mode) {
	if !m.Valid() {
		log.Printf("[FIGURE] SetMode: invalid mode %q, ignoring", m)
		return
	}
	f.mu.Lock()
	if f.mode == m {
		f.mu.Unlock()
		return
	}
	f.mode = m
	op := Op{
		Type:    OpSetMode,
		Mode:    m,
		Lamport: f.clock.Tick(),
		Site:    f.clock.Site(),
	}
	f.mu.Unlock()

	f.emit(op)
}

// HitTest returns the index of the first point within radius of p.
func (f *Figure) HitTest(p geometry.Point, radius float64) (int, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for i, np := range f.points {
		if np.Pos.Distance(p) <= radius {
			return i, true
		}
	}
	return -1, false
}

// Snapshot returns an op carrying the whole figure, for newly joined
// viewers.
func (f *Figure) Snapshot() Op {
	f.mu.RLock()
	defer f.mu.RUnlock()
	pts := make([]NamedPoint, len(f.points))
	copy(pts, f.points)
	return Op{
		Type:    OpSnapshot,
		Mode:    f.mode,
		Points:  pts,
		Lamport: f.clock.Tick(),
		Site:    f.clock.Site(),
	}
}

// ApplyRemote merges an op received from the session into the figure.
// Move ops apply last-writer-wins per point; stale ops are dropped.
// Returns true when the figure changed.
func (f *Figure) ApplyRemote(op Op) bool {
	f.mu.Lock()
	f.clock.Witness(op.Lamport)

	changed := false
	switch op.Type {
	case OpMovePoint:
		if op.Index < 0 || op.Index >= len(f.points) {
			log.Printf("[FIGURE] remote move: index %d out of range, ignoring", op.Index)
			break
		}
		if last, ok := f.lastMove[op.Index]; ok && Before(op.Lamport, op.Site, last.lamport, last.site) {
			break // stale
		}
		f.points[op.Index].Pos = op.Pos
		f.lastMove[op.Index] = stamp{op.Lamport, op.Site}
		changed = true
	case OpSetMode:
		if op.Mode.Valid() && f.mode != op.Mode {
			f.mode = op.Mode
			changed = true
		}
	case OpSnapshot:
		if op.Mode.Valid() {
			f.mode = op.Mode
		}
		f.points = make([]NamedPoint, len(op.Points))
		copy(f.points, op.Points)
		f.lastMove = make(map[int]stamp)
		changed = true
	default:
		log.Printf("[FIGURE] unknown remote op type %q", op.Type)
	}
	f.mu.Unlock()

	if changed && f.OnChange != nil {
		f.OnChange()
	}
	return changed
}

// Constructs derives the construct set for the active mode from the
// current point positions. Purely a function of points, mode and shear.
func (f *Figure) Constructs() ConstructSet {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var cs ConstructSet
	if f.mode != ModeAffine {
		f.euclideanConstructs(&cs)
	}
	if f.mode != ModeEuclidean {
		f.affineConstructs(&cs)
	}
	return cs
}

func (f *Figure) euclideanConstructs(cs *ConstructSet) {
	if len(f.points) < 2 {
		return
	}
	a, b := f.points[0].Pos, f.points[1].Pos
	ab := geometry.Segment{A: a, B: b}

	cs.Segments = append(cs.Segments,
		LabeledSegment{Seg: ab, Kind: SegBase, Label: "AB"},
		LabeledSegment{Seg: geometry.PerpendicularBisector(ab, bisectorHalfLength), Kind: SegPerpendicular},
	)
	cs.Readouts = append(cs.Readouts,
		Readout{Text: fmt.Sprintf("d(A,B) = %.1f", ab.Length())},
	)
	if len(f.points) >= 3 {
		c := f.points[2].Pos
		deg := geometry.Angle(a, b, c) * 180 / math.Pi
		cs.Readouts = append(cs.Readouts,
			Readout{Text: fmt.Sprintf("angle(BAC) = %.1f deg", deg)},
		)
	}
}

func (f *Figure) affineConstructs(cs *ConstructSet) {
	// Fixed family of parallel demonstration lines sharing one
	// direction vector.
	for i := 0; i < 3; i++ {
		offset := float64(i*45 - 45)
		cs.Segments = append(cs.Segments, LabeledSegment{
			Seg: geometry.Segment{
				A: geometry.Pt(-250, -150+offset),
				B: geometry.Pt(250, 150+offset),
			},
			Kind: SegParallel,
		})
	}

	if len(f.points) < 3 {
		return
	}
	a, b, c := f.points[0].Pos, f.points[1].Pos, f.points[2].Pos
	ab := geometry.Segment{A: a, B: b}

	// Line through C parallel to AB: parallel by construction, so it
	// stays parallel wherever the points are dragged. Drawn at a fixed
	// length, so the two parallels generally have different lengths.
	dir := ab.Direction().Normalize().Mul(parallelDemoLength)
	cs.Segments = append(cs.Segments,
		LabeledSegment{
			Seg:   geometry.Segment{A: c, B: c.Add(dir)},
			Kind:  SegParallel,
			Label: "C || AB",
		},
	)

	// Triangle ABC and its shear image.
	tri := []geometry.Segment{
		{A: a, B: b},
		{A: b, B: c},
		{A: c, B: a},
	}
	sheared := geometry.Shear(f.shear)
	for _, e := range tri {
		cs.Segments = append(cs.Segments,
			LabeledSegment{Seg: e, Kind: SegTriangle},
			LabeledSegment{Seg: sheared.ApplySegment(e), Kind: SegSheared},
		)
	}

	mid := ab.Midpoint()
	cs.Readouts = append(cs.Readouts,
		Readout{Text: "Parallel lines remain parallel"},
		Readout{Text: fmt.Sprintf("M divides AB at t = %.2f", geometry.Ratio(a, b, mid))},
	)
}

func (f *Figure) clamp(p geometry.Point) geometry.Point {
	if f.halfW > 0 {
		if p.X > f.halfW {
			p.X = f.halfW
		}
		if p.X < -f.halfW {
			p.X = -f.halfW
		}
	}
	if f.halfH > 0 {
		if p.Y > f.halfH {
			p.Y = f.halfH
		}
		if p.Y < -f.halfH {
			p.Y = -f.halfH
		}
	}
	return p
}

func (f *Figure) emit(op Op) {
	if f.OnOp != nil {
		f.OnOp(op)
	}
	if f.OnChange != nil {
		f.OnChange()
	}
}
