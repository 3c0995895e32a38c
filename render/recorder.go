package render

// Recorder is a headless Backend that copies every submitted batch
// Batches live in frame memory, so the copies are the only safe view after Submit
type Recorder struct {
	Submits      int
	LineVertices []Vertex
	LineIndices  []uint32
	QuadVertices []Vertex
	QuadIndices  []uint32
}

func (r *Recorder) Submit(b *Batch) {
	r.Submits++
	lv, li := b.Lines()
	qv, qi := b.Quads()
	r.LineVertices = append(r.LineVertices[:0], lv...)
	r.LineIndices = append(r.LineIndices[:0], li...)
	r.QuadVertices = append(r.QuadVertices[:0], qv...)
	r.QuadIndices = append(r.QuadIndices[:0], qi...)
}

// Lines returns the number of line segments in the last batch
func (r *Recorder) Lines() int { return len(r.LineIndices) / 2 }

// Quads returns the number of quads in the last batch
func (r *Recorder) Quads() int { return len(r.QuadIndices) / 6 }
