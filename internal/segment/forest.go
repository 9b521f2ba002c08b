package segment

// Forest is a disjoint-set forest over a run sequence. Parents are stored as
// indices into the same slice, so no run ever references another directly.
//
// The root of every set is its topmost, leftmost run. Find compresses paths
// by halving; once Flatten has run, Find no longer writes and a Forest may be
// read from several goroutines.
type Forest struct {
	runs []Run
}

// NewForest copies runs into a fresh forest in which every run is its own
// root. The runs must be in scan order for Merge to be correct.
func NewForest(runs []Run) *Forest {
	f := &Forest{runs: make([]Run, len(runs))}
	copy(f.runs, runs)
	for i := range f.runs {
		f.runs[i].parent = i
	}
	return f
}

// Len returns the number of runs in the forest.
func (f *Forest) Len() int {
	return len(f.runs)
}

// Run returns the i-th run.
func (f *Forest) Run(i int) Run {
	return f.runs[i]
}

// Find returns the index of the root of run i. Every visited run whose
// grandparent differs from its parent is re-pointed at that grandparent.
func (f *Forest) Find(i int) int {
	for {
		p := f.runs[i].parent
		if p == i {
			return i
		}
		gp := f.runs[p].parent
		if gp != p {
			f.runs[i].parent = gp
		}
		i = gp
	}
}

// Union joins the sets holding runs a and b. The later root in scan order is
// attached beneath the earlier one. It reports whether two distinct sets were
// merged.
func (f *Forest) Union(a, b int) bool {
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return false
	}
	if f.runs[ra].Before(f.runs[rb]) {
		f.runs[rb].parent = ra
	} else {
		f.runs[ra].parent = rb
	}
	return true
}

// Same reports whether runs a and b belong to the same set.
func (f *Forest) Same(a, b int) bool {
	return f.Find(a) == f.Find(b)
}

// Merge unions every pair of runs on adjacent rows whose x-intervals overlap
// and returns the number of successful unions.
//
// The sweep keeps a trailing index j behind the leading index i. j moves on
// once its run lies more than one row above run i, or ends before run i ends
// on the row directly above, since it can then overlap nothing further along
// the row of i. Otherwise i moves on. Each step advances one index, so the
// sweep costs O(n) adjacency checks.
func (f *Forest) Merge() int {
	merged := 0
	i, j := 0, 0
	for i < len(f.runs) {
		ri, rj := f.runs[i], f.runs[j]
		if rj.Touches(ri) && f.Union(j, i) {
			merged++
		}
		if rj.Y+1 < ri.Y || (rj.Y+1 == ri.Y && rj.XEnd < ri.XEnd) {
			j++
		} else {
			i++
		}
	}
	return merged
}

// Flatten points every run directly at its root.
func (f *Forest) Flatten() {
	for i := range f.runs {
		f.runs[i].parent = f.Find(i)
	}
}

// Roots returns the root indices in scan order.
func (f *Forest) Roots() []int {
	var roots []int
	for i := range f.runs {
		if f.Find(i) == i {
			roots = append(roots, i)
		}
	}
	return roots
}

// Clone returns an independent copy of the forest, parents included.
func (f *Forest) Clone() *Forest {
	c := &Forest{runs: make([]Run, len(f.runs))}
	copy(c.runs, f.runs)
	return c
}
