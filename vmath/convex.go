package vmath

// RandomConvexPolygon builds a convex polygon of n vertices within a scale-sized box
// Random coordinates per axis are split into two monotone chains whose deltas
// sum to zero; deltas are paired into edge vectors, sorted by angle and walked
// in order, which closes the loop and guarantees convexity. The result winds
// counter-clockwise and is centered on its bounding box.
// n is clamped to [3, MaxPolygonVertices]; nothing is allocated.
func RandomConvexPolygon(r *Random, n int, scale float64) Polygon {
	n = max(3, min(n, MaxPolygonVertices))

	var xs, ys [MaxPolygonVertices]float64
	for i := 0; i < n; i++ {
		xs[i] = r.Float() * scale
		ys[i] = r.Float() * scale
	}
	insertionSort(xs[:n])
	insertionSort(ys[:n])

	var dx, dy [MaxPolygonVertices]float64
	chainComponents(r, xs[:n], dx[:n])
	chainComponents(r, ys[:n], dy[:n])

	shuffle(r, dx[:n])
	shuffle(r, dy[:n])

	var edges [MaxPolygonVertices]V2
	for i := 0; i < n; i++ {
		edges[i] = V2{dx[i], dy[i]}
	}
	for i := 1; i < n; i++ {
		for j := i; j > 0 && edges[j-1].Angle() > edges[j].Angle(); j-- {
			edges[j], edges[j-1] = edges[j-1], edges[j]
		}
	}

	var poly Polygon
	poly.N = n
	bounds := InvertedRect().Include(poly.V[0])
	for i := 1; i < n; i++ {
		poly.V[i] = poly.V[i-1].Add(edges[i-1])
		bounds = bounds.Include(poly.V[i])
	}

	center := bounds.Center()
	for i := 0; i < n; i++ {
		poly.V[i] = poly.V[i].Sub(center)
	}
	return poly
}

// chainComponents converts sorted coordinates into n signed deltas that sum to zero
// Interior points go randomly to an upper or lower chain running min -> max;
// the upper chain contributes positive deltas, the lower one negative
func chainComponents(r *Random, sorted, out []float64) {
	n := len(sorted)
	lo, hi := sorted[0], sorted[n-1]
	lastTop, lastBottom := lo, lo

	k := 0
	for i := 1; i < n-1; i++ {
		c := sorted[i]
		if r.Coin() {
			out[k] = c - lastTop
			lastTop = c
		} else {
			out[k] = lastBottom - c
			lastBottom = c
		}
		k++
	}
	out[k] = hi - lastTop
	out[k+1] = lastBottom - hi
}

// shuffle is a Fisher-Yates pass driven by the sequence
func shuffle(r *Random, values []float64) {
	for i := len(values) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		values[i], values[j] = values[j], values[i]
	}
}
