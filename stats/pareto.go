package stats

// ParetoPoint is a labeled candidate with two metrics, both maximized.
type ParetoPoint struct {
	Label string
	X, Y  float64
}

// ParetoFront returns the points not dominated by any other: a point is
// dominated when some other point is at least as good on both metrics and
// strictly better on one. Input order is preserved.
func ParetoFront(points []ParetoPoint) []ParetoPoint {
	var front []ParetoPoint
	for i, p := range points {
		dominated := false
		for j, q := range points {
			if i == j {
				continue
			}
			if q.X >= p.X && q.Y >= p.Y && (q.X > p.X || q.Y > p.Y) {
				dominated = true
				break
			}
		}
		if !dominated {
			front = append(front, p)
		}
	}
	return front
}
