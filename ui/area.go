package ui

// Area is a pixel rectangle with inclusive corners, (X1,Y1) to (X2,Y2).
type Area struct {
	X1, Y1, X2, Y2 int16
}

func (a Area) Width() int  { return int(a.X2) - int(a.X1) + 1 }
func (a Area) Height() int { return int(a.Y2) - int(a.Y1) + 1 }

// Empty reports whether a covers no pixel.
func (a Area) Empty() bool { return a.X2 < a.X1 || a.Y2 < a.Y1 }

func (a Area) Contains(x, y int16) bool {
	return x >= a.X1 && x <= a.X2 && y >= a.Y1 && y <= a.Y2
}

// Intersect returns the common part of a and b; the result may be Empty.
func (a Area) Intersect(b Area) Area {
	return Area{
		X1: max(a.X1, b.X1),
		Y1: max(a.Y1, b.Y1),
		X2: min(a.X2, b.X2),
		Y2: min(a.Y2, b.Y2),
	}
}

func (a Area) overlaps(b Area) bool { return !a.Intersect(b).Empty() }

func (a Area) union(b Area) Area {
	return Area{
		X1: min(a.X1, b.X1),
		Y1: min(a.Y1, b.Y1),
		X2: max(a.X2, b.X2),
		Y2: max(a.Y2, b.Y2),
	}
}
