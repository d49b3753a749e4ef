package world

// Pt is a grid coordinate. X grows to the right, Y grows up.
type Pt struct {
	X int
	Y int
}

func (p Pt) Plus(other Pt) Pt {
	return Pt{p.X + other.X, p.Y + other.Y}
}
