package tmpoly

// Vector is a point in the plane, held by value throughout this package.
type Vector struct {
	X, Y Scalar
}

func (v Vector) sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y}
}

func (v Vector) add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y}
}

func (v Vector) scale(s Scalar) Vector {
	return Vector{v.X * s, v.Y * s}
}

// cross returns the z component of the 3D cross product of v and o, treated
// as vectors from the origin.
func (v Vector) cross(o Vector) Scalar {
	return v.X*o.Y - v.Y*o.X
}

func (v Vector) dot(o Vector) Scalar {
	return v.X*o.X + v.Y*o.Y
}
