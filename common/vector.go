package common

import "fmt"

// Vector2 is an integer 2D vector used for positions, velocities and offsets.
type Vector2 struct {
	X, Y int
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Scale(k int) Vector2 {
	return Vector2{X: v.X * k, Y: v.Y * k}
}

func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vector2) String() string {
	return fmt.Sprintf("(X:%d, Y:%d)", v.X, v.Y)
}
