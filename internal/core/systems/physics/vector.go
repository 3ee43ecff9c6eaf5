package physics

import "math"

// Vector2 is an immutable 2D point or displacement.
// All operations return new values and never modify the receiver.
type Vector2 struct {
	X, Y float64
}

// NewVector2 creates a Vector2 from its components.
func NewVector2(x, y float64) Vector2 { return Vector2{X: x, Y: y} }

// Zero returns the additive identity (0, 0).
func Zero() Vector2 { return Vector2{} }

// Add returns v + w.
func (v Vector2) Add(w Vector2) Vector2 { return Vector2{X: v.X + w.X, Y: v.Y + w.Y} }

// Sub returns v - w.
func (v Vector2) Sub(w Vector2) Vector2 { return Vector2{X: v.X - w.X, Y: v.Y - w.Y} }

// Mul scales both components by k.
func (v Vector2) Mul(k float64) Vector2 { return Vector2{X: v.X * k, Y: v.Y * k} }

// Div divides both components by k.
// Division by zero follows IEEE-754 and yields ±Inf or NaN components.
func (v Vector2) Div(k float64) Vector2 { return Vector2{X: v.X / k, Y: v.Y / k} }

func (v Vector2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Distance computes the Euclidean distance between two points.
func Distance(a, b Vector2) float64 { return b.Sub(a).Length() }
