package density

import (
	"testing"

	"github.com/McGIllicuddy7/psi/internal/core/systems/physics"
	"github.com/stretchr/testify/assert"
)

func TestFieldStateStoresFields(t *testing.T) {
	loc := physics.NewVector2(3, -4)
	vel := physics.NewVector2(0.5, 0.25)
	s := NewFieldState(loc, vel)

	assert.Equal(t, loc, s.Location)
	assert.Equal(t, vel, s.Velocity)
}

func TestSampleDensityTranslation(t *testing.T) {
	loc := physics.NewVector2(1.5, -0.75)
	s := NewFieldState(loc, physics.Zero())

	assert.Equal(t, 1.0, s.SampleDensity(loc))

	points := []physics.Vector2{
		physics.Zero(),
		physics.NewVector2(2, 2),
		physics.NewVector2(-1, 0.5),
	}
	for _, p := range points {
		assert.Equal(t, Evaluate(p.Sub(loc)), s.SampleDensity(p), "point %v", p)
	}
}

func TestVelocityIsIgnored(t *testing.T) {
	loc := physics.NewVector2(0.25, 0.25)
	a := NewFieldState(loc, physics.Zero())
	b := NewFieldState(loc, physics.NewVector2(100, -100))

	p := physics.NewVector2(0.5, -0.5)
	assert.Equal(t, a.SampleDensity(p), b.SampleDensity(p))
}

func TestDensityFunctionMatchesSampleDensity(t *testing.T) {
	s := NewFieldState(physics.NewVector2(-2, 1), physics.Zero())
	fn := s.DensityFunction()

	for _, p := range []physics.Vector2{{X: -2, Y: 1}, {X: 0, Y: 0}, {X: 3, Y: -1}} {
		assert.Equal(t, s.SampleDensity(p), fn(p))
	}
}

func TestDensityFunctionIsSnapshot(t *testing.T) {
	origin := physics.Zero()
	s := NewFieldState(origin, physics.Zero())
	fn := s.DensityFunction()

	s.MoveTo(physics.NewVector2(10, 10))

	assert.Equal(t, 1.0, fn(origin))
	assert.Equal(t, 1.0, s.SampleDensity(physics.NewVector2(10, 10)))
	assert.Less(t, s.SampleDensity(origin), 1e-100)
}
