package main

import (
	"github.com/go-gl/mathgl/mgl32"

	"gl-scene/core"
)

// skyKey is the clear colour at one point of the cycle, t in [0, 1).
type skyKey struct {
	t      float32
	colour mgl32.Vec3
}

// skyKeys is ordered by t and wraps from the last key back to noon.
var skyKeys = []skyKey{
	{t: 0.00, colour: mgl32.Vec3{0.58, 0.75, 0.95}}, // noon
	{t: 0.22, colour: mgl32.Vec3{0.90, 0.52, 0.18}}, // golden hour
	{t: 0.30, colour: mgl32.Vec3{0.50, 0.22, 0.28}}, // dusk
	{t: 0.50, colour: mgl32.Vec3{0.02, 0.02, 0.06}}, // midnight
	{t: 0.72, colour: mgl32.Vec3{0.55, 0.35, 0.40}}, // dawn
}

// skyCycle drives the clear colour of the offscreen pass.
type skyCycle struct {
	Time   float32 // normalised time of day, 0 is noon
	Length float32 // seconds per full cycle; 0 holds the current time
}

func newSkyCycle(length float32) *skyCycle {
	return &skyCycle{Length: length}
}

func (s *skyCycle) Update(dt float32) {
	if s.Length <= 0 {
		return
	}
	s.Time = core.Wrap(s.Time+dt/s.Length, 1)
}

// ClearColour interpolates between the two keys around the current time.
func (s *skyCycle) ClearColour() mgl32.Vec4 {
	return sampleSky(s.Time).Vec4(1)
}

func sampleSky(t float32) mgl32.Vec3 {
	t = core.Wrap(t, 1)
	n := len(skyKeys)
	for i := range skyKeys {
		a := skyKeys[i]
		b := skyKeys[(i+1)%n]
		end := b.t
		if i == n-1 {
			end = 1
		}
		if t >= a.t && t < end {
			local := (t - a.t) / (end - a.t)
			return a.colour.Add(b.colour.Sub(a.colour).Mul(local))
		}
	}
	return skyKeys[0].colour
}
