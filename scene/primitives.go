package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"gl-scene/core"
)

var white = mgl32.Vec3{1, 1, 1}

// terrainTileCells is how many grid cells one repetition of the terrain
// texture covers.
const terrainTileCells = 4

// GenerateQuad builds a w×h rectangle in the XY plane with its lower-left
// corner at the origin, facing +Z.
func GenerateQuad(w, h float32) *Mesh {
	normal := mgl32.Vec3{0, 0, 1}
	m := NewMesh("Quad")
	m.Vertices = []core.Vertex{
		{Position: mgl32.Vec3{0, 0, 0}, Colour: white, TexCoord: mgl32.Vec2{0, 0}, Normal: normal},
		{Position: mgl32.Vec3{w, 0, 0}, Colour: white, TexCoord: mgl32.Vec2{1, 0}, Normal: normal},
		{Position: mgl32.Vec3{w, h, 0}, Colour: white, TexCoord: mgl32.Vec2{1, 1}, Normal: normal},
		{Position: mgl32.Vec3{0, h, 0}, Colour: white, TexCoord: mgl32.Vec2{0, 1}, Normal: normal},
	}
	m.Indices = []uint32{0, 1, 2, 2, 3, 0}
	return m
}

// cubeFace describes one face by its outward normal and two in-plane axes
// with u × v = normal, so corners listed c-u-v, c+u-v, c+u+v, c-u+v wind CCW
// seen from outside.
type cubeFace struct {
	normal, u, v mgl32.Vec3
}

var cubeFaces = [6]cubeFace{
	{normal: mgl32.Vec3{0, 0, 1}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 0, -1}, u: mgl32.Vec3{-1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{1, 0, 0}, u: mgl32.Vec3{0, 0, -1}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{-1, 0, 0}, u: mgl32.Vec3{0, 0, 1}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, -1}},
	{normal: mgl32.Vec3{0, -1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, 1}},
}

// GenerateCube builds a box centred on the origin. Faces do not share
// vertices so each gets its own normal and a full 0..1 UV square.
func GenerateCube(dims mgl32.Vec3) *Mesh {
	half := dims.Mul(0.5)
	scale := func(v mgl32.Vec3) mgl32.Vec3 {
		return mgl32.Vec3{v[0] * half[0], v[1] * half[1], v[2] * half[2]}
	}

	m := NewMesh("Cube")
	m.Vertices = make([]core.Vertex, 0, 24)
	m.Indices = make([]uint32, 0, 36)

	corners := [4]struct {
		su, sv float32
		uv     mgl32.Vec2
	}{
		{-1, -1, mgl32.Vec2{0, 0}},
		{1, -1, mgl32.Vec2{1, 0}},
		{1, 1, mgl32.Vec2{1, 1}},
		{-1, 1, mgl32.Vec2{0, 1}},
	}

	for i, f := range cubeFaces {
		for _, c := range corners {
			p := f.normal.Add(f.u.Mul(c.su)).Add(f.v.Mul(c.sv))
			m.Vertices = append(m.Vertices, core.Vertex{
				Position: scale(p),
				Colour:   white,
				TexCoord: c.uv,
				Normal:   f.normal,
			})
		}
		base := uint32(i * 4)
		m.Indices = append(m.Indices, base, base+1, base+2, base+2, base+3, base)
	}
	return m
}

// GenerateTerrain builds a flat n×n vertex grid covering worldSize units on
// X and Z, stored row-major (index = z*n + x). Fewer than two vertices per
// edge yields an empty mesh.
func GenerateTerrain(worldSize float32, n int) *Mesh {
	m := NewMesh("Terrain")
	if n < 2 {
		return m
	}

	step := worldSize / float32(n-1)
	m.Vertices = make([]core.Vertex, 0, n*n)
	for z := 0; z < n; z++ {
		for x := 0; x < n; x++ {
			m.Vertices = append(m.Vertices, core.Vertex{
				Position: mgl32.Vec3{float32(x) * step, 0, float32(z) * step},
				Colour:   white,
				TexCoord: mgl32.Vec2{float32(x) / terrainTileCells, float32(z) / terrainTileCells},
				Normal:   mgl32.Vec3{0, 1, 0},
			})
		}
	}

	m.Indices = make([]uint32, 0, (n-1)*(n-1)*6)
	for z := 0; z < n-1; z++ {
		for x := 0; x < n-1; x++ {
			topLeft := uint32(z*n + x)
			topRight := topLeft + 1
			bottomLeft := uint32((z+1)*n + x)
			bottomRight := bottomLeft + 1

			m.Indices = append(m.Indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight,
			)
		}
	}
	return m
}
