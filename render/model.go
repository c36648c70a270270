// Package render is a small software renderer for looking at produced
// polyhedra: camera space transform, painter's algorithm depth sort, backface
// culling, perspective projection and convex polygon rasterisation onto an
// ebiten image.
package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kvsari/polyorb/polyhedron"
)

const (
	nearPlaneZ       = 25
	conversionFactor = 700
)

// Model is a paintable snapshot of a polyhedron: positions, face index
// cycles, face normals and a colour per face, plus the model's accumulated
// rotation.
type Model struct {
	points  []mgl64.Vec3
	faces   [][]int
	normals []mgl64.Vec3
	colours []color.RGBA
	rot     mgl64.Mat4

	drawAllFaces bool
	linesOnly    bool
}

// NewModel snapshots a polyhedron for painting. colourFor picks the colour of
// each face from its index and side count; nil paints everything light grey.
func NewModel(p *polyhedron.Polyhedron, colourFor func(face, sides int) color.RGBA) *Model {
	if colourFor == nil {
		colourFor = func(int, int) color.RGBA {
			return color.RGBA{R: 200, G: 200, B: 200, A: 255}
		}
	}

	faces := p.Faces()
	colours := make([]color.RGBA, len(faces))
	for i, f := range faces {
		colours[i] = colourFor(i, len(f))
	}

	return &Model{
		points:  p.Vertices(),
		faces:   faces,
		normals: p.FaceNormals(),
		colours: colours,
		rot:     mgl64.Ident4(),
	}
}

// SetDrawAllFaces disables backface culling. Useful for meshes whose face
// windings are not consistent, like truncated output.
func (m *Model) SetDrawAllFaces(draw bool) {
	m.drawAllFaces = draw
}

// SetLinesOnly switches the paint between filled and outlined polygons.
func (m *Model) SetLinesOnly(only bool) {
	m.linesOnly = only
}

// Rotate spins the model by the given x and y axis angles in radians,
// composed onto the rotation it already carries.
func (m *Model) Rotate(xAngle, yAngle float64) {
	spin := mgl64.HomogRotate3DY(yAngle).Mul4(mgl64.HomogRotate3DX(xAngle))
	m.rot = spin.Mul4(m.rot)
}

// Paint draws the model centered on (cx, cy) with its center pushed distance
// along the camera z axis. Faces are painted far to near; faces that cross
// the near plane are dropped rather than clipped since a whole polyhedron
// sits comfortably in front of the camera at any sane distance.
func (m *Model) Paint(screen *ebiten.Image, cx, cy int, distance float64) {
	points := make([]mgl64.Vec3, len(m.points))
	for i, p := range m.points {
		points[i] = mgl64.TransformCoordinate(p, m.rot)
		points[i][2] += distance
	}

	normals := make([]mgl64.Vec3, len(m.normals))
	for i, n := range m.normals {
		normals[i] = mgl64.TransformNormal(n, m.rot)
	}

	for _, fi := range m.depthOrder(points) {
		face := m.faces[fi]

		mid := midpoint(points, face)
		if !m.drawAllFaces && normals[fi].Dot(mid) >= 0 {
			continue // facing away
		}

		xs := make([]float32, 0, len(face))
		ys := make([]float32, 0, len(face))
		behind := false
		for _, vi := range face {
			p := points[vi]
			if p.Z() < nearPlaneZ {
				behind = true
				break
			}
			x, y := project(p, cx, cy)
			xs = append(xs, x)
			ys = append(ys, y)
		}
		if behind {
			continue
		}

		col := shade(m.colours[fi], normals[fi], mid)
		if m.linesOnly {
			drawPolygonOutline(screen, xs, ys, 1.0, col)
		} else {
			fillConvexPolygon(screen, xs, ys, col)
			outline := color.RGBA{R: 100, G: 100, B: 100, A: 20}
			drawPolygonOutline(screen, xs, ys, 1.0, outline)
		}
	}
}

// depthOrder sorts face indices so the faces farther from the camera come
// first.
func (m *Model) depthOrder(points []mgl64.Vec3) []int {
	order := make([]int, len(m.faces))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return midpoint(points, m.faces[order[i]]).Len() >
			midpoint(points, m.faces[order[j]]).Len()
	})
	return order
}

func midpoint(points []mgl64.Vec3, face []int) mgl64.Vec3 {
	var sum mgl64.Vec3
	for _, vi := range face {
		sum = sum.Add(points[vi])
	}
	return sum.Mul(1.0 / float64(len(face)))
}

// project drops a camera space point onto the screen through a fixed
// conversion factor perspective divide.
func project(p mgl64.Vec3, cx, cy int) (float32, float32) {
	x := float32(conversionFactor*p.X()/p.Z()) + float32(cx)
	y := float32(conversionFactor*p.Y()/p.Z()) + float32(cy)
	return x, y
}

// shade darkens the face colour by ambient light plus a spotlight cone
// focused down the camera axis.
func shade(base color.RGBA, normal, mid mgl64.Vec3) color.RGBA {
	const ambientLight = 0.65
	const spotlightConePower = 10.0
	const spotlightLightAmount = 1.0 - ambientLight

	diffuse := -normal.Z()
	if diffuse < 0 {
		diffuse = 0
	}

	spotlight := 1.0
	if dist := mid.Len(); dist > 0 {
		cosAngle := mid.Z() / dist
		if cosAngle < 0 {
			cosAngle = 0
		}
		spotlight = math.Pow(cosAngle, spotlightConePower)
	}

	brightness := ambientLight + diffuse*spotlight*spotlightLightAmount

	// Brightness 1.0 leaves the colour alone, 0.0 subtracts 240.
	c := 240 - int(brightness*240)

	const min = 7
	return color.RGBA{
		R: uint8(clamp(int(base.R)-c, min, 255)),
		G: uint8(clamp(int(base.G)-c, min, 255)),
		B: uint8(clamp(int(base.B)-c, min, 255)),
		A: 255,
	}
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
