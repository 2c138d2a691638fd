package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-caves/components"
	"ebiten-caves/systems"
)

// maxBatchVertices keeps every DrawTriangles call within uint16 indices
const maxBatchVertices = 65535 / 3 * 3

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// MeshRenderer draws cave meshes through a camera
type MeshRenderer struct {
	vertices []ebiten.Vertex
	indices  []uint16

	SolidColor   color.RGBA
	OutlineColor color.RGBA
	FloorColor   color.RGBA
}

// NewMeshRenderer creates a renderer with the default palette
func NewMeshRenderer() *MeshRenderer {
	return &MeshRenderer{
		SolidColor:   color.RGBA{92, 78, 70, 255},
		OutlineColor: color.RGBA{230, 200, 150, 255},
		FloorColor:   color.RGBA{80, 220, 120, 255},
	}
}

// DrawMesh fills every triangle of the mesh
func (r *MeshRenderer) DrawMesh(screen *ebiten.Image, mesh *components.Mesh, camera *systems.Camera) {
	cr := float32(r.SolidColor.R) / 255
	cg := float32(r.SolidColor.G) / 255
	cb := float32(r.SolidColor.B) / 255
	ca := float32(r.SolidColor.A) / 255

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for _, idx := range mesh.Triangles {
		x, y := camera.WorldToScreen(mesh.Vertices[idx])
		r.indices = append(r.indices, uint16(len(r.vertices)))
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX: x, DstY: y,
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
		if len(r.vertices) == maxBatchVertices {
			r.flush(screen)
		}
	}
	r.flush(screen)
}

func (r *MeshRenderer) flush(screen *ebiten.Image) {
	if len(r.indices) > 0 {
		screen.DrawTriangles(r.vertices, r.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
	}
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}

// DrawOutlines strokes every traced outline
func (r *MeshRenderer) DrawOutlines(screen *ebiten.Image, mesh *components.Mesh, camera *systems.Camera) {
	for _, outline := range mesh.Outlines {
		strokePolyline(screen, mesh.OutlinePoints(outline), camera, 1.5, r.OutlineColor)
	}
}

// DrawFloors highlights floor segments
func (r *MeshRenderer) DrawFloors(screen *ebiten.Image, floors [][]components.Vec2, camera *systems.Camera) {
	for _, floor := range floors {
		strokePolyline(screen, floor, camera, 3, r.FloorColor)
	}
}

func strokePolyline(screen *ebiten.Image, points []components.Vec2, camera *systems.Camera, width float32, clr color.Color) {
	for i := 1; i < len(points); i++ {
		x0, y0 := camera.WorldToScreen(points[i-1])
		x1, y1 := camera.WorldToScreen(points[i])
		vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, true)
	}
}
