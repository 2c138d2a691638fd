package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-caves/components"
	"ebiten-caves/config"
	"ebiten-caves/ecs"
	"ebiten-caves/generation"
	"ebiten-caves/meshing"
	"ebiten-caves/systems"
)

const (
	panSpeed  = 8.0 // pixels per frame
	zoomSpeed = 1.02
)

// Game implements ebiten.Game interface.
type Game struct {
	generator *generation.CaveGenerator
	mapSystem *systems.MapSystem
	events    *ecs.EventManager
	camera    *systems.Camera
	renderer  *MeshRenderer

	width, height int

	showOutlines bool
	spawn        components.Vec2
	hasSpawn     bool
	marker       components.Tile
	hasMarker    bool
}

// NewGame creates the viewer and builds the first map
func NewGame(caveConfig generation.CaveConfig, traversal meshing.Traversal, width, height int) (*Game, error) {
	events := ecs.NewEventManager()
	generator := generation.NewCaveGenerator(caveConfig, systems.GetMessageLog().Add)

	opts := systems.DefaultMapOptions()
	opts.Traversal = traversal
	mapSystem, err := systems.NewMapSystem(generator, opts, events, systems.GetMessageLog().Add)
	if err != nil {
		return nil, err
	}

	g := &Game{
		generator:    generator,
		mapSystem:    mapSystem,
		events:       events,
		camera:       systems.NewCamera(config.GetScreenDimensions()),
		renderer:     NewMeshRenderer(),
		width:        width,
		height:       height,
		showOutlines: true,
	}
	events.Subscribe(systems.EventMapRefreshed, g.onMapRefreshed)

	if err := mapSystem.Refresh(width, height, false); err != nil {
		return nil, fmt.Errorf("failed to build initial map: %w", err)
	}
	g.fitCamera()

	systems.GetMessageLog().Add("R: regenerate  T: traversal  O: outlines  U: upscale  Click: nearest open tile")
	systems.GetMessageLog().Add("Arrows: pan  +/-: zoom  F: fit  Esc: quit")
	return g, nil
}

func (g *Game) onMapRefreshed(e ecs.Event) {
	refreshed, ok := e.(systems.MapRefreshedEvent)
	if !ok {
		return
	}
	if refreshed.Regenerated {
		g.fitCamera()
		g.hasMarker = false
	}

	g.spawn, g.hasSpawn = g.mapSystem.FindSpawnPoint(config.SpawnFloorPoints)
	if !g.hasSpawn {
		systems.GetMessageLog().Add("WARNING: no floor is wide enough for a spawn point")
	}
}

func (g *Game) fitCamera() {
	lo, hi := g.mapSystem.Bounds()
	g.camera.FitToBounds(lo, hi, config.MapMargin)
}

func (g *Game) report(err error) {
	if err != nil {
		systems.GetMessageLog().Add("ERROR: " + err.Error())
	}
}

// Update handles input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.report(g.mapSystem.Refresh(g.width, g.height, true))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		opts := g.mapSystem.Options()
		opts.Traversal = opts.Traversal.Next()
		g.mapSystem.SetOptions(opts)
		g.report(g.mapSystem.Rebuild())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		cfg := g.generator.Config()
		cfg.Upscale = !cfg.Upscale
		g.generator.SetConfig(cfg)
		g.report(g.mapSystem.Refresh(g.width, g.height, true))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.showOutlines = !g.showOutlines
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.fitCamera()
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.camera.Pan(-panSpeed, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.camera.Pan(panSpeed, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.camera.Pan(0, -panSpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.camera.Pan(0, panSpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyKPAdd) {
		g.camera.ZoomBy(zoomSpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyKPSubtract) {
		g.camera.ZoomBy(1 / zoomSpeed)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.markNearestOpenTile()
	}

	return nil
}

// markNearestOpenTile finds the open tile closest to the cursor
func (g *Game) markNearestOpenTile() {
	mx, my := ebiten.CursorPosition()
	gx, gy := g.mapSystem.WorldToGrid(g.camera.ScreenToWorld(float64(mx), float64(my)))

	tile, ok := g.mapSystem.FindNearestOpenSpace(int(gx+0.5), int(gy+0.5))
	if !ok {
		systems.GetMessageLog().Add("WARNING: no open space on this map")
		g.hasMarker = false
		return
	}
	g.marker, g.hasMarker = tile, true
	systems.GetMessageLog().Add(fmt.Sprintf("Nearest open tile: (%d, %d)", tile.X, tile.Y))
}

// Draw draws the map, its outlines and the message panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{18, 16, 24, 255})

	mesh := g.mapSystem.Mesh()
	if mesh != nil {
		g.renderer.DrawMesh(screen, mesh, g.camera)
		if g.showOutlines {
			g.renderer.DrawOutlines(screen, mesh, g.camera)
			g.renderer.DrawFloors(screen, g.mapSystem.FloorSegments(config.SpawnFloorPoints), g.camera)
		}
	}

	if g.hasSpawn {
		x, y := g.camera.WorldToScreen(g.spawn)
		vector.DrawFilledCircle(screen, x, y, 5, color.RGBA{80, 220, 120, 255}, true)
	}
	if g.hasMarker {
		x, y := g.camera.WorldToScreen(g.mapSystem.GridToWorld(float64(g.marker.X), float64(g.marker.Y)))
		vector.StrokeCircle(screen, x, y, 6, 2, color.RGBA{255, 255, 0, 255}, true)
	}

	g.drawStatus(screen, mesh)
	g.drawMessagesPanel(screen)
}

func (g *Game) drawStatus(screen *ebiten.Image, mesh *components.Mesh) {
	cfg := g.generator.Config()
	status := fmt.Sprintf("seed %d  traversal %s  upscale %v  FPS %.0f",
		g.generator.Seed(), g.mapSystem.Options().Traversal, cfg.Upscale, ebiten.ActualFPS())
	if mesh != nil {
		rooms, passages := g.generator.LastRun()
		status += fmt.Sprintf("\n%d triangles  %d outlines  %d rooms  %d passages",
			mesh.TriangleCount(), len(mesh.Outlines), rooms, passages)
	}
	ebitenutil.DebugPrintAt(screen, status, 8, 8)
}

// drawMessagesPanel draws the most recent log lines, newest at the bottom
func (g *Game) drawMessagesPanel(screen *ebiten.Image) {
	messages := systems.GetMessageLog().RecentMessages(config.MessageLines)
	for i, msg := range messages {
		row := len(messages) - 1 - i
		y := config.MessagePanelTop + row*config.MessageLineHeight
		vector.DrawFilledRect(screen, 8, float32(y+4), 6, 6, msg.GetColor(), false)
		ebitenutil.DebugPrintAt(screen, msg.Text, 20, y)
	}
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
