package generation

import (
	"github.com/zyedidia/generic/queue"

	"ebiten-caves/components"
)

// Room is an open region that survived small region elimination
type Room struct {
	Tiles     []components.Tile
	EdgeTiles []components.Tile // open tiles touching a wall or the map edge
}

// Size returns the number of tiles in the room
func (r *Room) Size() int {
	return len(r.Tiles)
}

var cardinalOffsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Regions partitions every tile of one type (wall when solid is true)
// into 4-connected regions. Each tile is visited once.
func Regions(grid *components.DensityGrid, solid bool) [][]components.Tile {
	done := make([][]bool, grid.Height)
	for y := range done {
		done[y] = make([]bool, grid.Width)
	}

	var regions [][]components.Tile
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if done[y][x] || grid.IsSolid(x, y) != solid {
				continue
			}
			regions = append(regions, floodRegion(grid, x, y, done))
		}
	}
	return regions
}

// floodRegion collects the region containing (startX, startY) with a
// breadth first fill
func floodRegion(grid *components.DensityGrid, startX, startY int, done [][]bool) []components.Tile {
	solid := grid.IsSolid(startX, startY)
	var tiles []components.Tile

	pending := queue.New[components.Tile]()
	pending.Enqueue(components.Tile{X: startX, Y: startY})
	done[startY][startX] = true

	for !pending.Empty() {
		tile := pending.Dequeue()
		tiles = append(tiles, tile)

		for _, d := range cardinalOffsets {
			nx, ny := tile.X+d[0], tile.Y+d[1]
			if !grid.InBounds(nx, ny) || done[ny][nx] || grid.IsSolid(nx, ny) != solid {
				continue
			}
			done[ny][nx] = true
			pending.Enqueue(components.Tile{X: nx, Y: ny})
		}
	}
	return tiles
}

// EliminateSmallRegions turns wall regions smaller than wallThreshold into
// floor, then fills open regions smaller than roomThreshold. The open
// regions left over are returned as rooms.
func EliminateSmallRegions(grid *components.DensityGrid, wallThreshold, roomThreshold int) []*Room {
	for _, region := range Regions(grid, true) {
		if len(region) < wallThreshold {
			setTiles(grid, region, components.DensityEmpty)
		}
	}

	var rooms []*Room
	for _, region := range Regions(grid, false) {
		if len(region) < roomThreshold {
			setTiles(grid, region, components.DensitySolid)
			continue
		}
		rooms = append(rooms, newRoom(grid, region))
	}
	return rooms
}

func newRoom(grid *components.DensityGrid, tiles []components.Tile) *Room {
	room := &Room{Tiles: tiles}
	for _, tile := range tiles {
		for _, d := range cardinalOffsets {
			if grid.IsSolid(tile.X+d[0], tile.Y+d[1]) {
				room.EdgeTiles = append(room.EdgeTiles, tile)
				break
			}
		}
	}
	return room
}

func setTiles(grid *components.DensityGrid, tiles []components.Tile, value uint8) {
	for _, tile := range tiles {
		grid.Cells[tile.Y][tile.X] = value
	}
}
