package generation

import (
	"fmt"

	"ebiten-caves/components"
)

// roomLink is a candidate passage between two rooms
type roomLink struct {
	roomA, roomB int
	tileA, tileB components.Tile
	distance     int // squared tile distance
}

// ConnectAllRooms carves passages until every room can reach every other.
//
// First every room is linked to its nearest room outside its own set.
// Then, while more than one set is left, every set is linked to the
// nearest room outside it. Each pass at least halves the number of sets,
// so running more passes than there were sets is a bug.
func ConnectAllRooms(grid *components.DensityGrid, rooms []*Room, passageRadius int) *RoomSets {
	sets := NewRoomSets(len(rooms))

	for i := range rooms {
		best, found := nearestLink(rooms, sets, func(a int) bool { return a == i })
		if found {
			connectRooms(grid, sets, best, passageRadius)
		}
	}

	maxPasses := sets.LiveSets()
	for pass := 0; sets.LiveSets() > 1; pass++ {
		if pass >= maxPasses {
			panic(fmt.Sprintf("generation: room connectivity did not converge after %d passes", pass))
		}

		for _, id := range sets.LiveSetIDs() {
			inSet := func(a int) bool { return sets.SetID(a) == id }
			best, found := nearestLink(rooms, sets, inSet)
			if found {
				connectRooms(grid, sets, best, passageRadius)
			}
		}
	}

	return sets
}

// nearestLink finds the closest pair of rooms where the first satisfies
// from and the second lies in a different set
func nearestLink(rooms []*Room, sets *RoomSets, from func(int) bool) (roomLink, bool) {
	var best roomLink
	found := false

	for a := range rooms {
		if !from(a) {
			continue
		}
		for b := range rooms {
			if a == b || sets.IsInSameRoomSet(a, b) {
				continue
			}
			tileA, tileB, distance := closestTiles(rooms[a], rooms[b])
			if !found || distance < best.distance {
				best = roomLink{roomA: a, roomB: b, tileA: tileA, tileB: tileB, distance: distance}
				found = true
			}
		}
	}
	return best, found
}

// closestTiles scans the edge tiles of both rooms. The nearest pair of two
// separate regions always lies on their edges.
func closestTiles(a, b *Room) (components.Tile, components.Tile, int) {
	var bestA, bestB components.Tile
	bestDistance := -1
	for _, ta := range a.EdgeTiles {
		for _, tb := range b.EdgeTiles {
			dx, dy := ta.X-tb.X, ta.Y-tb.Y
			distance := dx*dx + dy*dy
			if bestDistance < 0 || distance < bestDistance {
				bestA, bestB, bestDistance = ta, tb, distance
			}
		}
	}
	return bestA, bestB, bestDistance
}

func connectRooms(grid *components.DensityGrid, sets *RoomSets, link roomLink, passageRadius int) {
	sets.Connect(link.roomA, link.roomB)
	CarvePassage(grid, link.tileA, link.tileB, passageRadius)
}
