package generation

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// NoRoomSet is the id of a room that has not been connected yet
const NoRoomSet = -1

// RoomSets tracks which rooms are joined by passages. It is a disjoint set
// over room indices with path compression; each root carries the set id.
type RoomSets struct {
	parent      []int
	size        []int
	label       []int
	nextLabel   int
	connections int
}

// NewRoomSets creates n unconnected rooms
func NewRoomSets(n int) *RoomSets {
	s := &RoomSets{
		parent: make([]int, n),
		size:   make([]int, n),
		label:  make([]int, n),
	}
	for i := 0; i < n; i++ {
		s.parent[i] = i
		s.size[i] = 1
		s.label[i] = NoRoomSet
	}
	return s
}

func (s *RoomSets) find(i int) int {
	root := i
	for s.parent[root] != root {
		root = s.parent[root]
	}
	for i != root {
		next := s.parent[i]
		s.parent[i] = root
		i = next
	}
	return root
}

// SetID returns the room's set id, or NoRoomSet
func (s *RoomSets) SetID(room int) int {
	return s.label[s.find(room)]
}

// IsInSameRoomSet reports whether two rooms are joined, directly or not
func (s *RoomSets) IsInSameRoomSet(a, b int) bool {
	return s.find(a) == s.find(b)
}

// Connect joins the sets of two rooms. The joined set takes a fresh id if
// neither room had one, the existing id if one did, and the smaller id if
// both did.
func (s *RoomSets) Connect(a, b int) int {
	ra, rb := s.find(a), s.find(b)
	la, lb := s.label[ra], s.label[rb]

	var label int
	switch {
	case la == NoRoomSet && lb == NoRoomSet:
		label = s.nextLabel
		s.nextLabel++
	case la == NoRoomSet:
		label = lb
	case lb == NoRoomSet:
		label = la
	default:
		label = min(la, lb)
	}

	if ra != rb {
		if s.size[ra] < s.size[rb] {
			ra, rb = rb, ra
		}
		s.parent[rb] = ra
		s.size[ra] += s.size[rb]
	}
	s.label[ra] = label
	s.connections++
	return label
}

// Connections returns how many times Connect was called
func (s *RoomSets) Connections() int {
	return s.connections
}

// Len returns the number of rooms tracked
func (s *RoomSets) Len() int {
	return len(s.parent)
}

// LiveSets returns the number of distinct sets, counting every
// unconnected room as its own set
func (s *RoomSets) LiveSets() int {
	roots := mapset.New[int]()
	for i := range s.parent {
		roots.Put(s.find(i))
	}
	return roots.Size()
}

// LiveSetIDs returns the distinct assigned set ids in ascending order
func (s *RoomSets) LiveSetIDs() []int {
	labels := mapset.New[int]()
	for i := range s.parent {
		if id := s.SetID(i); id != NoRoomSet {
			labels.Put(id)
		}
	}

	ids := make([]int, 0, labels.Size())
	labels.Each(func(id int) {
		ids = append(ids, id)
	})
	sort.Ints(ids)
	return ids
}
