package main

import (
	"github.com/pkg/errors"
)

// Nowhere is the location of a player who is no longer in any room.
const Nowhere = 0

//
// The world is the sum total of all rooms. Rooms refer to each other
// by key, never by pointer, so the world owns every one of them.
//
type World struct {
	rooms   map[int]*Room
	order   []int
	byName  map[string]int
	start   int
	lastKey int
}

func NewWorld() *World {
	return &World{rooms: make(map[int]*Room), byName: make(map[string]int)}
}

// Keys start at 1 so that Nowhere never names a room.
func (w *World) idGen() int {
	w.lastKey++
	return w.lastKey
}

func (w *World) NewRoom(name string, image string) (*Room, error) {
	normalName := normalize(name)
	if normalName == "" {
		return nil, errors.New("room name must not be empty")
	}

	if _, exists := w.byName[normalName]; exists {
		return nil, errors.Errorf("a room named %q already exists", name)
	}

	r := newRoom(w.idGen(), name, image)
	w.rooms[r.key] = r
	w.order = append(w.order, r.key)
	w.byName[normalName] = r.key

	if w.start == Nowhere {
		w.start = r.key
	}

	return r, nil
}

// NewExit links source to destination. Both rooms must belong to this
// world. An existing exit in the same direction is replaced.
func (w *World) NewExit(source *Room, direction string, destination *Room) error {
	if source == nil || w.rooms[source.key] != source {
		return errors.New("source room is not part of this world")
	}

	if destination == nil || w.rooms[destination.key] != destination {
		return errors.Errorf("exit %q from %s leads to a room outside this world",
			direction, source.name)
	}

	if normalize(direction) == "" {
		return errors.Errorf("exit from %s has no direction", source.name)
	}

	source.addExit(direction, destination.key)
	return nil
}

func (w *World) Room(key int) (*Room, bool) {
	r, exists := w.rooms[key]
	return r, exists
}

func (w *World) RoomNamed(name string) (*Room, bool) {
	key, exists := w.byName[normalize(name)]
	if !exists {
		return nil, false
	}
	return w.rooms[key], true
}

// Rooms returns every room in the order it was created.
func (w *World) Rooms() []*Room {
	rooms := make([]*Room, 0, len(w.order))
	for _, k := range w.order {
		rooms = append(rooms, w.rooms[k])
	}
	return rooms
}

// Start is the room new sessions begin in. It defaults to the first
// room created.
func (w *World) Start() *Room {
	return w.rooms[w.start]
}

func (w *World) SetStart(r *Room) error {
	if r == nil || w.rooms[r.key] != r {
		return errors.New("starting room is not part of this world")
	}
	w.start = r.key
	return nil
}

func (w *World) NumExits() int {
	n := 0
	for _, r := range w.rooms {
		n += len(r.exits)
	}
	return n
}
