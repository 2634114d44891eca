package main

//
// Exits lead one way, from the room holding them to the room with
// the destination key.
//
type Exit struct {
	direction   string
	destination int
}

func (e Exit) Direction() string { return e.direction }
func (e Exit) Destination() int { return e.destination }

// Item is something in a room that can be looked at but not taken.
type Item struct {
	noun        string
	description string
}

func (i Item) Noun() string { return i.noun }
func (i Item) Description() string { return i.description }

// EnterHook runs after the player walks into a room.
type EnterHook func(s *GameSession)

//
// A room is a place in the world.
//
type Room struct {
	Object
	image string

	exits     map[string]int
	exitOrder []string

	items     map[string]string
	itemOrder []string

	grabbables *NounSet

	onEnter EnterHook
}

func newRoom(key int, name string, image string) *Room {
	return &Room{
		Object:     newObject(key, name),
		image:      image,
		exits:      make(map[string]int),
		items:      make(map[string]string),
		grabbables: NewNounSet(),
	}
}

func (r *Room) Image() string {
	return r.image
}

func (r *Room) String() string {
	return "You are in the " + r.name + "."
}

// addExit points direction at the room with the given key. Adding the
// same direction again replaces the old destination. World.NewExit is
// the only caller, so destinations always exist.
func (r *Room) addExit(direction string, destination int) {
	direction = normalize(direction)
	if _, exists := r.exits[direction]; !exists {
		r.exitOrder = append(r.exitOrder, direction)
	}
	r.exits[direction] = destination
}

// AddItem registers something to look at. A second description for
// the same noun replaces the first.
func (r *Room) AddItem(noun string, description string) {
	noun = normalize(noun)
	if _, exists := r.items[noun]; !exists {
		r.itemOrder = append(r.itemOrder, noun)
	}
	r.items[noun] = description
}

func (r *Room) AddGrabbable(noun string) bool {
	return r.grabbables.Add(noun)
}

func (r *Room) RemoveGrabbable(noun string) {
	r.grabbables.Remove(noun)
}

func (r *Room) Exit(direction string) (int, bool) {
	key, exists := r.exits[direction]
	return key, exists
}

func (r *Room) Item(noun string) (string, bool) {
	desc, exists := r.items[noun]
	return desc, exists
}

func (r *Room) HasGrabbable(noun string) bool {
	return r.grabbables.Contains(noun)
}

func (r *Room) Exits() []Exit {
	exits := make([]Exit, 0, len(r.exitOrder))
	for _, d := range r.exitOrder {
		exits = append(exits, Exit{direction: d, destination: r.exits[d]})
	}
	return exits
}

func (r *Room) Items() []Item {
	items := make([]Item, 0, len(r.itemOrder))
	for _, n := range r.itemOrder {
		items = append(items, Item{noun: n, description: r.items[n]})
	}
	return items
}

func (r *Room) Grabbables() []string {
	return r.grabbables.Nouns()
}

func (r *Room) SetOnEnter(hook EnterHook) {
	r.onEnter = hook
}
