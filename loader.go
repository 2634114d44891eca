package main

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed worlds/cave.yaml
var defaultWorld []byte

// ExitDef is a direction and the name of the room it leads to.
type ExitDef struct {
	Direction string `yaml:"direction" json:"direction"`
	To        string `yaml:"to" json:"to"`
}

// ItemDef is a noun and the text shown when it is looked at.
type ItemDef struct {
	Noun string `yaml:"noun" json:"noun"`
	Text string `yaml:"text" json:"text"`
}

type RoomDef struct {
	Name       string    `yaml:"name" json:"name"`
	Image      string    `yaml:"image" json:"image"`
	Exits      []ExitDef `yaml:"exits,omitempty" json:"exits,omitempty"`
	Items      []ItemDef `yaml:"items,omitempty" json:"items,omitempty"`
	Grabbables []string  `yaml:"grabbables,omitempty" json:"grabbables,omitempty"`
}

//
// WorldDef is the declarative description of a world, as read from a
// world file.
//
type WorldDef struct {
	Title      string    `yaml:"title" json:"title"`
	Start      string    `yaml:"start" json:"start"`
	DeathImage string    `yaml:"death_image" json:"death_image"`
	Rooms      []RoomDef `yaml:"rooms" json:"rooms"`
}

// DefaultWorldDef returns the built-in cave.
func DefaultWorldDef() (*WorldDef, error) {
	return ParseWorldDef(defaultWorld, ".yaml")
}

// LoadWorldDef reads a world file. The extension picks the format:
// .json for JSON, anything else for YAML.
func LoadWorldDef(path string) (*WorldDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read world file")
	}

	def, err := ParseWorldDef(data, filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrapf(err, "could not load %s", path)
	}
	return def, nil
}

func ParseWorldDef(data []byte, ext string) (*WorldDef, error) {
	def := &WorldDef{}

	var err error
	if strings.EqualFold(ext, ".json") {
		err = json.Unmarshal(data, def)
	} else {
		err = yaml.Unmarshal(data, def)
	}

	if err != nil {
		return nil, errors.Wrap(err, "malformed world definition")
	}
	return def, nil
}

// Build creates every room first, then links the exits, so exits may
// refer to rooms declared later in the file.
func (d *WorldDef) Build() (*World, error) {
	if len(d.Rooms) == 0 {
		return nil, errors.New("world has no rooms")
	}

	world := NewWorld()

	rooms := make([]*Room, len(d.Rooms))
	for i, rd := range d.Rooms {
		r, err := world.NewRoom(rd.Name, rd.Image)
		if err != nil {
			return nil, errors.Wrapf(err, "room #%d", i+1)
		}

		for _, item := range rd.Items {
			r.AddItem(item.Noun, item.Text)
		}

		for _, noun := range rd.Grabbables {
			r.AddGrabbable(noun)
		}

		rooms[i] = r
	}

	for i, rd := range d.Rooms {
		for _, ed := range rd.Exits {
			dest, exists := world.RoomNamed(ed.To)
			if !exists {
				return nil, errors.Errorf("exit %q from %s leads to unknown room %q",
					ed.Direction, rd.Name, ed.To)
			}

			if err := world.NewExit(rooms[i], ed.Direction, dest); err != nil {
				return nil, err
			}
		}
	}

	if d.Start != "" {
		start, exists := world.RoomNamed(d.Start)
		if !exists {
			return nil, errors.Errorf("starting room %q does not exist", d.Start)
		}

		if err := world.SetStart(start); err != nil {
			return nil, err
		}
	}

	return world, nil
}
