package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rodaine/table"
	"github.com/sirupsen/logrus"
)

const GameTitle = "The Cave"

// Start-of-room hint shown under the description.
const lookHint = "You can look around in every room!"

var log = logrus.New()

//
// Abstraction for the terminal that ties the player's screen to a
// game session.
//
type Client struct {
	out        io.Writer
	session    *GameSession
	assets     *AssetLoader
	title      string
	deathImage string
	// The picture currently on screen, if any.
	picture       Asset
	quitRequested bool
}

func NewClient(out io.Writer, session *GameSession, assets *AssetLoader) *Client {
	return &Client{out: out, session: session, assets: assets, title: GameTitle}
}

func (c *Client) Tell(msg string, args ...interface{}) {
	fmt.Fprintf(c.out, msg+"\n", args...)
}

// showRoom loads the picture for wherever the player is now. When it
// can't be loaded the old picture stays up.
func (c *Client) showRoom() {
	ref := c.deathImage
	if here := c.session.CurrentRoom(); here != nil {
		ref = here.Image()
	}

	if asset, ok := c.assets.Load(ref); ok {
		c.picture = asset
	}

	if c.picture.Ref != "" {
		c.Tell("[%s %dx%d]", c.picture.Ref, c.picture.Width, c.picture.Height)
	}
}

func (c *Client) describe(message string) {
	c.Tell("%s", c.session.Describe(message))
}

// handleLine runs one line through the session and draws the result.
func (c *Client) handleLine(line string) {
	resp := c.session.Process(line)

	if resp.Terminate {
		c.quitRequested = true
		return
	}

	if resp.Empty() {
		return
	}

	if resp.RoomChanged {
		c.showRoom()
	}

	c.describe(resp.Text)
}

func welcome(client *Client) {
	client.Tell("-----------------------------------------------------")
	client.Tell("Welcome to %s!", client.title)
	client.Tell("")
	client.Tell("Commands are <verb> <noun>, for example: go east")
	client.Tell("Valid verbs: go look take")
	client.Tell("To leave the game: quit")
	client.Tell("-----------------------------------------------------")
	client.Tell("")
}

//
// Handle the player's input until they quit or the input ends.
//
func connectionLoop(in io.Reader, client *Client) error {
	welcome(client)
	client.showRoom()
	client.describe(lookHint)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		client.handleLine(scanner.Text())

		if client.quitRequested {
			log.Info("Quit requested")
			return nil
		}
	}

	return scanner.Err()
}

func showMap(w io.Writer, world *World) {
	t := table.New("Room", "Image", "Exits", "Items", "Grabbables").WithWriter(w)

	for _, r := range world.Rooms() {
		var exits, items []string
		for _, e := range r.Exits() {
			dest, _ := world.Room(e.Destination())
			exits = append(exits, e.Direction()+"->"+dest.Name())
		}
		for _, i := range r.Items() {
			items = append(items, i.Noun())
		}
		t.AddRow(r.Name(), r.Image(), strings.Join(exits, " "),
			strings.Join(items, " "), strings.Join(r.Grabbables(), " "))
	}

	t.Print()
}

func loadWorld(cfg *Config) (*WorldDef, *World, error) {
	var def *WorldDef
	var err error

	if cfg.WorldFile == "" {
		def, err = DefaultWorldDef()
	} else {
		def, err = LoadWorldDef(cfg.WorldFile)
	}
	if err != nil {
		return nil, nil, err
	}

	world, err := def.Build()
	if err != nil {
		return nil, nil, err
	}

	return def, world, nil
}

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

//
// Main entry point
//
func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Could not load configuration")
	}
	log.SetLevel(cfg.LogLevel)

	// Set up the SIGTERM signal handler
	sigs := make(chan os.Signal, 2)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigs
		log.Info("SIGTERM received.")
		os.Exit(0)
	}()

	log.Info("Loading world...")

	def, world, err := loadWorld(cfg)
	if err != nil {
		log.WithError(err).Fatal("Could not load world")
	}

	log.WithFields(logrus.Fields{
		"rooms": len(world.Rooms()),
		"exits": world.NumExits(),
		"start": world.Start().Name(),
	}).Info("World initialized")

	if cfg.ShowMap {
		showMap(os.Stderr, world)
	}

	client := NewClient(os.Stdout, NewGameSession(world), NewAssetLoader(cfg.AssetDir))
	client.deathImage = def.DeathImage
	if def.Title != "" {
		client.title = def.Title
	}

	if err := connectionLoop(os.Stdin, client); err != nil {
		log.WithError(err).Error("Error reading input")
		os.Exit(1)
	}

	log.Info("Goodbye!")
}
