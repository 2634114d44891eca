package main

import (
	"fmt"
	"strings"
)

const helpText = "I don't understand.  Try:\n<verb> <noun>\nValid <verb>: go look take"

type CommandHandler func(*GameSession, Command) Response

type HandlerMap map[string]CommandHandler

var commandHandlers = HandlerMap{
	"go":   doGo,
	"look": doLook,
	"take": doTake,
}

// A command entered at the prompt: exactly one verb and one noun.
type Command struct {
	verb string
	noun string
}

//
// Response is everything the shell needs after one line of input.
//
type Response struct {
	// Text to show under the room description.
	Text string
	// RoomChanged means the shell should reload the room image and
	// redraw the description.
	RoomChanged bool
	// Terminate means the player asked to leave.
	Terminate bool
}

// Empty is true for input that had no effect at all, as happens once
// the player is dead.
func (r Response) Empty() bool {
	return r == Response{}
}

//
// A GameSession ties one player to one world.
//
type GameSession struct {
	world    *World
	player   *Player
	handlers HandlerMap
}

func NewGameSession(world *World) *GameSession {
	return &GameSession{
		world:    world,
		player:   NewPlayer(world.Start()),
		handlers: commandHandlers,
	}
}

func (s *GameSession) World() *World {
	return s.world
}

// CurrentRoom is nil once the player is dead.
func (s *GameSession) CurrentRoom() *Room {
	r, _ := s.world.Room(s.player.location)
	return r
}

func (s *GameSession) Inventory() []string {
	return s.player.Inventory()
}

func (s *GameSession) Dead() bool {
	return s.player.Dead()
}

// Kill takes the player out of the world for good. Only quitting works
// afterwards.
func (s *GameSession) Kill() {
	s.player.location = Nowhere
	log.Debug("Player died")
}

// parseCommand splits a normalized line on single spaces. Anything but
// two words is rejected.
func parseCommand(line string) (Command, bool) {
	words := strings.Split(line, " ")
	if len(words) != 2 {
		return Command{}, false
	}
	return Command{verb: words[0], noun: words[1]}, true
}

// Process runs one line of player input.
func (s *GameSession) Process(line string) Response {
	line = normalize(line)

	if isQuit(line) {
		return Response{Terminate: true}
	}

	if s.Dead() {
		return Response{}
	}

	cmd, ok := parseCommand(line)
	if !ok {
		log.WithField("line", line).Debug("Not a two word command")
		return Response{Text: helpText}
	}

	log.WithField("command", cmd).Debug("Parsed command")

	handler, exists := s.handlers[cmd.verb]
	if !exists {
		log.WithField("verb", cmd.verb).Debug("Unknown verb")
		return Response{Text: helpText}
	}

	return handler(s, cmd)
}

// Describe renders the text pane: where the player is, what they
// carry, and the latest message.
func (s *GameSession) Describe(message string) string {
	here := s.CurrentRoom()
	if here == nil {
		return "You are dead."
	}

	return fmt.Sprintf("%s\nYou are carrying: [%s]\n\n%s",
		here, strings.Join(s.player.inventory, ", "), message)
}
