package main

import (
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestNewGameSessionStartsEmptyHanded(t *testing.T) {
	world, openArea, _, _ := newCave(t)
	s := NewGameSession(world)

	if s.CurrentRoom() != openArea || s.Dead() || len(s.Inventory()) != 0 {
		t.Errorf("Session should start alive in the Open Area with nothing")
	}

	if s.World() != world {
		t.Errorf("Session should hold its world")
	}
}

func TestProcessScenario(t *testing.T) {
	world, openArea, damp, _ := newCave(t)
	s := NewGameSession(world)

	resp := s.Process("look letter")
	if resp.Text != "The Dragon has a weak spot by his heart." || s.CurrentRoom() != openArea {
		t.Errorf("Unexpected response to look letter: %+v", resp)
	}

	resp = s.Process("go north")
	if resp.Text != "Invalid exit." || s.CurrentRoom() != openArea {
		t.Errorf("Unexpected response to go north: %+v", resp)
	}

	resp = s.Process("go east")
	if !resp.RoomChanged || resp.Text != "" || s.CurrentRoom() != damp {
		t.Errorf("Unexpected response to go east: %+v", resp)
	}

	resp = s.Process("take sword")
	if resp.Text != "Item grabbed." || damp.HasGrabbable("sword") {
		t.Errorf("Unexpected response to take sword: %+v", resp)
	}

	resp = s.Process("QUIT")
	if !resp.Terminate {
		t.Errorf("QUIT should terminate")
	}
}

func TestProcessNormalizesInput(t *testing.T) {
	world, _, damp, _ := newCave(t)
	s := NewGameSession(world)

	s.Process("  GO East  ")

	if s.CurrentRoom() != damp {
		t.Errorf("Mixed case input with padding should still work")
	}
}

func TestProcessRequiresExactlyTwoWords(t *testing.T) {
	for _, line := range []string{"", "go", "look", "go east now", "take the sword", "go  east"} {
		world, openArea, _, _ := newCave(t)
		s := NewGameSession(world)

		resp := s.Process(line)

		if resp.Text != helpText || resp.RoomChanged || resp.Terminate {
			t.Errorf("%q should get the help text, got %+v", line, resp)
		}

		if s.CurrentRoom() != openArea || len(s.Inventory()) != 0 {
			t.Errorf("%q should not change anything", line)
		}
	}
}

func TestProcessUnknownVerb(t *testing.T) {
	world, _, _, _ := newCave(t)
	s := NewGameSession(world)

	resp := s.Process("eat letter")

	assertMatch(t, "I don't understand", resp.Text)
	assertMatch(t, "Valid <verb>: go look take", resp.Text)
}

func TestProcessQuitTokens(t *testing.T) {
	for _, line := range []string{"quit", "EXIT", "  Bye  "} {
		world, _, _, _ := newCave(t)
		s := NewGameSession(world)

		if !s.Process(line).Terminate {
			t.Errorf("%q should terminate while alive", line)
		}

		s.Kill()

		if !s.Process(line).Terminate {
			t.Errorf("%q should terminate while dead", line)
		}
	}
}

func TestKillFreezesSession(t *testing.T) {
	world, _, _, _ := newCave(t)
	s := NewGameSession(world)
	s.Process("go east")
	s.Process("take sword")

	s.Kill()

	if !s.Dead() || s.CurrentRoom() != nil {
		t.Errorf("Player should be dead")
	}

	for _, line := range []string{"go west", "take armor", "look knight", "go", "nonsense words here"} {
		resp := s.Process(line)
		if !resp.Empty() {
			t.Errorf("%q should have no effect once dead, got %+v", line, resp)
		}
	}

	if !s.Dead() || !reflect.DeepEqual(s.Inventory(), []string{"sword"}) {
		t.Errorf("Nothing should change once dead")
	}
}

func TestEnterHookCanKill(t *testing.T) {
	world, _, _, lair := newCave(t)
	lair.SetOnEnter(func(s *GameSession) { s.Kill() })
	s := NewGameSession(world)

	s.Process("go east")
	resp := s.Process("go south")

	if !resp.RoomChanged || !s.Dead() {
		t.Errorf("Walking into the trap should kill the player")
	}

	if s.Describe("") != "You are dead." {
		t.Errorf("Dead players should be told so")
	}
}

func TestDescribe(t *testing.T) {
	world, _, _, _ := newCave(t)
	s := NewGameSession(world)

	if s.Describe("hello") != "You are in the Open Area.\nYou are carrying: []\n\nhello" {
		t.Errorf("Unexpected description %q", s.Describe("hello"))
	}

	s.Process("go east")
	s.Process("take sword")
	s.Process("take armor")

	assertMatch(t, `^You are in the Damp Room\.\nYou are carrying: \[sword, armor\]`, s.Describe(""))
}

func TestResponseEmpty(t *testing.T) {
	if !(Response{}).Empty() {
		t.Errorf("Zero response should be empty")
	}

	if (Response{RoomChanged: true}).Empty() {
		t.Errorf("A room change is not empty")
	}
}

func TestRejectedCommandsAreDebugLogged(t *testing.T) {
	hook := test.NewLocal(log)
	level := log.GetLevel()
	log.SetLevel(logrus.DebugLevel)
	defer func() {
		log.ReplaceHooks(make(logrus.LevelHooks))
		log.SetLevel(level)
	}()

	world, _, _, _ := newCave(t)
	s := NewGameSession(world)

	s.Process("go")
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.DebugLevel || entry.Message != "Not a two word command" {
		t.Errorf("Expected a debug line for a one word command, got %+v", entry)
	}

	s.Process("eat letter")
	entry = hook.LastEntry()
	if entry == nil || entry.Level != logrus.DebugLevel || entry.Message != "Unknown verb" {
		t.Errorf("Expected a debug line for an unknown verb, got %+v", entry)
	}

	for _, e := range hook.AllEntries() {
		if e.Level < logrus.DebugLevel {
			t.Errorf("Rejected commands should only be debug logged, got %v %q", e.Level, e.Message)
		}
	}
}
