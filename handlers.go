package main

import (
	"github.com/sirupsen/logrus"
)

//
// Handlers
//

func doGo(s *GameSession, cmd Command) Response {
	here := s.CurrentRoom()

	key, exists := here.Exit(cmd.noun)
	if !exists {
		return Response{Text: "Invalid exit."}
	}

	there, exists := s.world.Room(key)
	if !exists {
		log.WithFields(logrus.Fields{"from": here.name, "exit": cmd.noun, "key": key}).Debug("Exit leads nowhere")
		return Response{Text: "Invalid exit."}
	}

	s.player.location = key
	log.WithFields(logrus.Fields{"from": here.name, "to": there.name}).Debug("Player moved")

	if there.onEnter != nil {
		there.onEnter(s)
	}

	return Response{RoomChanged: true}
}

func doLook(s *GameSession, cmd Command) Response {
	desc, exists := s.CurrentRoom().Item(cmd.noun)
	if !exists {
		return Response{Text: "I don't see that item."}
	}

	return Response{Text: desc}
}

func doTake(s *GameSession, cmd Command) Response {
	here := s.CurrentRoom()

	if !here.HasGrabbable(cmd.noun) {
		return Response{Text: "I don't see that item."}
	}

	s.player.inventory = append(s.player.inventory, cmd.noun)
	here.RemoveGrabbable(cmd.noun)

	return Response{Text: "Item grabbed."}
}
