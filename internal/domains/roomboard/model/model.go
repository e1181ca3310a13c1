package model

import (
	"slices"

	roomModel "hotel/internal/domains/room/model"
)

const EntityName = "roomboard"

// Message types exchanged with board clients.
const (
	MessageHello    = "hello"
	MessageSnapshot = "snapshot"
	MessageSync     = "sync"
	MessageRefresh  = "refresh"
	MessageError    = "error"
)

type Floor struct {
	Floor string
	Rooms []roomModel.Room
}

// GroupByFloor keeps the input room order inside each floor and sorts floors ascending.
func GroupByFloor(rooms []roomModel.Room) []Floor {
	index := make(map[string]int)

	var floors []Floor

	for _, room := range rooms {
		key := room.Floor()

		i, ok := index[key]
		if !ok {
			i = len(floors)
			index[key] = i
			floors = append(floors, Floor{Floor: key})
		}

		floors[i].Rooms = append(floors[i].Rooms, room)
	}

	slices.SortStableFunc(floors, func(a, b Floor) int {
		switch {
		case a.Floor < b.Floor:
			return -1
		case a.Floor > b.Floor:
			return 1
		default:
			return 0
		}
	})

	return floors
}

// CountByStatus tallies rooms per status, every status present.
func CountByStatus(rooms []roomModel.Room) map[roomModel.Status]int {
	counts := make(map[roomModel.Status]int, len(roomModel.AllStatuses()))
	for _, status := range roomModel.AllStatuses() {
		counts[status] = 0
	}

	for _, room := range rooms {
		counts[room.Status]++
	}

	return counts
}

// FilterByStatus returns rooms in status, or all rooms when status is empty.
func FilterByStatus(rooms []roomModel.Room, status roomModel.Status) []roomModel.Room {
	if status == "" {
		return rooms
	}

	filtered := make([]roomModel.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.Status == status {
			filtered = append(filtered, room)
		}
	}

	return filtered
}
