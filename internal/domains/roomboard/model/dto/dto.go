package dto

import (
	"net/http"

	roomModel "hotel/internal/domains/room/model"
	roomDto "hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/roomboard/model"
)

type SnapshotQuery struct {
	Status string `json:"status" validate:"omitempty,oneof=Available Occupied Cleaning Maintenance"`
}

func (q *SnapshotQuery) FromRequest(r *http.Request) {
	q.Status = r.URL.Query().Get("status")
}

type FloorResponse struct {
	Floor string                 `json:"floor"`
	Rooms []roomDto.RoomResponse `json:"rooms"`
}

type SnapshotResponse struct {
	Counts map[string]int  `json:"counts"`
	Total  int             `json:"total"`
	Status string          `json:"status,omitempty"`
	Floors []FloorResponse `json:"floors"`
}

// FromModels counts over every room and groups only those matching status.
func (r *SnapshotResponse) FromModels(rooms []roomModel.Room, status roomModel.Status) {
	r.Counts = make(map[string]int, len(roomModel.AllStatuses()))
	for key, total := range model.CountByStatus(rooms) {
		r.Counts[string(key)] = total
	}

	r.Total = len(rooms)
	r.Status = string(status)

	floors := model.GroupByFloor(model.FilterByStatus(rooms, status))

	r.Floors = make([]FloorResponse, len(floors))
	for i, floor := range floors {
		r.Floors[i].Floor = floor.Floor
		r.Floors[i].Rooms = make([]roomDto.RoomResponse, len(floor.Rooms))

		for j, room := range floor.Rooms {
			r.Floors[i].Rooms[j].FromModel(room)
		}
	}
}

// Message is the envelope pushed to board clients.
type Message struct {
	Type     string            `json:"type"`
	Snapshot *SnapshotResponse `json:"snapshot,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// ClientMessage is what a board client may send.
type ClientMessage struct {
	Type   string `json:"type"`
	Status string `json:"status,omitempty"`
}
