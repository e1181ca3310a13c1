package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	roomModel "hotel/internal/domains/room/model"
	"hotel/internal/domains/roomboard/model"
)

func rooms() []roomModel.Room {
	return []roomModel.Room{
		{ID: "1", Name: "Deluxe 101", Status: roomModel.StatusAvailable},
		{ID: "2", Name: "Room 101", Status: roomModel.StatusOccupied},
		{ID: "3", Name: "Room 204", Status: roomModel.StatusCleaning},
		{ID: "4", Name: "Room 102", Status: roomModel.StatusOccupied},
	}
}

func TestGroupByFloor(t *testing.T) {
	floors := model.GroupByFloor(rooms())

	assert.Len(t, floors, 3)
	assert.Equal(t, "0", floors[0].Floor)
	assert.Equal(t, "Deluxe 101", floors[0].Rooms[0].Name)
	assert.Equal(t, "1", floors[1].Floor)
	assert.Equal(t, []string{"2", "4"}, []string{floors[1].Rooms[0].ID, floors[1].Rooms[1].ID})
	assert.Equal(t, "2", floors[2].Floor)
}

func TestCountByStatus(t *testing.T) {
	counts := model.CountByStatus(rooms())

	assert.Equal(t, 1, counts[roomModel.StatusAvailable])
	assert.Equal(t, 2, counts[roomModel.StatusOccupied])
	assert.Equal(t, 1, counts[roomModel.StatusCleaning])
	assert.Equal(t, 0, counts[roomModel.StatusMaintenance])
}

func TestFilterByStatus(t *testing.T) {
	assert.Len(t, model.FilterByStatus(rooms(), ""), 4)
	assert.Len(t, model.FilterByStatus(rooms(), roomModel.StatusOccupied), 2)
	assert.Empty(t, model.FilterByStatus(rooms(), roomModel.StatusMaintenance))
}
