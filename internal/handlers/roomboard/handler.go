package roomboard

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/roomboard/model/dto"
	"hotel/internal/domains/roomboard/service"
	"hotel/shared/constant"
	"hotel/transport/http/response"
	"hotel/transport/websocket"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.RoomBoard
	hub     *websocket.Hub
	otel    otel.Otel
}

func New(service service.RoomBoard, hub *websocket.Hub, otel otel.Otel) Handler {
	return Handler{
		service: service,
		hub:     hub,
		otel:    otel,
	}
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/room-status", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSnapshot)
		routerGroup.Get("/ws", handler.hub.ServeWS)
	})
}

// GetSnapshot returns the room status board.
// @Summary Room status board
// @Description Counts per status and rooms grouped by floor. The websocket at /v1/admin/room-status/ws pushes the same payload on every room change.
// @Tags RoomBoard
// @Produce json
// @Param status query string false "Only show rooms with this status"
// @Success 200 {object} response.Data[dto.SnapshotResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/room-status [get]
// @Security BearerAuth
func (handler *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSnapshot")
	defer scope.End()

	query := dto.SnapshotQuery{}
	query.FromRequest(r)

	snapshot, err := handler.service.Snapshot(ctx, query.Status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room status snapshot")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, snapshot)
}
