// File: handlers/room.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	roomRepo "roomify/database/repository/room"
	"roomify/models"
	"roomify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoomHandler exposes room administration endpoints.
type RoomHandler struct {
	Rooms  roomRepo.Repository
	Logger *zap.Logger
}

// NewRoomHandler constructs a RoomHandler.
func NewRoomHandler(rooms roomRepo.Repository, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{Rooms: rooms, Logger: logger}
}

type roomPayload struct {
	Name       string   `json:"name"`
	Location   string   `json:"location"`
	Capacity   int      `json:"capacity"`
	Facilities []string `json:"facilities"`
}

func (p *roomPayload) validate() string {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Location) == "" || p.Capacity <= 0 {
		return "Name, location and a positive capacity are required."
	}
	return ""
}

// ListRoomsHandler returns all rooms.
func (h *RoomHandler) ListRoomsHandler(c *gin.Context) {
	rooms, err := h.Rooms.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list rooms.", err.Error())
		return
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	c.JSON(http.StatusOK, rooms)
}

// CreateRoomHandler creates a room after checking the name is unused.
func (h *RoomHandler) CreateRoomHandler(c *gin.Context) {
	var input roomPayload
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room payload.", err.Error())
		return
	}
	if msg := input.validate(); msg != "" {
		utils.JSONError(c, http.StatusBadRequest, msg, "")
		return
	}

	existing, err := h.Rooms.GetByName(c.Request.Context(), input.Name)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to check room name.", err.Error())
		return
	}
	if existing != nil {
		utils.JSONError(c, http.StatusBadRequest, "A room with this name already exists.", "")
		return
	}

	room := &models.Room{
		Name:       input.Name,
		Location:   input.Location,
		Capacity:   input.Capacity,
		Facilities: input.Facilities,
	}
	created, err := h.Rooms.Create(c.Request.Context(), room)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create room.", err.Error())
		return
	}

	h.Logger.Info("room created", zap.String("roomId", created.ID), zap.String("name", created.Name))
	c.JSON(http.StatusCreated, created)
}

// UpdateRoomHandler updates a room, keeping the name unique across the others.
func (h *RoomHandler) UpdateRoomHandler(c *gin.Context) {
	id := c.Param("id")

	var input roomPayload
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room payload.", err.Error())
		return
	}
	if msg := input.validate(); msg != "" {
		utils.JSONError(c, http.StatusBadRequest, msg, "")
		return
	}

	existing, err := h.Rooms.GetByName(c.Request.Context(), input.Name)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to check room name.", err.Error())
		return
	}
	if existing != nil && existing.ID != id {
		utils.JSONError(c, http.StatusBadRequest, "A room with this name already exists.", "")
		return
	}

	room := &models.Room{
		ID:         id,
		Name:       input.Name,
		Location:   input.Location,
		Capacity:   input.Capacity,
		Facilities: input.Facilities,
	}
	updated, err := h.Rooms.Update(c.Request.Context(), room)
	if err != nil {
		if errors.Is(err, roomRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room not found.", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update room.", err.Error())
		return
	}

	h.Logger.Info("room updated", zap.String("roomId", id))
	c.JSON(http.StatusOK, updated)
}

// DeleteRoomHandler deletes a room. By default deletion is refused while
// reservations reference the room; ?cascade=true removes those reservations
// along with it.
func (h *RoomHandler) DeleteRoomHandler(c *gin.Context) {
	id := c.Param("id")
	cascade := c.Query("cascade") == "true"

	err := h.Rooms.Delete(c.Request.Context(), id, cascade)
	if err != nil {
		switch {
		case errors.Is(err, roomRepo.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "Room not found.", "")
		case errors.Is(err, roomRepo.ErrReferenced):
			utils.JSONError(c, http.StatusBadRequest, "The room has existing reservations and cannot be deleted.", "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Failed to delete room.", err.Error())
		}
		return
	}

	h.Logger.Info("room deleted", zap.String("roomId", id), zap.Bool("cascade", cascade))
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted."})
}
