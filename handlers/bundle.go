// File: handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all route handlers so route registration stays free of
// construction details.
type HandlerBundle struct {
	// Auth endpoints.
	AdminLoginHandler gin.HandlerFunc

	// Room endpoints.
	ListRoomsHandler  gin.HandlerFunc
	CreateRoomHandler gin.HandlerFunc
	UpdateRoomHandler gin.HandlerFunc
	DeleteRoomHandler gin.HandlerFunc

	// Reservation endpoints.
	CreateReservationHandler gin.HandlerFunc
	ListReservationsHandler  gin.HandlerFunc
	DeleteReservationHandler gin.HandlerFunc
}
