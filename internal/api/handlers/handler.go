package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/evlanka/evlanka/internal/repository"
	"github.com/evlanka/evlanka/internal/service"
	"github.com/evlanka/evlanka/pkg/ws"
)

// Handler is the HTTP handler set.
type Handler struct {
	logger         *zap.Logger
	locationRepo   *repository.LocationRepository
	vehicleService *service.VehicleService
	stationService *service.StationService
	plannerService *service.PlannerService
	tcoService     *service.TCOService
	wsHub          *ws.Hub
	upgrader       websocket.Upgrader
}

// NewHandler creates the handler set.
func NewHandler(
	logger *zap.Logger,
	locationRepo *repository.LocationRepository,
	vehicleService *service.VehicleService,
	stationService *service.StationService,
	plannerService *service.PlannerService,
	tcoService *service.TCOService,
	wsHub *ws.Hub,
) *Handler {
	return &Handler{
		logger:         logger,
		locationRepo:   locationRepo,
		vehicleService: vehicleService,
		stationService: stationService,
		plannerService: plannerService,
		tcoService:     tcoService,
		wsHub:          wsHub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // the API is public and read-mostly
			},
		},
	}
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		// Vehicles
		api.GET("/vehicles", h.ListVehicles)
		api.GET("/vehicles/compare", h.CompareVehicles)
		api.GET("/vehicles/:id", h.GetVehicle)
		api.GET("/vehicles/:id/similar", h.GetSimilarVehicles)

		// Charging stations
		api.GET("/stations", h.ListStations)
		api.GET("/stations/filters", h.GetStationFilters)
		api.GET("/stations/states", h.GetStationStates)
		api.GET("/stations/:id", h.GetStation)
		api.POST("/stations/:id/status", h.UpdateStationStatus)

		// Locations
		api.GET("/locations", h.ListLocations)
		api.GET("/locations/:id", h.GetLocation)

		// Route planner
		api.GET("/planner/route", h.PlanRoute)

		// Cost calculator
		api.GET("/tco/tariffs", h.ListTariffs)
		api.GET("/tco/calculate", h.CalculateTCOQuery)
		api.POST("/tco/calculate", h.CalculateTCOBody)
	}

	// WebSocket station-status feed
	r.GET("/ws", h.HandleWebSocket)

	// Health check
	r.GET("/health", h.HealthCheck)
}

// HandleWebSocket upgrades the connection and attaches it to the hub.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade websocket", zap.Error(err))
		return
	}

	client := ws.NewClient(h.wsHub, conn)
	client.Register()

	go client.ReadPump()
	go client.WritePump()
}

// HealthCheck reports liveness.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"ws_clients": h.wsHub.ClientCount(),
	})
}
