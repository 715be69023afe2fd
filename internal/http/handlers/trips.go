package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxitracker/internal/domain"
	"taxitracker/internal/domain/models"
	"taxitracker/internal/services"
)

// TripResponse is a stored trip plus the figures the table renders, so
// clients never recompute profit themselves.
type TripResponse struct {
	models.TaxiTrip
	Revenue   float64 `json:"revenue"`
	Expense   float64 `json:"expense"`
	NetProfit float64 `json:"netProfit"`
}

type TripListResponse struct {
	Trips   []TripResponse `json:"trips"`
	Summary domain.Totals  `json:"summary"`
}

type TripHandler struct {
	Trips *services.TripService
}

// GET /api/trips
func (h *TripHandler) List(c *gin.Context) {
	trips := h.Trips.List()
	out := make([]TripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, toResponse(t))
	}
	c.JSON(http.StatusOK, TripListResponse{Trips: out, Summary: h.Trips.Summary()})
}

// POST /api/trips
func (h *TripHandler) Create(c *gin.Context) {
	var in models.TripInput
	if !BindJSONOrError(c, &in) {
		return
	}

	trip, err := h.Trips.Create(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toResponse(trip))
}

// PUT /api/trips/:id
func (h *TripHandler) Update(c *gin.Context) {
	var in models.TripInput
	if !BindJSONOrError(c, &in) {
		return
	}

	trip, err := h.Trips.Update(c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(trip))
}

// DELETE /api/trips/:id
func (h *TripHandler) Delete(c *gin.Context) {
	if err := h.Trips.Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// POST /api/trips/quote
func (h *TripHandler) Quote(c *gin.Context) {
	var in models.TripInput
	if !BindJSONOrError(c, &in) {
		return
	}

	fare, err := h.Trips.Quote(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, fare)
}

// GET /api/summary
func (h *TripHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.Trips.Summary())
}

func toResponse(t models.TaxiTrip) TripResponse {
	return TripResponse{
		TaxiTrip:  t,
		Revenue:   t.Revenue(),
		Expense:   t.Expense(),
		NetProfit: t.NetProfit(),
	}
}
