package handler

import (
	"log"
	"net/http"
	"strings"

	"petboard/internal/repository"
	"petboard/pkg/pagination"
	"petboard/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookingHandler serves the detail list view navigation actions point at
type BookingHandler struct {
	bookings repository.BookingRepository
}

func NewBookingHandler(bookings repository.BookingRepository) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

func (h *BookingHandler) RegisterRoutes(router *gin.RouterGroup) {
	bookings := router.Group("/api/bookings")
	{
		bookings.GET("", h.ListBookings)
	}
}

// ListBookings lists bookings filtered by id set and/or date range
// @Summary      List bookings
// @Description  Paginated booking list, filterable by a comma-separated id set (chart click-through) or a booking date range (KPI click-through)
// @Tags         bookings
// @Produce      json
// @Param        ids         query  string  false  "Comma-separated booking ids"
// @Param        start_date  query  string  false  "Start date (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "End date (YYYY-MM-DD)"
// @Param        page        query  int     false  "Page number"
// @Param        limit       query  int     false  "Page size"
// @Success      200  {object}  response.Response{data=[]model.Booking}
// @Failure      400  {object}  response.Response
// @Router       /api/bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	params := pagination.Parse(c)

	var ids []uuid.UUID
	if raw := c.Query("ids"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := uuid.Parse(strings.TrimSpace(part))
			if err != nil {
				c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid booking id: "+part))
				return
			}
			ids = append(ids, id)
		}
	}

	start, end, ok := parseDateWindow(c)
	if !ok {
		return
	}

	bookings, total, err := h.bookings.List(c.Request.Context(), params.Page, params.Limit, ids, start, end)
	if err != nil {
		log.Println("booking list failed:", err)
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, bookings, total, params.Page, params.Limit))
}
