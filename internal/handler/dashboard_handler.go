package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"petboard/internal/model"
	"petboard/internal/service"
	"petboard/pkg/response"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	kpiService     service.KpiService
	chartService   service.ChartService
	rankingService service.RankingService
}

func NewDashboardHandler(kpiService service.KpiService, chartService service.ChartService, rankingService service.RankingService) *DashboardHandler {
	return &DashboardHandler{
		kpiService:     kpiService,
		chartService:   chartService,
		rankingService: rankingService,
	}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/api/dashboard")
	{
		dashboard.GET("/kpis", h.GetKpis)
		dashboard.POST("/kpis/:name/click", h.KpiClick)
		dashboard.GET("/chart/:kind", h.GetChart)
		dashboard.POST("/chart/:kind/click", h.ChartClick)
		dashboard.GET("/top-products", h.GetTopProducts)
	}
}

// GetKpis returns the three summary cards for a date window
// @Summary      Get KPI cards
// @Description  Revenue, order count and product sold for the window, with percentage change vs. the preceding window of equal length. Omitting both dates uses the current calendar month.
// @Tags         dashboard
// @Produce      json
// @Param        start_date  query  string  false  "Start date (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "End date (YYYY-MM-DD)"
// @Success      200  {object}  response.Response{data=model.KpiResponse}
// @Failure      400  {object}  response.Response
// @Router       /api/dashboard/kpis [get]
func (h *DashboardHandler) GetKpis(c *gin.Context) {
	start, end, ok := parseDateWindow(c)
	if !ok {
		return
	}

	kpis, err := h.kpiService.GetKpis(c.Request.Context(), start, end)
	if err != nil {
		log.Println("KPI pipeline failed:", err)
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, kpis))
}

// KpiClick resolves a KPI card click into a navigation action
// @Summary      Resolve KPI card click
// @Description  Returns (and broadcasts) a navigation action scoped to the card's date window
// @Tags         dashboard
// @Produce      json
// @Param        name        path   string  true   "KPI name"  Enums(Revenue, Orders, Product Sold)
// @Param        start_date  query  string  false  "Start date (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "End date (YYYY-MM-DD)"
// @Success      200  {object}  response.Response{data=model.ActionDescriptor}
// @Failure      400  {object}  response.Response
// @Router       /api/dashboard/kpis/{name}/click [post]
func (h *DashboardHandler) KpiClick(c *gin.Context) {
	name := c.Param("name")
	if name != model.KpiRevenue && name != model.KpiOrders && name != model.KpiProductSold {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "unknown KPI name: "+name))
		return
	}

	start, end, ok := parseDateWindow(c)
	if !ok {
		return
	}

	action := h.kpiService.ClickAction(name, start, end)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, action))
}

// GetChart returns a chart-ready payload for one chart kind
// @Summary      Get chart data
// @Description  Aggregated {type, labels, datasets} for a bar, doughnut or line chart. Datasets carry per-point booking-id sets for click resolution.
// @Tags         dashboard
// @Produce      json
// @Param        kind        path   string  true   "Chart kind"  Enums(bar, doughnut, line)
// @Param        start_date  query  string  false  "Start date (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "End date (YYYY-MM-DD)"
// @Success      200  {object}  response.Response{data=model.ChartData}
// @Failure      400  {object}  response.Response
// @Router       /api/dashboard/chart/{kind} [get]
func (h *DashboardHandler) GetChart(c *gin.Context) {
	start, end, ok := parseDateWindow(c)
	if !ok {
		return
	}

	data, err := h.chartService.GetChart(c.Request.Context(), c.Param("kind"), start, end)
	if err != nil {
		if errors.Is(err, service.ErrUnknownChartKind) {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
			return
		}
		log.Println("chart pipeline failed:", err)
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, data))
}

type chartClickRequest struct {
	Index int `json:"index" binding:"min=0"`
}

// ChartClick resolves a clicked chart point into a navigation action
// @Summary      Resolve chart point click
// @Description  Maps a rendered point index to the booking-id set behind it and returns (and broadcasts) a navigation action filtered to those bookings
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        kind     path  string            true  "Chart kind"  Enums(bar, doughnut, line)
// @Param        payload  body  chartClickRequest true  "Clicked point"
// @Success      200  {object}  response.Response{data=model.ActionDescriptor}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/dashboard/chart/{kind}/click [post]
func (h *DashboardHandler) ChartClick(c *gin.Context) {
	var req chartClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	action, err := h.chartService.ResolveClick(c.Param("kind"), req.Index)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoSnapshot):
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		case errors.Is(err, service.ErrPointOutOfRange):
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, action))
}

// GetTopProducts returns the top selling products list
// @Summary      Get top selling products
// @Description  Products ranked by total sales value, truncated to the configured limit
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.ProductRanking}
// @Failure      500  {object}  response.Response
// @Router       /api/dashboard/top-products [get]
func (h *DashboardHandler) GetTopProducts(c *gin.Context) {
	rankings, err := h.rankingService.GetTopProducts(c.Request.Context())
	if err != nil {
		log.Println("top products pipeline failed:", err)
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, rankings))
}

// parseDateWindow reads optional start_date/end_date query params. Both
// empty means "use the default window"; a lone or malformed date is a 400.
func parseDateWindow(c *gin.Context) (*time.Time, *time.Time, bool) {
	startStr := c.Query("start_date")
	endStr := c.Query("end_date")

	if startStr == "" && endStr == "" {
		return nil, nil, true
	}
	if startStr == "" || endStr == "" {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "start_date and end_date must be provided together"))
		return nil, nil, false
	}

	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid start_date format, expected YYYY-MM-DD"))
		return nil, nil, false
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid end_date format, expected YYYY-MM-DD"))
		return nil, nil, false
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "end_date must not precede start_date"))
		return nil, nil, false
	}

	return &start, &end, true
}
