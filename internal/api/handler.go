package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fondpulse/fondpulse/internal/domain/dto"
	"github.com/fondpulse/fondpulse/internal/fundapi"
	"github.com/fondpulse/fondpulse/internal/service"
)

// Handler provides HTTP handlers for fund variation endpoints.
//
// Responsibilities:
//   - Validate incoming path and query parameters
//   - Delegate to the service layer
//   - Translate service results and errors into response DTOs with
//     appropriate HTTP status codes
type Handler struct {
	svc service.VariationService
}

// NewHandler constructs a Handler with its service dependency injected.
func NewHandler(svc service.VariationService) *Handler {
	return &Handler{svc: svc}
}

// GetFundVariations handles GET /api/v1/funds/:id/variations requests.
//
// GetFundVariations godoc
// @Summary      Monthly variations for a fund
// @Description  Returns the month-over-month variation series and summary statistics for a fund, optionally restricted to an inclusive date range
// @Tags         funds
// @Produce      json
// @Param        id          path      int     true   "Fund id" example(128)
// @Param        start_date  query     string  false  "Range start in YYYY-MM-DD" example(2023-01-01)
// @Param        end_date    query     string  false  "Range end in YYYY-MM-DD" example(2023-12-31)
// @Success      200         {object}  dto.FundVariationsResponse  "Success"
// @Failure      400         {object}  dto.ErrorResponse           "Bad Request"
// @Failure      404         {object}  dto.ErrorResponse           "Fund Not Found"
// @Failure      422         {object}  dto.ErrorResponse           "Insufficient Data"
// @Failure      502         {object}  dto.ErrorResponse           "Upstream Failure"
// @Router       /api/v1/funds/{id}/variations [get]
func (h *Handler) GetFundVariations(c *gin.Context) {
	fundID, startDate, endDate, ok := fundParams(c)
	if !ok {
		return
	}

	result, err := h.svc.GetFundVariations(c.Request.Context(), fundID, startDate, endDate)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FundVariationsResponse{
		FundID:     result.FundID,
		Variations: result.Variations,
		Statistics: result.Statistics,
	})
}

// GetFundChart handles GET /api/v1/funds/:id/chart requests.
//
// GetFundChart godoc
// @Summary      Chart series for a fund
// @Description  Returns the label/value chart projection of a fund's monthly variation series
// @Tags         funds
// @Produce      json
// @Param        id          path      int     true   "Fund id" example(128)
// @Param        start_date  query     string  false  "Range start in YYYY-MM-DD" example(2023-01-01)
// @Param        end_date    query     string  false  "Range end in YYYY-MM-DD" example(2023-12-31)
// @Param        label       query     string  false  "Series label" example(Mi fondo)
// @Success      200         {object}  dto.ChartResponse   "Success"
// @Failure      400         {object}  dto.ErrorResponse   "Bad Request"
// @Failure      404         {object}  dto.ErrorResponse   "Fund Not Found"
// @Failure      422         {object}  dto.ErrorResponse   "Insufficient Data"
// @Failure      502         {object}  dto.ErrorResponse   "Upstream Failure"
// @Router       /api/v1/funds/{id}/chart [get]
func (h *Handler) GetFundChart(c *gin.Context) {
	fundID, startDate, endDate, ok := fundParams(c)
	if !ok {
		return
	}

	label := c.Query("label")
	if label == "" {
		label = fmt.Sprintf("Fondo %d", fundID)
	}

	series, err := h.svc.CompareFunds(c.Request.Context(), []int{fundID}, startDate, endDate)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	single := series[0]
	single.Name = label

	c.JSON(http.StatusOK, dto.ChartResponse{Series: single})
}

// CompareFunds handles GET /api/v1/compare requests.
//
// CompareFunds godoc
// @Summary      Compare funds
// @Description  Returns one chart series per fund, fetched concurrently; palette colors follow the request order
// @Tags         funds
// @Produce      json
// @Param        ids         query     string  true   "Comma-separated fund ids" example(128,305)
// @Param        start_date  query     string  false  "Range start in YYYY-MM-DD" example(2023-01-01)
// @Param        end_date    query     string  false  "Range end in YYYY-MM-DD" example(2023-12-31)
// @Success      200         {object}  dto.CompareResponse  "Success"
// @Failure      400         {object}  dto.ErrorResponse    "Bad Request"
// @Failure      404         {object}  dto.ErrorResponse    "Fund Not Found"
// @Failure      422         {object}  dto.ErrorResponse    "Insufficient Data"
// @Failure      502         {object}  dto.ErrorResponse    "Upstream Failure"
// @Router       /api/v1/compare [get]
func (h *Handler) CompareFunds(c *gin.Context) {
	startDate, endDate, ok := dateParams(c)
	if !ok {
		return
	}

	raw := strings.TrimSpace(c.Query("ids"))
	if raw == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("ids is required", nil))
		return
	}

	var fundIDs []int
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid fund id in ids", err))
			return
		}
		fundIDs = append(fundIDs, id)
	}

	series, err := h.svc.CompareFunds(c.Request.Context(), fundIDs, startDate, endDate)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CompareResponse{Series: series})
}

// fundParams validates the :id path param plus the optional date range.
// On failure it writes the 400 response and returns ok=false.
func fundParams(c *gin.Context) (fundID int, startDate, endDate string, ok bool) {
	fundID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid fund id", err))
		return 0, "", "", false
	}

	startDate, endDate, ok = dateParams(c)
	return fundID, startDate, endDate, ok
}

// dateParams validates the optional start_date/end_date query params.
//
// The literal "undefined" is accepted and passed through: the web client
// serializes an unset date picker that way, and the core treats it as "no
// filter". Any other non-empty value must be a syntactically valid
// YYYY-MM-DD date.
func dateParams(c *gin.Context) (startDate, endDate string, ok bool) {
	startDate = c.Query("start_date")
	endDate = c.Query("end_date")

	for _, d := range []string{startDate, endDate} {
		if d == "" || d == "undefined" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid date format, expected YYYY-MM-DD", err))
			return "", "", false
		}
	}
	return startDate, endDate, true
}

// writeServiceError maps service-layer errors onto HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInsufficientData):
		c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse("not enough data to compute monthly variations", err))
	case errors.Is(err, fundapi.ErrFundNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("fund not found", err))
	default:
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse("failed to fetch fund data", err))
	}
}
