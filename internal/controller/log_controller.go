package controller

import (
	"context"
	"errors"
	"net/http"

	"logrange-backend/internal/dto"
	"logrange-backend/internal/model"
	"logrange-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type LogController struct {
	logQueryService service.LogQueryService
}

func NewLogController(logQueryService service.LogQueryService) *LogController {
	return &LogController{
		logQueryService: logQueryService,
	}
}

func RegisterLogRoutes(router *gin.Engine, controller *LogController) {
	v1 := router.Group("/api/v1")
	{
		v1.GET("/stores", controller.GetStores)
		v1.GET("/logs/:store", controller.GetLogs)
		v1.GET("/logs/:store/stats", controller.GetStats)
		v1.GET("/logs/:store/series", controller.GetSeries)
	}
	router.GET("/healthz", controller.Health)
}

// GetLogs godoc
// @Summary      Query logs in a time range
// @Description  Returns every log record whose time lies in [min, max], oldest first, capped at the server's record ceiling.
// @Tags         logs
// @Produce      json
// @Param        store  path      string  true  "Backing store" Enums(elasticsearch, cratedb)
// @Param        min    query     string  true  "Range start, ISO 8601 (e.g. 2024-01-01 or 2024-01-01T10:00:00Z)"
// @Param        max    query     string  true  "Range end, ISO 8601"
// @Success      200    {object}  dto.LogsResponse
// @Failure      400    {object}  model.Response "Missing, malformed or inverted bounds"
// @Failure      404    {object}  model.Response "Unknown store"
// @Failure      502    {object}  model.Response "Store unavailable"
// @Failure      504    {object}  model.Response "Store query timed out"
// @Router       /api/v1/logs/{store} [get]
func (c *LogController) GetLogs(ctx *gin.Context) {
	records, err := c.logQueryService.QueryLogs(ctx.Request.Context(), ctx.Param("store"), ctx.Query("min"), ctx.Query("max"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	if records == nil {
		records = []model.LogRecord{}
	}
	ctx.JSON(http.StatusOK, dto.LogsResponse{Data: records, Count: len(records)})
}

// GetStats godoc
// @Summary      Statistics over a time range
// @Description  Returns the records of the range projected to time, contentLength and ms, with min, max, average and median per numeric field.
// @Tags         logs
// @Produce      json
// @Param        store  path      string  true   "Backing store" Enums(elasticsearch, cratedb)
// @Param        min    query     string  true   "Range start, ISO 8601"
// @Param        max    query     string  true   "Range end, ISO 8601"
// @Param        field  query     string  false  "Summarize only this field" Enums(contentLength, responseTimeMs)
// @Success      200    {object}  dto.StatsResponse
// @Failure      400    {object}  model.Response "Invalid bounds or field"
// @Failure      404    {object}  model.Response "Unknown store"
// @Failure      422    {object}  model.Response "No numeric values in range"
// @Failure      502    {object}  model.Response "Store unavailable"
// @Failure      504    {object}  model.Response "Store query timed out"
// @Router       /api/v1/logs/{store}/stats [get]
func (c *LogController) GetStats(ctx *gin.Context) {
	var fields []model.StatField
	if raw := ctx.Query("field"); raw != "" {
		field := model.StatField(raw)
		if _, ok := field.Value(model.LogRecord{}); !ok {
			ctx.JSON(http.StatusBadRequest, model.NewResponse("field must be contentLength or responseTimeMs", nil))
			return
		}
		fields = append(fields, field)
	}

	res, err := c.logQueryService.GetStats(ctx.Request.Context(), ctx.Param("store"), ctx.Query("min"), ctx.Query("max"), fields...)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStatsResponse(res))
}

// GetSeries godoc
// @Summary      Chart series over a time range
// @Description  Builds the deduplicated (contentLength, ms) series and writes it to the chart artifact file.
// @Tags         logs
// @Produce      json
// @Param        store  path      string  true  "Backing store" Enums(elasticsearch, cratedb)
// @Param        min    query     string  true  "Range start, ISO 8601"
// @Param        max    query     string  true  "Range end, ISO 8601"
// @Success      200    {object}  dto.SeriesResponse "Series; persistError is set when the artifact could not be written"
// @Failure      400    {object}  model.Response "Missing, malformed or inverted bounds"
// @Failure      404    {object}  model.Response "Unknown store"
// @Failure      502    {object}  model.Response "Store unavailable"
// @Failure      504    {object}  model.Response "Store query timed out"
// @Router       /api/v1/logs/{store}/series [get]
func (c *LogController) GetSeries(ctx *gin.Context) {
	res, err := c.logQueryService.BuildSeries(ctx.Request.Context(), ctx.Param("store"), ctx.Query("min"), ctx.Query("max"))
	if err != nil && !(res != nil && errors.Is(err, model.ErrPersistFailure)) {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSeriesResponse(res, err))
}

// GetStores godoc
// @Summary      List stores
// @Tags         logs
// @Produce      json
// @Success      200  {object}  dto.StoresResponse
// @Router       /api/v1/stores [get]
func (c *LogController) GetStores(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.StoresResponse{Stores: c.logQueryService.Stores()})
}

// Health godoc
// @Summary      Liveness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  model.Response
// @Router       /healthz [get]
func (c *LogController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, model.NewResponse("ok", nil))
}

// statusFor maps a query error to the HTTP status the caller sees.
func statusFor(err error) int {
	switch {
	case model.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnknownStore):
		return http.StatusNotFound
	case errors.Is(err, model.ErrEmptyResultSet):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, model.ErrStoreUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.FullPath()).Str("store", ctx.Param("store")).Msg("Log query failed")
	} else {
		log.Debug().Err(err).Str("path", ctx.FullPath()).Int("status", status).Msg("Log query rejected")
	}
	ctx.JSON(status, model.NewResponse(err.Error(), nil))
}
