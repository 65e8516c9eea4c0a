// File: internal/handler/strategies/legs.go
package strategies

import (
	"net/http"

	"options-lab/internal/api"
	"options-lab/internal/cache"
	"options-lab/internal/database"
	"options-lab/internal/model"
	"options-lab/internal/worker"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ListStrategyLegsHandler 取得策略的所有腿部
// @Summary     列出策略腿部
// @Tags        strategies
// @Produce     json
// @Param       id path string true "策略 ID"
// @Success     200 {array}  model.StrategyLeg
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /strategies/{id}/legs [get]
func ListStrategyLegsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if _, err := uuid.Parse(id); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid strategy ID"})
		}

		exists, err := strategyExists(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to check strategy"})
		}
		if !exists {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "strategy not found"})
		}

		legs, err := listStrategyLegs(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list strategy legs"})
		}
		return c.JSON(http.StatusOK, legs)
	}
}

// CreateStrategyLegHandler 為策略新增一條腿
// @Summary     新增策略腿部
// @Tags        strategies
// @Accept      json
// @Produce     json
// @Param       body body api.CreateStrategyLegRequest true "腿部資料"
// @Success     201  {object} model.StrategyLeg
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /strategies/legs [post]
func CreateStrategyLegHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateStrategyLegRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		exists, err := strategyExists(c.Request().Context(), db, req.StrategyID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to check strategy"})
		}
		if !exists {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "strategy not found"})
		}

		leg, err := createStrategyLeg(c.Request().Context(), db, &model.StrategyLeg{
			StrategyID:     req.StrategyID,
			Action:         model.LegAction(req.Action),
			InstrumentType: model.InstrumentType(req.InstrumentType),
			QuantityRatio:  req.QuantityRatio,
			StrikeRelation: model.StrikeRelation(req.StrikeRelation),
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create strategy leg"})
		}

		invalidateCatalog(rdb, wp)
		return c.JSON(http.StatusCreated, leg)
	}
}

// DeleteStrategyLegHandler 刪除一條策略腿
// @Summary     刪除策略腿部
// @Tags        strategies
// @Produce     json
// @Param       leg_id path string true "腿部 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /strategies/legs/{leg_id} [delete]
func DeleteStrategyLegHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		legID := c.Param("leg_id")
		if _, err := uuid.Parse(legID); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid leg ID"})
		}

		if err := deleteStrategyLeg(c.Request().Context(), db, legID); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to delete strategy leg"})
		}

		invalidateCatalog(rdb, wp)
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "strategy leg deleted"})
	}
}
