// File: internal/handler/strategies/strategy.go
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

// GetStrategyHandler 取得單一策略及其腿部
// @Summary     取得策略
// @Tags        strategies
// @Produce     json
// @Param       id path string true "策略 ID"
// @Success     200 {object} api.StrategyDetail
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /strategies/{id} [get]
func GetStrategyHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if _, err := uuid.Parse(id); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid strategy ID"})
		}

		strategy, err := getStrategyByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "strategy not found"})
		}

		legs, err := listStrategyLegs(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list strategy legs"})
		}

		return c.JSON(http.StatusOK, api.StrategyDetail{Strategy: *strategy, Legs: legs})
	}
}

// CreateStrategyHandler 建立新策略
// @Summary     建立策略
// @Tags        strategies
// @Accept      json
// @Produce     json
// @Param       body body api.CreateStrategyRequest true "策略資料"
// @Success     201  {object} model.Strategy
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /strategies [post]
func CreateStrategyHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateStrategyRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		strategy, err := createStrategy(c.Request().Context(), db, &model.Strategy{
			Name:             req.Name,
			Summary:          req.Summary,
			Description:      req.Description,
			ProficiencyLevel: model.ExperienceLevel(req.ProficiencyLevel),
			MarketOutlook:    model.MarketOutlook(req.MarketOutlook),
			VolatilityView:   model.VolatilityView(req.VolatilityView),
			RiskProfile:      model.RiskProfile(req.RiskProfile),
			RewardProfile:    model.RewardProfile(req.RewardProfile),
			StrategyType:     model.StrategyType(req.StrategyType),
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create strategy"})
		}

		invalidateCatalog(rdb, wp)
		return c.JSON(http.StatusCreated, strategy)
	}
}

// UpdateStrategyHandler 部分更新既有策略
// @Summary     更新策略
// @Tags        strategies
// @Accept      json
// @Produce     json
// @Param       id   path string true "策略 ID"
// @Param       body body api.UpdateStrategyRequest true "更新欄位"
// @Success     200  {object} model.Strategy
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /strategies/{id} [patch]
func UpdateStrategyHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if _, err := uuid.Parse(id); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid strategy ID"})
		}

		var req api.UpdateStrategyRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		strategy, err := getStrategyByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "strategy not found"})
		}

		if req.Name != nil {
			strategy.Name = *req.Name
		}
		if req.Summary != nil {
			strategy.Summary = req.Summary
		}
		if req.Description != nil {
			strategy.Description = req.Description
		}
		if req.ProficiencyLevel != nil {
			strategy.ProficiencyLevel = model.ExperienceLevel(*req.ProficiencyLevel)
		}
		if req.MarketOutlook != nil {
			strategy.MarketOutlook = model.MarketOutlook(*req.MarketOutlook)
		}
		if req.VolatilityView != nil {
			strategy.VolatilityView = model.VolatilityView(*req.VolatilityView)
		}
		if req.RiskProfile != nil {
			strategy.RiskProfile = model.RiskProfile(*req.RiskProfile)
		}
		if req.RewardProfile != nil {
			strategy.RewardProfile = model.RewardProfile(*req.RewardProfile)
		}
		if req.StrategyType != nil {
			strategy.StrategyType = model.StrategyType(*req.StrategyType)
		}

		if err := updateStrategy(c.Request().Context(), db, strategy); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update strategy"})
		}

		updated, err := getStrategyByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load strategy"})
		}

		invalidateCatalog(rdb, wp)
		return c.JSON(http.StatusOK, updated)
	}
}

// DeleteStrategyHandler 刪除策略，腿部由資料庫 cascade 一併刪除
// @Summary     刪除策略
// @Tags        strategies
// @Produce     json
// @Param       id path string true "策略 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /strategies/{id} [delete]
func DeleteStrategyHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
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

		if err := deleteStrategy(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to delete strategy"})
		}

		invalidateCatalog(rdb, wp)
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "strategy deleted"})
	}
}
