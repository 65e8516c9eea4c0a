// File: internal/handler/strategies/catalog.go
package strategies

import (
	"encoding/json"
	"net/http"
	"time"

	"options-lab/internal/api"
	"options-lab/internal/cache"
	"options-lab/internal/database"
	"options-lab/internal/store"

	"github.com/labstack/echo/v4"
)

// catalogCacheTTL 目錄快取保留時間
const catalogCacheTTL = 5 * time.Minute

// ListStrategiesHandler 取得策略目錄，支援列舉值過濾
// 未帶任何過濾條件時由 Redis 快取供應
// @Summary     列出策略
// @Description 依 proficiencyLevel、marketOutlook 等條件過濾策略，按名稱排序
// @Tags        strategies
// @Produce     json
// @Param       proficiencyLevel query string false "NOVICE | INTERMEDIATE | ADVANCED | EXPERT"
// @Param       marketOutlook    query string false "BULLISH | BEARISH | NEUTRAL"
// @Param       volatilityView   query string false "HIGH | NEUTRAL | LOW"
// @Param       riskProfile      query string false "CAPPED | UNCAPPED"
// @Param       rewardProfile    query string false "CAPPED | UNCAPPED"
// @Param       strategyType     query string false "CAPITAL_GAIN | INCOME | PROTECTION"
// @Success     200 {array}  model.Strategy
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /strategies [get]
func ListStrategiesHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var filters api.StrategyFilters
		if err := c.Bind(&filters); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid query parameters"})
		}
		if err := c.Validate(&filters); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		unfiltered := filters.Empty()

		if unfiltered {
			if cached, err := rdb.Get(ctx, catalogCacheKey).Result(); err == nil {
				return c.JSONBlob(http.StatusOK, []byte(cached))
			}
		}

		list, err := listStrategies(ctx, db, store.StrategyFilters{
			ProficiencyLevel: filters.ProficiencyLevel,
			MarketOutlook:    filters.MarketOutlook,
			VolatilityView:   filters.VolatilityView,
			RiskProfile:      filters.RiskProfile,
			RewardProfile:    filters.RewardProfile,
			StrategyType:     filters.StrategyType,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list strategies"})
		}

		if unfiltered {
			if payload, err := json.Marshal(list); err == nil {
				rdb.Set(ctx, catalogCacheKey, payload, catalogCacheTTL)
			}
		}

		return c.JSON(http.StatusOK, list)
	}
}
