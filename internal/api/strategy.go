// File: internal/api/strategy.go
package api

import "options-lab/internal/model"

// swagger:model api.CreateStrategyRequest
type CreateStrategyRequest struct {
	Name             string  `json:"name" validate:"required" example:"Iron Condor"`
	Summary          *string `json:"summary,omitempty"`
	Description      *string `json:"description,omitempty"`
	ProficiencyLevel string  `json:"proficiencyLevel" validate:"required,oneof=NOVICE INTERMEDIATE ADVANCED EXPERT" example:"ADVANCED"`
	MarketOutlook    string  `json:"marketOutlook" validate:"required,oneof=BULLISH BEARISH NEUTRAL" example:"NEUTRAL"`
	VolatilityView   string  `json:"volatilityView" validate:"required,oneof=HIGH NEUTRAL LOW" example:"LOW"`
	RiskProfile      string  `json:"riskProfile" validate:"required,oneof=CAPPED UNCAPPED" example:"CAPPED"`
	RewardProfile    string  `json:"rewardProfile" validate:"required,oneof=CAPPED UNCAPPED" example:"CAPPED"`
	StrategyType     string  `json:"strategyType" validate:"required,oneof=CAPITAL_GAIN INCOME PROTECTION" example:"INCOME"`
}

// UpdateStrategyRequest 部分更新，所有欄位皆可省略
// swagger:model api.UpdateStrategyRequest
type UpdateStrategyRequest struct {
	Name             *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Summary          *string `json:"summary,omitempty"`
	Description      *string `json:"description,omitempty"`
	ProficiencyLevel *string `json:"proficiencyLevel,omitempty" validate:"omitempty,oneof=NOVICE INTERMEDIATE ADVANCED EXPERT"`
	MarketOutlook    *string `json:"marketOutlook,omitempty" validate:"omitempty,oneof=BULLISH BEARISH NEUTRAL"`
	VolatilityView   *string `json:"volatilityView,omitempty" validate:"omitempty,oneof=HIGH NEUTRAL LOW"`
	RiskProfile      *string `json:"riskProfile,omitempty" validate:"omitempty,oneof=CAPPED UNCAPPED"`
	RewardProfile    *string `json:"rewardProfile,omitempty" validate:"omitempty,oneof=CAPPED UNCAPPED"`
	StrategyType     *string `json:"strategyType,omitempty" validate:"omitempty,oneof=CAPITAL_GAIN INCOME PROTECTION"`
}

// StrategyFilters 對應 GET /strategies 的查詢參數
// swagger:model api.StrategyFilters
type StrategyFilters struct {
	ProficiencyLevel string `query:"proficiencyLevel" validate:"omitempty,oneof=NOVICE INTERMEDIATE ADVANCED EXPERT"`
	MarketOutlook    string `query:"marketOutlook" validate:"omitempty,oneof=BULLISH BEARISH NEUTRAL"`
	VolatilityView   string `query:"volatilityView" validate:"omitempty,oneof=HIGH NEUTRAL LOW"`
	RiskProfile      string `query:"riskProfile" validate:"omitempty,oneof=CAPPED UNCAPPED"`
	RewardProfile    string `query:"rewardProfile" validate:"omitempty,oneof=CAPPED UNCAPPED"`
	StrategyType     string `query:"strategyType" validate:"omitempty,oneof=CAPITAL_GAIN INCOME PROTECTION"`
}

// Empty 回報是否完全未帶過濾條件
func (f StrategyFilters) Empty() bool {
	return f == StrategyFilters{}
}

// swagger:model api.CreateStrategyLegRequest
type CreateStrategyLegRequest struct {
	StrategyID     string `json:"strategyId" validate:"required,uuid4" example:"8e4f72e6-1d18-4f0e-9ccb-854a1f9f2d5a"`
	Action         string `json:"action" validate:"required,oneof=BUY SELL" example:"BUY"`
	InstrumentType string `json:"instrumentType" validate:"required,oneof=CALL PUT STOCK" example:"CALL"`
	QuantityRatio  int    `json:"quantityRatio" validate:"required,min=1" example:"1"`
	StrikeRelation string `json:"strikeRelation" validate:"required,oneof=ATM ITM OTM" example:"ATM"`
}

// StrategyDetail 策略及其所有腿部
// swagger:model api.StrategyDetail
type StrategyDetail struct {
	model.Strategy
	Legs []model.StrategyLeg `json:"legs"`
}
