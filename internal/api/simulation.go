// File: internal/api/simulation.go
package api

import (
	"time"

	"options-lab/internal/model"
)

// swagger:model api.CreateSimulationRequest
type CreateSimulationRequest struct {
	UserID         string    `json:"userId" validate:"required,uuid4"`
	StrategyID     string    `json:"strategyId" validate:"required,uuid4"`
	AssetSymbol    string    `json:"assetSymbol" validate:"required" example:"PETR4"`
	SimulationName string    `json:"simulationName" validate:"required" example:"Long Call 2024"`
	StartDate      time.Time `json:"startDate" validate:"required"`
	EndDate        time.Time `json:"endDate" validate:"required"`
	InitialCapital string    `json:"initialCapital" validate:"required,numeric" example:"10000.00"`
}

// UpdateSimulationRequest 部分更新，更新結果指標或名稱
// swagger:model api.UpdateSimulationRequest
type UpdateSimulationRequest struct {
	SimulationName   *string `json:"simulationName,omitempty" validate:"omitempty,min=1"`
	TotalReturn      *string `json:"totalReturn,omitempty" validate:"omitempty,numeric"`
	ReturnPercentage *string `json:"returnPercentage,omitempty" validate:"omitempty,numeric"`
	MaxDrawdown      *string `json:"maxDrawdown,omitempty" validate:"omitempty,numeric"`
}

// swagger:model api.CreateSimulationLegRequest
type CreateSimulationLegRequest struct {
	InstrumentType string     `json:"instrumentType" validate:"required,oneof=CALL PUT STOCK" example:"CALL"`
	Action         string     `json:"action" validate:"required,oneof=BUY SELL" example:"BUY"`
	Quantity       int        `json:"quantity" validate:"required,min=1" example:"1"`
	EntryPrice     string     `json:"entryPrice" validate:"required,numeric" example:"100.00"`
	EntryDate      time.Time  `json:"entryDate" validate:"required"`
	ExitPrice      *string    `json:"exitPrice,omitempty" validate:"omitempty,numeric"`
	ExitDate       *time.Time `json:"exitDate,omitempty"`
	ProfitLoss     *string    `json:"profitLoss,omitempty" validate:"omitempty,numeric"`
}

// SimulationDetail 模擬及其所有腿部
// swagger:model api.SimulationDetail
type SimulationDetail struct {
	model.Simulation
	Legs []model.SimulationLeg `json:"legs"`
}

// ListSimulationsQuery 查詢使用者的模擬列表
// swagger:model api.ListSimulationsQuery
type ListSimulationsQuery struct {
	Limit   int    `query:"limit" validate:"omitempty,min=1"`
	OrderBy string `query:"orderBy" validate:"omitempty,oneof=recent oldest"`
}
