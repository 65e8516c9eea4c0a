// File: internal/model/simulation.go
package model

import "time"

// Simulation 紀錄一次策略的歷史回測
// 金額欄位以字串保存 numeric 精度
type Simulation struct {
	ID               string    `db:"id" json:"id"`
	UserID           string    `db:"user_id" json:"user_id"`
	StrategyID       string    `db:"strategy_id" json:"strategy_id"`
	AssetSymbol      string    `db:"asset_symbol" json:"asset_symbol"`
	SimulationName   string    `db:"simulation_name" json:"simulation_name"`
	StartDate        time.Time `db:"start_date" json:"start_date"`
	EndDate          time.Time `db:"end_date" json:"end_date"`
	InitialCapital   string    `db:"initial_capital" json:"initial_capital"`
	TotalReturn      *string   `db:"total_return" json:"total_return"`
	ReturnPercentage *string   `db:"return_percentage" json:"return_percentage"`
	MaxDrawdown      *string   `db:"max_drawdown" json:"max_drawdown"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

type SimulationLeg struct {
	ID             string         `db:"id" json:"id"`
	SimulationID   string         `db:"simulation_id" json:"simulation_id"`
	InstrumentType InstrumentType `db:"instrument_type" json:"instrument_type"`
	Action         LegAction      `db:"action" json:"action"`
	Quantity       int            `db:"quantity" json:"quantity"`
	EntryPrice     string         `db:"entry_price" json:"entry_price"`
	EntryDate      time.Time      `db:"entry_date" json:"entry_date"`
	ExitPrice      *string        `db:"exit_price" json:"exit_price"`
	ExitDate       *time.Time     `db:"exit_date" json:"exit_date"`
	ProfitLoss     *string        `db:"profit_loss" json:"profit_loss"`
}
