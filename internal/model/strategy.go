// File: internal/model/strategy.go
package model

import "time"

// MarketOutlook 策略適用的市場預期
type MarketOutlook string

const (
	OutlookBullish MarketOutlook = "BULLISH"
	OutlookBearish MarketOutlook = "BEARISH"
	OutlookNeutral MarketOutlook = "NEUTRAL"
)

// VolatilityView 策略適用的波動率看法
type VolatilityView string

const (
	VolatilityHigh    VolatilityView = "HIGH"
	VolatilityNeutral VolatilityView = "NEUTRAL"
	VolatilityLow     VolatilityView = "LOW"
)

// RiskProfile 最大損失是否有上限
type RiskProfile string

const (
	RiskCapped   RiskProfile = "CAPPED"
	RiskUncapped RiskProfile = "UNCAPPED"
)

// RewardProfile 最大獲利是否有上限
type RewardProfile string

const (
	RewardCapped   RewardProfile = "CAPPED"
	RewardUncapped RewardProfile = "UNCAPPED"
)

// StrategyType 策略目的分類
type StrategyType string

const (
	StrategyCapitalGain StrategyType = "CAPITAL_GAIN"
	StrategyIncome      StrategyType = "INCOME"
	StrategyProtection  StrategyType = "PROTECTION"
)

// LegAction 買進或賣出
type LegAction string

const (
	ActionBuy  LegAction = "BUY"
	ActionSell LegAction = "SELL"
)

// InstrumentType 腿部使用的金融工具
type InstrumentType string

const (
	InstrumentCall  InstrumentType = "CALL"
	InstrumentPut   InstrumentType = "PUT"
	InstrumentStock InstrumentType = "STOCK"
)

// StrikeRelation 履約價相對現價的位置
type StrikeRelation string

const (
	StrikeATM StrikeRelation = "ATM"
	StrikeITM StrikeRelation = "ITM"
	StrikeOTM StrikeRelation = "OTM"
)

type Strategy struct {
	ID               string          `db:"id" json:"id"`
	Name             string          `db:"name" json:"name"`
	Summary          *string         `db:"summary" json:"summary"`
	Description      *string         `db:"description" json:"description"`
	ProficiencyLevel ExperienceLevel `db:"proficiency_level" json:"proficiency_level"`
	MarketOutlook    MarketOutlook   `db:"market_outlook" json:"market_outlook"`
	VolatilityView   VolatilityView  `db:"volatility_view" json:"volatility_view"`
	RiskProfile      RiskProfile     `db:"risk_profile" json:"risk_profile"`
	RewardProfile    RewardProfile   `db:"reward_profile" json:"reward_profile"`
	StrategyType     StrategyType    `db:"strategy_type" json:"strategy_type"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updated_at"`
}

type StrategyLeg struct {
	ID             string         `db:"id" json:"id"`
	StrategyID     string         `db:"strategy_id" json:"strategy_id"`
	Action         LegAction      `db:"action" json:"action"`
	InstrumentType InstrumentType `db:"instrument_type" json:"instrument_type"`
	QuantityRatio  int            `db:"quantity_ratio" json:"quantity_ratio"`
	StrikeRelation StrikeRelation `db:"strike_relation" json:"strike_relation"`
}
