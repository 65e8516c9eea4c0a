// File: internal/store/strategy.go
package store

import (
	"context"
	"fmt"
	"strings"

	"options-lab/internal/database"
	"options-lab/internal/model"
)

// StrategyFilters 為空字串的欄位不參與過濾
type StrategyFilters struct {
	ProficiencyLevel string
	MarketOutlook    string
	VolatilityView   string
	RiskProfile      string
	RewardProfile    string
	StrategyType     string
}

const strategyColumns = `id, name, summary, description, proficiency_level, market_outlook,
		 volatility_view, risk_profile, reward_profile, strategy_type, created_at, updated_at`

func scanStrategy(row interface{ Scan(dest ...any) error }, s *model.Strategy) error {
	return row.Scan(
		&s.ID,
		&s.Name,
		&s.Summary,
		&s.Description,
		&s.ProficiencyLevel,
		&s.MarketOutlook,
		&s.VolatilityView,
		&s.RiskProfile,
		&s.RewardProfile,
		&s.StrategyType,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
}

func ListStrategies(ctx context.Context, db database.DB, f StrategyFilters) ([]model.Strategy, error) {
	conds := []string{}
	args := []any{}
	add := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	add("proficiency_level", f.ProficiencyLevel)
	add("market_outlook", f.MarketOutlook)
	add("volatility_view", f.VolatilityView)
	add("risk_profile", f.RiskProfile)
	add("reward_profile", f.RewardProfile)
	add("strategy_type", f.StrategyType)

	query := `SELECT ` + strategyColumns + ` FROM strategies`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY name ASC"

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListStrategies: %w", err)
	}
	defer rows.Close()

	strategies := []model.Strategy{}
	for rows.Next() {
		var s model.Strategy
		if err := scanStrategy(rows, &s); err != nil {
			return nil, fmt.Errorf("ListStrategies: %w", err)
		}
		strategies = append(strategies, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListStrategies: %w", err)
	}
	return strategies, nil
}

func GetStrategyByID(ctx context.Context, db database.DB, strategyID string) (*model.Strategy, error) {
	row := db.QueryRow(ctx,
		`SELECT `+strategyColumns+` FROM strategies WHERE id = $1`,
		strategyID,
	)
	s := &model.Strategy{}
	if err := scanStrategy(row, s); err != nil {
		return nil, fmt.Errorf("GetStrategyByID: %w", err)
	}
	return s, nil
}

func CreateStrategy(ctx context.Context, db database.DB, s *model.Strategy) (*model.Strategy, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO strategies (name, summary, description, proficiency_level, market_outlook,
		 volatility_view, risk_profile, reward_profile, strategy_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		s.Name,
		s.Summary,
		s.Description,
		s.ProficiencyLevel,
		s.MarketOutlook,
		s.VolatilityView,
		s.RiskProfile,
		s.RewardProfile,
		s.StrategyType,
	)
	if err := row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateStrategy: %w", err)
	}
	return s, nil
}

func UpdateStrategy(ctx context.Context, db database.DB, s *model.Strategy) error {
	_, err := db.Exec(ctx,
		`UPDATE strategies
		 SET name = $1, summary = $2, description = $3, proficiency_level = $4,
		     market_outlook = $5, volatility_view = $6, risk_profile = $7,
		     reward_profile = $8, strategy_type = $9, updated_at = now()
		 WHERE id = $10`,
		s.Name,
		s.Summary,
		s.Description,
		s.ProficiencyLevel,
		s.MarketOutlook,
		s.VolatilityView,
		s.RiskProfile,
		s.RewardProfile,
		s.StrategyType,
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateStrategy: %w", err)
	}
	return nil
}

func DeleteStrategy(ctx context.Context, db database.DB, strategyID string) error {
	_, err := db.Exec(ctx,
		`DELETE FROM strategies WHERE id = $1`,
		strategyID,
	)
	if err != nil {
		return fmt.Errorf("DeleteStrategy: %w", err)
	}
	return nil
}

func StrategyExists(ctx context.Context, db database.DB, strategyID string) (bool, error) {
	row := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM strategies WHERE id = $1)`,
		strategyID,
	)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("StrategyExists: %w", err)
	}
	return exists, nil
}

func ListStrategyLegs(ctx context.Context, db database.DB, strategyID string) ([]model.StrategyLeg, error) {
	rows, err := db.Query(ctx,
		`SELECT id, strategy_id, action, instrument_type, quantity_ratio, strike_relation
		 FROM strategy_legs WHERE strategy_id = $1`,
		strategyID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListStrategyLegs: %w", err)
	}
	defer rows.Close()

	legs := []model.StrategyLeg{}
	for rows.Next() {
		var l model.StrategyLeg
		if err := rows.Scan(
			&l.ID,
			&l.StrategyID,
			&l.Action,
			&l.InstrumentType,
			&l.QuantityRatio,
			&l.StrikeRelation,
		); err != nil {
			return nil, fmt.Errorf("ListStrategyLegs: %w", err)
		}
		legs = append(legs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListStrategyLegs: %w", err)
	}
	return legs, nil
}

func CreateStrategyLeg(ctx context.Context, db database.DB, l *model.StrategyLeg) (*model.StrategyLeg, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO strategy_legs (strategy_id, action, instrument_type, quantity_ratio, strike_relation)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		l.StrategyID,
		l.Action,
		l.InstrumentType,
		l.QuantityRatio,
		l.StrikeRelation,
	)
	if err := row.Scan(&l.ID); err != nil {
		return nil, fmt.Errorf("CreateStrategyLeg: %w", err)
	}
	return l, nil
}

func DeleteStrategyLeg(ctx context.Context, db database.DB, legID string) error {
	_, err := db.Exec(ctx,
		`DELETE FROM strategy_legs WHERE id = $1`,
		legID,
	)
	if err != nil {
		return fmt.Errorf("DeleteStrategyLeg: %w", err)
	}
	return nil
}
