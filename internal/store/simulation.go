// File: internal/store/simulation.go
package store

import (
	"context"
	"fmt"

	"options-lab/internal/database"
	"options-lab/internal/model"
)

const simulationColumns = `id, user_id, strategy_id, asset_symbol, simulation_name, start_date,
		 end_date, initial_capital, total_return, return_percentage, max_drawdown, created_at, updated_at`

func scanSimulation(row interface{ Scan(dest ...any) error }, s *model.Simulation) error {
	return row.Scan(
		&s.ID,
		&s.UserID,
		&s.StrategyID,
		&s.AssetSymbol,
		&s.SimulationName,
		&s.StartDate,
		&s.EndDate,
		&s.InitialCapital,
		&s.TotalReturn,
		&s.ReturnPercentage,
		&s.MaxDrawdown,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
}

func CreateSimulation(ctx context.Context, db database.DB, s *model.Simulation) (*model.Simulation, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO simulations (user_id, strategy_id, asset_symbol, simulation_name,
		 start_date, end_date, initial_capital)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		s.UserID,
		s.StrategyID,
		s.AssetSymbol,
		s.SimulationName,
		s.StartDate,
		s.EndDate,
		s.InitialCapital,
	)
	if err := row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateSimulation: %w", err)
	}
	return s, nil
}

func GetSimulationByID(ctx context.Context, db database.DB, simulationID string) (*model.Simulation, error) {
	row := db.QueryRow(ctx,
		`SELECT `+simulationColumns+` FROM simulations WHERE id = $1`,
		simulationID,
	)
	s := &model.Simulation{}
	if err := scanSimulation(row, s); err != nil {
		return nil, fmt.Errorf("GetSimulationByID: %w", err)
	}
	return s, nil
}

// ListSimulationsByUser 依建立時間排序，desc=true 為最新在前；limit <= 0 表示不限筆數
func ListSimulationsByUser(ctx context.Context, db database.DB, userID string, desc bool, limit int) ([]model.Simulation, error) {
	query := `SELECT ` + simulationColumns + ` FROM simulations WHERE user_id = $1 ORDER BY created_at`
	if desc {
		query += " DESC"
	} else {
		query += " ASC"
	}
	args := []any{userID}
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListSimulationsByUser: %w", err)
	}
	defer rows.Close()

	sims := []model.Simulation{}
	for rows.Next() {
		var s model.Simulation
		if err := scanSimulation(rows, &s); err != nil {
			return nil, fmt.Errorf("ListSimulationsByUser: %w", err)
		}
		sims = append(sims, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListSimulationsByUser: %w", err)
	}
	return sims, nil
}

func UpdateSimulation(ctx context.Context, db database.DB, s *model.Simulation) error {
	_, err := db.Exec(ctx,
		`UPDATE simulations
		 SET simulation_name = $1, total_return = $2, return_percentage = $3,
		     max_drawdown = $4, updated_at = now()
		 WHERE id = $5`,
		s.SimulationName,
		s.TotalReturn,
		s.ReturnPercentage,
		s.MaxDrawdown,
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateSimulation: %w", err)
	}
	return nil
}

func DeleteSimulation(ctx context.Context, db database.DB, simulationID string) error {
	_, err := db.Exec(ctx,
		`DELETE FROM simulations WHERE id = $1`,
		simulationID,
	)
	if err != nil {
		return fmt.Errorf("DeleteSimulation: %w", err)
	}
	return nil
}

func SimulationExists(ctx context.Context, db database.DB, simulationID string) (bool, error) {
	row := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM simulations WHERE id = $1)`,
		simulationID,
	)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("SimulationExists: %w", err)
	}
	return exists, nil
}

func ListSimulationLegs(ctx context.Context, db database.DB, simulationID string) ([]model.SimulationLeg, error) {
	rows, err := db.Query(ctx,
		`SELECT id, simulation_id, instrument_type, action, quantity, entry_price,
		 entry_date, exit_price, exit_date, profit_loss
		 FROM simulation_legs WHERE simulation_id = $1`,
		simulationID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListSimulationLegs: %w", err)
	}
	defer rows.Close()

	legs := []model.SimulationLeg{}
	for rows.Next() {
		var l model.SimulationLeg
		if err := rows.Scan(
			&l.ID,
			&l.SimulationID,
			&l.InstrumentType,
			&l.Action,
			&l.Quantity,
			&l.EntryPrice,
			&l.EntryDate,
			&l.ExitPrice,
			&l.ExitDate,
			&l.ProfitLoss,
		); err != nil {
			return nil, fmt.Errorf("ListSimulationLegs: %w", err)
		}
		legs = append(legs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListSimulationLegs: %w", err)
	}
	return legs, nil
}

func CreateSimulationLeg(ctx context.Context, db database.DB, l *model.SimulationLeg) (*model.SimulationLeg, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO simulation_legs (simulation_id, instrument_type, action, quantity,
		 entry_price, entry_date, exit_price, exit_date, profit_loss)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		l.SimulationID,
		l.InstrumentType,
		l.Action,
		l.Quantity,
		l.EntryPrice,
		l.EntryDate,
		l.ExitPrice,
		l.ExitDate,
		l.ProfitLoss,
	)
	if err := row.Scan(&l.ID); err != nil {
		return nil, fmt.Errorf("CreateSimulationLeg: %w", err)
	}
	return l, nil
}
