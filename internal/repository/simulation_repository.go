package repository

import (
	"database/sql"
	"fmt"

	"github.com/ljacquet/patrimoine-backend/internal/apperrors"
	"github.com/ljacquet/patrimoine-backend/internal/model"
)

// SimulationRepository provides data access methods for the simulation table.
type SimulationRepository struct {
	db *sql.DB
}

// NewSimulationRepository creates a new SimulationRepository with the provided database connection.
func NewSimulationRepository(db *sql.DB) *SimulationRepository {
	return &SimulationRepository{db: db}
}

const simulationColumns = `id, user_id, name, symbol, asset_type, investment,
          quantity, current_price, current_value, profit_loss, created_at`

// GetSimulations retrieves all simulations belonging to a user, oldest first.
func (r *SimulationRepository) GetSimulations(userID string) ([]model.Simulation, error) {
	query := `
          SELECT ` + simulationColumns + `
          FROM simulation
          WHERE user_id = ?
          ORDER BY created_at, id
      `
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query simulation table: %w", err)
	}
	defer rows.Close()

	simulations := []model.Simulation{}
	for rows.Next() {
		var s model.Simulation
		var createdAt string

		err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.Name,
			&s.Symbol,
			&s.AssetType,
			&s.Investment,
			&s.Quantity,
			&s.CurrentPrice,
			&s.CurrentValue,
			&s.ProfitLoss,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan simulation table results: %w", err)
		}

		if s.CreatedAt, err = ParseTime(createdAt); err != nil {
			return nil, err
		}

		simulations = append(simulations, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating simulation table: %w", err)
	}

	return simulations, nil
}

// GetSimulationOnID retrieves one simulation, verifying ownership.
func (r *SimulationRepository) GetSimulationOnID(userID, simulationID string) (model.Simulation, error) {
	query := `
          SELECT ` + simulationColumns + `
          FROM simulation
          WHERE id = ? AND user_id = ?
      `
	var s model.Simulation
	var createdAt string

	err := r.db.QueryRow(query, simulationID, userID).Scan(
		&s.ID,
		&s.UserID,
		&s.Name,
		&s.Symbol,
		&s.AssetType,
		&s.Investment,
		&s.Quantity,
		&s.CurrentPrice,
		&s.CurrentValue,
		&s.ProfitLoss,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return model.Simulation{}, apperrors.ErrSimulationNotFound
	}
	if err != nil {
		return model.Simulation{}, fmt.Errorf("failed to query simulation: %w", err)
	}

	if s.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.Simulation{}, err
	}

	return s, nil
}

// InsertSimulation creates a new simulation row.
func (r *SimulationRepository) InsertSimulation(s model.Simulation) error {
	query := `
          INSERT INTO simulation (` + simulationColumns + `)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
      `
	_, err := r.db.Exec(
		query,
		s.ID,
		s.UserID,
		s.Name,
		s.Symbol,
		s.AssetType,
		s.Investment,
		s.Quantity,
		s.CurrentPrice,
		s.CurrentValue,
		s.ProfitLoss,
		s.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert simulation: %w", err)
	}
	return nil
}

// UpdateSimulationValuation writes back a refreshed price, value, and P/L.
func (r *SimulationRepository) UpdateSimulationValuation(s model.Simulation) error {
	query := `
          UPDATE simulation
          SET current_price = ?, current_value = ?, profit_loss = ?
          WHERE id = ? AND user_id = ?
      `
	result, err := r.db.Exec(query, s.CurrentPrice, s.CurrentValue, s.ProfitLoss, s.ID, s.UserID)
	if err != nil {
		return fmt.Errorf("failed to update simulation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrSimulationNotFound
	}
	return nil
}

// DeleteSimulation removes a simulation, verifying ownership.
func (r *SimulationRepository) DeleteSimulation(userID, simulationID string) error {
	result, err := r.db.Exec(`DELETE FROM simulation WHERE id = ? AND user_id = ?`, simulationID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete simulation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrSimulationNotFound
	}
	return nil
}
