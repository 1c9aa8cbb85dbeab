package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ljacquet/patrimoine-backend/internal/coingecko"
	"github.com/ljacquet/patrimoine-backend/internal/model"
	"github.com/ljacquet/patrimoine-backend/internal/repository"
)

// SimulationService manages paper positions: an invested amount at an entry
// price, revalued against the live quote on demand.
type SimulationService struct {
	simulationRepo *repository.SimulationRepository
	gecko          coingecko.Client
}

// NewSimulationService creates a new SimulationService.
func NewSimulationService(simulationRepo *repository.SimulationRepository, gecko coingecko.Client) *SimulationService {
	return &SimulationService{simulationRepo: simulationRepo, gecko: gecko}
}

// GetSimulations returns all simulations for a user.
func (s *SimulationService) GetSimulations(userID string) ([]model.Simulation, error) {
	return s.simulationRepo.GetSimulations(userID)
}

// CreateSimulation persists a new paper position. Quantity is derived from
// the investment and entry price; the position starts valued at its entry.
func (s *SimulationService) CreateSimulation(sim model.Simulation, entryPrice float64) (model.Simulation, error) {
	sim.ID = uuid.New().String()
	sim.Symbol = strings.ToUpper(sim.Symbol)
	sim.CreatedAt = time.Now().UTC()

	if entryPrice > 0 {
		sim.Quantity = sim.Investment / entryPrice
	}
	sim.CurrentPrice = entryPrice
	sim.CurrentValue = sim.Investment
	sim.ProfitLoss = 0

	if err := s.simulationRepo.InsertSimulation(sim); err != nil {
		return model.Simulation{}, fmt.Errorf("failed to create simulation: %w", err)
	}
	return sim, nil
}

// RefreshSimulation revalues one paper position against the live quote.
// Positions whose symbol cannot be resolved keep their last valuation.
func (s *SimulationService) RefreshSimulation(userID, simulationID string) (model.Simulation, error) {
	sim, err := s.simulationRepo.GetSimulationOnID(userID, simulationID)
	if err != nil {
		return model.Simulation{}, err
	}

	coinID, err := s.gecko.SearchCoin(sim.Symbol)
	if err != nil {
		return sim, nil
	}
	price, ok := s.gecko.GetPrice(coinID)
	if !ok {
		return sim, nil
	}

	sim.CurrentPrice = price
	sim.CurrentValue = sim.Quantity * price
	sim.ProfitLoss = sim.CurrentValue - sim.Investment

	if err := s.simulationRepo.UpdateSimulationValuation(sim); err != nil {
		return model.Simulation{}, fmt.Errorf("failed to update simulation: %w", err)
	}
	return sim, nil
}

// DeleteSimulation removes a paper position owned by the user.
func (s *SimulationService) DeleteSimulation(userID, simulationID string) error {
	return s.simulationRepo.DeleteSimulation(userID, simulationID)
}
