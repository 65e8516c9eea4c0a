// File: internal/handler/simulations/simulations.go
package simulations

import (
	"options-lab/internal/store"
)

// 測試替換點
var (
	createSimulation      = store.CreateSimulation
	getSimulationByID     = store.GetSimulationByID
	listSimulationsByUser = store.ListSimulationsByUser
	updateSimulation      = store.UpdateSimulation
	deleteSimulation      = store.DeleteSimulation
	simulationExists      = store.SimulationExists
	listSimulationLegs    = store.ListSimulationLegs
	createSimulationLeg   = store.CreateSimulationLeg
	userExists            = store.UserExists
	strategyExists        = store.StrategyExists
)
