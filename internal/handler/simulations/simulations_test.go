// File: internal/handler/simulations/simulations_test.go
package simulations

import (
	"errors"
	"net/http/httptest"
	"strings"

	"options-lab/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	simID   = "4c1e8f2a-9b3d-4e5f-8a7c-6d5e4f3a2b1c"
	simUser = "7e2a9c1b-4d3f-4a5e-9b8c-1f2e3d4c5b6a"
	simStrt = "0b6e1f3a-7a0e-4f9d-8a3c-2f1e5d4c3b2a"
)

// 將所有替換點還原為正式實作
func restoreSimulationGlobals() {
	createSimulation = store.CreateSimulation
	getSimulationByID = store.GetSimulationByID
	listSimulationsByUser = store.ListSimulationsByUser
	updateSimulation = store.UpdateSimulation
	deleteSimulation = store.DeleteSimulation
	simulationExists = store.SimulationExists
	listSimulationLegs = store.ListSimulationLegs
	createSimulationLeg = store.CreateSimulationLeg
	userExists = store.UserExists
	strategyExists = store.StrategyExists
}

func newSimCtx(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type errBinder struct{}

func (errBinder) Bind(i any, c echo.Context) error { return errors.New("bind") }

type errValidator struct{}

func (errValidator) Validate(i any) error { return errors.New("v") }

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }
