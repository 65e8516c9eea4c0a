// File: internal/handler/simulations/simulation_test.go
package simulations

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"options-lab/internal/database"
	"options-lab/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestCreateSimulationHandler(t *testing.T) {
	t.Cleanup(restoreSimulationGlobals)
	body := `{"userId":"` + simUser + `","strategyId":"` + simStrt + `","assetSymbol":"PETR4","simulationName":"Long Call 2024","startDate":"2024-01-01T00:00:00Z","endDate":"2024-06-30T00:00:00Z","initialCapital":"10000.00"}`
	db := &database.FakeDB{}

	// bind error
	e := echo.New()
	e.Binder = errBinder{}
	ctx, rec := newSimCtx(e, http.MethodPost, "/", "")
	require.NoError(t, CreateSimulationHandler(db)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newSimCtx(e, http.MethodPost, "/", body)
	require.NoError(t, CreateSimulationHandler(db)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	e = echo.New()
	e.Validator = okValidator{}

	// user missing
	userExists = func(ctx context.Context, d database.DB, id string) (bool, error) {
		require.Equal(t, simUser, id)
		return false, nil
	}
	ctx, rec = newSimCtx(e, http.MethodPost, "/", body)
	require.NoError(t, CreateSimulationHandler(db)(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "user not found")

	userExists = func(context.Context, database.DB, string) (bool, error) { return true, nil }

	// strategy missing
	strategyExists = func(ctx context.Context, d database.DB, id string) (bool, error) {
		require.Equal(t, simStrt, id)
		return false, nil
	}
	ctx, rec = newSimCtx(e, http.MethodPost, "/", body)
	require.NoError(t, CreateSimulationHandler(db)(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "strategy not found")

	strategyExists = func(context.Context, database.DB, string) (bool, error) { return true, nil }

	// store error
	createSimulation = func(context.Context, database.DB, *model.Simulation) (*model.Simulation, error) {
		return nil, errors.New("db")
	}
	ctx, rec = newSimCtx(e, http.MethodPost, "/", body)
	require.NoError(t, CreateSimulationHandler(db)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// success
	createSimulation = func(ctx context.Context, d database.DB, s *model.Simulation) (*model.Simulation, error) {
		require.Equal(t, "PETR4", s.AssetSymbol)
		require.Equal(t, "10000.00", s.InitialCapital)
		s.ID = simID
		return s, nil
	}
	ctx, rec = newSimCtx(e, http.MethodPost, "/", body)
	require.NoError(t, CreateSimulationHandler(db)(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), simID)
}

func TestListUserSimulationsHandler(t *testing.T) {
	t.Cleanup(restoreSimulationGlobals)
	db := &database.FakeDB{}
	e := echo.New()
	e.Validator = okValidator{}

	// invalid user id
	ctx, rec := newSimCtx(e, http.MethodGet, "/", "")
	ctx.SetParamNames("user_id")
	ctx.SetParamValues("nope")
	require.NoError(t, ListUserSimulationsHandler(db)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// user missing
	userExists = func(context.Context, database.DB, string) (bool, error) { return false, nil }
	ctx, rec = newSimCtx(e, http.MethodGet, "/", "")
	ctx.SetParamNames("user_id")
	ctx.SetParamValues(simUser)
	require.NoError(t, ListUserSimulationsHandler(db)(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)

	userExists = func(context.Context, database.DB, string) (bool, error) { return true, nil }

	// list error
	listSimulationsByUser = func(context.Context, database.DB, string, bool, int) ([]model.Simulation, error) {
		return nil, errors.New("db")
	}
	ctx, rec = newSimCtx(e, http.MethodGet, "/", "")
	ctx.SetParamNames("user_id")
	ctx.SetParamValues(simUser)
	require.NoError(t, ListUserSimulationsHandler(db)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// 預設新到舊
	var gotDesc bool
	var gotLimit int
	listSimulationsByUser = func(ctx context.Context, d database.DB, uid string, desc bool, limit int) ([]model.Simulation, error) {
		gotDesc = desc
		gotLimit = limit
		return []model.Simulation{{ID: simID}}, nil
	}
	ctx, rec = newSimCtx(e, http.MethodGet, "/", "")
	ctx.SetParamNames("user_id")
	ctx.SetParamValues(simUser)
	require.NoError(t, ListUserSimulationsHandler(db)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, gotDesc)
	require.Zero(t, gotLimit)
	require.Contains(t, rec.Body.String(), simID)

	// orderBy=oldest 與 limit
	ctx, rec = newSimCtx(e, http.MethodGet, "/?orderBy=oldest&limit=5", "")
	ctx.SetParamNames("user_id")
	ctx.SetParamValues(simUser)
	require.NoError(t, ListUserSimulationsHandler(db)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.False(t, gotDesc)
	require.Equal(t, 5, gotLimit)
}

func TestGetSimulationHandler(t *testing.T) {
	t.Cleanup(restoreSimulationGlobals)
	db := &database.FakeDB{}
	e := echo.New()

	// invalid id
	ctx, rec := newSimCtx(e, http.MethodGet, "/", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("nope")
	require.NoError(t, GetSimulationHandler(db)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// not found
	getSimulationByID = func(context.Context, database.DB, string) (*model.Simulation, error) {
		return nil, errors.New("no rows")
	}
	ctx, rec = newSimCtx(e, http.MethodGet, "/", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues(simID)
	require.NoError(t, GetSimulationHandler(db)(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)

	getSimulationByID = func(context.Context, database.DB, string) (*model.Simulation, error) {
		return &model.Simulation{ID: simID, SimulationName: "Long Call 2024"}, nil
	}

	// legs error
	listSimulationLegs = func(context.Context, database.DB, string) ([]model.SimulationLeg, error) {
		return nil, errors.New("db")
	}
	ctx, rec = newSimCtx(e, http.MethodGet, "/", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues(simID)
	require.NoError(t, GetSimulationHandler(db)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// success
	listSimulationLegs = func(context.Context, database.DB, string) ([]model.SimulationLeg, error) {
		return []model.SimulationLeg{{ID: "leg-1", SimulationID: simID}}, nil
	}
	ctx, rec = newSimCtx(e, http.MethodGet, "/", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues(simID)
	require.NoError(t, GetSimulationHandler(db)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Long Call 2024")
	require.Contains(t, rec.Body.String(), "leg-1")
}

func TestUpdateSimulationHandler(t *testing.T) {
	t.Cleanup(restoreSimulationGlobals)
	db := &database.FakeDB{}
	e := echo.New()
	e.Validator = okValidator{}

	// invalid id
	ctx, rec := newSimCtx(e, http.MethodPatch, "/", "{}")
	ctx.SetParamNames("id")
	ctx.SetParamValues("nope")
	require.NoError(t, UpdateSimulationHandler(db)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// not found
	getSimulationByID = func(context.Context, database.DB, string) (*model.Simulation, error) {
		return nil, errors.New("no rows")
	}
	ctx, rec = newSimCtx(e, http.MethodPatch, "/", `{"totalReturn":"1500.00"}`)
	ctx.SetParamNames("id")
	ctx.SetParamValues(simID)
	require.NoError(t, UpdateSimulationHandler(db)(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)

	// 只更新帶入的結果欄位
	getSimulationByID = func(context.Context, database.DB, string) (*model.Simulation, error) {
		return &model.Simulation{ID: simID, SimulationName: "Keep Me"}, nil
	}
	var saved *model.Simulation
	updateSimulation = func(ctx context.Context, d database.DB, s *model.Simulation) error {
		saved = s
		return nil
	}
	ctx, rec = newSimCtx(e, http.MethodPatch, "/", `{"totalReturn":"1500.00","returnPercentage":"15.00"}`)
	ctx.SetParamNames("id")
	ctx.SetParamValues(simID)
	require.NoError(t, UpdateSimulationHandler(db)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Keep Me", saved.SimulationName)
	require.Equal(t, "1500.00", *saved.TotalReturn)
	require.Equal(t, "15.00", *saved.ReturnPercentage)
	require.Nil(t, saved.MaxDrawdown)

	// update error
	updateSimulation = func(context.Context, database.DB, *model.Simulation) error { return errors.New("db") }
	ctx, rec = newSimCtx(e, http.MethodPatch, "/", `{"simulationName":"X"}`)
	ctx.SetParamNames("id")
	ctx.SetParamValues(simID)
	require.NoError(t, UpdateSimulationHandler(db)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestDeleteSimulationHandler(t *testing.T) {
	t.Cleanup(restoreSimulationGlobals)
	db := &database.FakeDB{}
	e := echo.New()

	// invalid id
	ctx, rec := newSimCtx(e, http.MethodDelete, "/", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("nope")
	require.NoError(t, DeleteSimulationHandler(db)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// exists check error
	simulationExists = func(context.Context, database.DB, string) (bool, error) { return false, errors.New("db") }
	ctx, rec = newSimCtx(e, http.MethodDelete, "/", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues(simID)
	require.NoError(t, DeleteSimulationHandler(db)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// not found
	simulationExists = func(context.Context, database.DB, string) (bool, error) { return false, nil }
	ctx, rec = newSimCtx(e, http.MethodDelete, "/", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues(simID)
	require.NoError(t, DeleteSimulationHandler(db)(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)

	simulationExists = func(context.Context, database.DB, string) (bool, error) { return true, nil }

	// delete error
	deleteSimulation = func(context.Context, database.DB, string) error { return errors.New("db") }
	ctx, rec = newSimCtx(e, http.MethodDelete, "/", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues(simID)
	require.NoError(t, DeleteSimulationHandler(db)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// success
	deleteSimulation = func(context.Context, database.DB, string) error { return nil }
	ctx, rec = newSimCtx(e, http.MethodDelete, "/", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues(simID)
	require.NoError(t, DeleteSimulationHandler(db)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "simulation deleted")
}
