// File: internal/handler/simulations/simulation.go
package simulations

import (
	"net/http"

	"options-lab/internal/api"
	"options-lab/internal/database"
	"options-lab/internal/model"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CreateSimulationHandler 建立新的回測模擬
// @Summary     建立模擬
// @Description 建立模擬前會確認使用者與策略皆存在
// @Tags        simulations
// @Accept      json
// @Produce     json
// @Param       body body api.CreateSimulationRequest true "模擬資料"
// @Success     201  {object} model.Simulation
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /simulations [post]
func CreateSimulationHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateSimulationRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()

		exists, err := userExists(ctx, db, req.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to check user"})
		}
		if !exists {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}

		exists, err = strategyExists(ctx, db, req.StrategyID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to check strategy"})
		}
		if !exists {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "strategy not found"})
		}

		sim, err := createSimulation(ctx, db, &model.Simulation{
			UserID:         req.UserID,
			StrategyID:     req.StrategyID,
			AssetSymbol:    req.AssetSymbol,
			SimulationName: req.SimulationName,
			StartDate:      req.StartDate,
			EndDate:        req.EndDate,
			InitialCapital: req.InitialCapital,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create simulation"})
		}

		return c.JSON(http.StatusCreated, sim)
	}
}

// ListUserSimulationsHandler 列出某使用者的所有模擬
// @Summary     列出使用者模擬
// @Tags        simulations
// @Produce     json
// @Param       user_id path  string true  "使用者 ID"
// @Param       limit   query int    false "最多回傳筆數"
// @Param       orderBy query string false "recent | oldest"
// @Success     200 {array}  model.Simulation
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /simulations/user/{user_id} [get]
func ListUserSimulationsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := c.Param("user_id")
		if _, err := uuid.Parse(userID); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		var q api.ListSimulationsQuery
		if err := c.Bind(&q); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid query parameters"})
		}
		if err := c.Validate(&q); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		exists, err := userExists(ctx, db, userID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to check user"})
		}
		if !exists {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}

		desc := q.OrderBy != "oldest"
		sims, err := listSimulationsByUser(ctx, db, userID, desc, q.Limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list simulations"})
		}

		return c.JSON(http.StatusOK, sims)
	}
}

// GetSimulationHandler 取得單一模擬及其腿部
// @Summary     取得模擬
// @Tags        simulations
// @Produce     json
// @Param       id path string true "模擬 ID"
// @Success     200 {object} api.SimulationDetail
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /simulations/{id} [get]
func GetSimulationHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if _, err := uuid.Parse(id); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid simulation ID"})
		}

		sim, err := getSimulationByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "simulation not found"})
		}

		legs, err := listSimulationLegs(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list simulation legs"})
		}

		return c.JSON(http.StatusOK, api.SimulationDetail{Simulation: *sim, Legs: legs})
	}
}

// UpdateSimulationHandler 部分更新模擬名稱與結果指標
// @Summary     更新模擬
// @Tags        simulations
// @Accept      json
// @Produce     json
// @Param       id   path string true "模擬 ID"
// @Param       body body api.UpdateSimulationRequest true "更新欄位"
// @Success     200  {object} model.Simulation
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /simulations/{id} [patch]
func UpdateSimulationHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if _, err := uuid.Parse(id); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid simulation ID"})
		}

		var req api.UpdateSimulationRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		sim, err := getSimulationByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "simulation not found"})
		}

		if req.SimulationName != nil {
			sim.SimulationName = *req.SimulationName
		}
		if req.TotalReturn != nil {
			sim.TotalReturn = req.TotalReturn
		}
		if req.ReturnPercentage != nil {
			sim.ReturnPercentage = req.ReturnPercentage
		}
		if req.MaxDrawdown != nil {
			sim.MaxDrawdown = req.MaxDrawdown
		}

		if err := updateSimulation(c.Request().Context(), db, sim); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update simulation"})
		}

		updated, err := getSimulationByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load simulation"})
		}

		return c.JSON(http.StatusOK, updated)
	}
}

// DeleteSimulationHandler 刪除模擬，腿部由資料庫 cascade 一併刪除
// @Summary     刪除模擬
// @Tags        simulations
// @Produce     json
// @Param       id path string true "模擬 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /simulations/{id} [delete]
func DeleteSimulationHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if _, err := uuid.Parse(id); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid simulation ID"})
		}

		exists, err := simulationExists(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to check simulation"})
		}
		if !exists {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "simulation not found"})
		}

		if err := deleteSimulation(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to delete simulation"})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "simulation deleted"})
	}
}
