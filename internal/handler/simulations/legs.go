// File: internal/handler/simulations/legs.go
package simulations

import (
	"net/http"

	"options-lab/internal/api"
	"options-lab/internal/database"
	"options-lab/internal/model"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CreateSimulationLegHandler 為模擬新增一條腿
// @Summary     新增模擬腿部
// @Tags        simulations
// @Accept      json
// @Produce     json
// @Param       id   path string true "模擬 ID"
// @Param       body body api.CreateSimulationLegRequest true "腿部資料"
// @Success     201  {object} model.SimulationLeg
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /simulations/{id}/legs [post]
func CreateSimulationLegHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if _, err := uuid.Parse(id); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid simulation ID"})
		}

		var req api.CreateSimulationLegRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		exists, err := simulationExists(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to check simulation"})
		}
		if !exists {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "simulation not found"})
		}

		leg, err := createSimulationLeg(c.Request().Context(), db, &model.SimulationLeg{
			SimulationID:   id,
			InstrumentType: model.InstrumentType(req.InstrumentType),
			Action:         model.LegAction(req.Action),
			Quantity:       req.Quantity,
			EntryPrice:     req.EntryPrice,
			EntryDate:      req.EntryDate,
			ExitPrice:      req.ExitPrice,
			ExitDate:       req.ExitDate,
			ProfitLoss:     req.ProfitLoss,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create simulation leg"})
		}

		return c.JSON(http.StatusCreated, leg)
	}
}

// ListSimulationLegsHandler 取得模擬的所有腿部
// @Summary     列出模擬腿部
// @Tags        simulations
// @Produce     json
// @Param       id path string true "模擬 ID"
// @Success     200 {array}  model.SimulationLeg
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /simulations/{id}/legs [get]
func ListSimulationLegsHandler(db database.DB) echo.HandlerFunc {
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

		legs, err := listSimulationLegs(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list simulation legs"})
		}

		return c.JSON(http.StatusOK, legs)
	}
}
