package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
)

// GetVeiculos handles GET /api/v1/veiculos. Vehicles are readable by any
// authenticated caller.
func (s *Server) GetVeiculos(ctx echo.Context) error {
	return s.respondVeiculos(ctx, false)
}

// GetVeiculosDisponiveis handles GET /api/v1/veiculos/disponiveis.
func (s *Server) GetVeiculosDisponiveis(ctx echo.Context) error {
	return s.respondVeiculos(ctx, true)
}

func (s *Server) respondVeiculos(ctx echo.Context, availableOnly bool) error {
	query, err := queries.NewGetVehiclesQuery(nil, availableOnly)
	if err != nil {
		return respondError(ctx, err)
	}

	vehicles, err := s.queries.GetVehicles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]veiculoResponse, len(vehicles))
	for i, v := range vehicles {
		response[i] = toVeiculoResponse(v)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetVeiculo handles GET /api/v1/veiculos/:id.
func (s *Server) GetVeiculo(ctx echo.Context) error {
	vehicleID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetVehiclesQuery(&vehicleID, false)
	if err != nil {
		return respondError(ctx, err)
	}

	vehicles, err := s.queries.GetVehicles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toVeiculoResponse(vehicles[0]))
}

// CreateVeiculo handles POST /api/v1/veiculos.
func (s *Server) CreateVeiculo(ctx echo.Context) error {
	var req veiculoRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	kind, err := vehicle.KindFromString(req.Tipo)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateVehicleCommand(
		req.Placa, req.Modelo, req.Marca, kind, req.CapacidadeMaxima, req.AnoFabricacao, req.KmAtual)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.CreateVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.VehicleID().String()})
}

// UpdateVeiculo handles PUT /api/v1/veiculos/:id. The plate is immutable
// and absent from the update contract.
func (s *Server) UpdateVeiculo(ctx echo.Context) error {
	vehicleID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req veiculoRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	kind, err := vehicle.KindFromString(req.Tipo)
	if err != nil {
		return respondError(ctx, err)
	}
	status, err := vehicle.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateVehicleCommand(
		vehicleID, req.Modelo, req.Marca, kind, req.CapacidadeMaxima, req.AnoFabricacao, req.KmAtual, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.UpdateVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteVeiculo handles DELETE /api/v1/veiculos/:id.
func (s *Server) DeleteVeiculo(ctx echo.Context) error {
	vehicleID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteVehicleCommand(vehicleID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.DeleteVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetVeiculoRotas handles GET /api/v1/veiculos/:id/rotas.
func (s *Server) GetVeiculoRotas(ctx echo.Context) error {
	vehicleID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetRoutesQuery(nil, callerFrom(ctx).scopeDriverID(), &vehicleID, ctx.QueryParam("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	routes, err := s.queries.GetRoutes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]rotaResponse, len(routes))
	for i, r := range routes {
		response[i] = toRotaResponse(r)
	}

	return ctx.JSON(http.StatusOK, response)
}
