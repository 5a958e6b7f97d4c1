package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetMotoristas handles GET /api/v1/motoristas. Admins see the whole fleet,
// optionally filtered by ?status=; drivers see only themselves.
func (s *Server) GetMotoristas(ctx echo.Context) error {
	caller := callerFrom(ctx)

	var driverID *kernel.UUID
	status := ctx.QueryParam("status")
	if !caller.isAdmin() {
		if caller.DriverID == nil {
			return ctx.JSON(http.StatusOK, []motoristaResponse{})
		}
		driverID = caller.DriverID
		status = ""
	}

	query, err := queries.NewGetDriversQuery(driverID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	drivers, err := s.queries.GetDrivers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]motoristaResponse, len(drivers))
	for i, d := range drivers {
		response[i] = toMotoristaResponse(d)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMotoristaMe handles GET /api/v1/motoristas/me.
func (s *Server) GetMotoristaMe(ctx echo.Context) error {
	caller := callerFrom(ctx)
	if caller.DriverID == nil {
		return respondForbidden(ctx)
	}

	return s.respondMotorista(ctx, *caller.DriverID)
}

// GetMotorista handles GET /api/v1/motoristas/:id.
func (s *Server) GetMotorista(ctx echo.Context) error {
	driverID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}
	if !callerFrom(ctx).ownsDriver(driverID) {
		return respondForbidden(ctx)
	}

	return s.respondMotorista(ctx, driverID)
}

func (s *Server) respondMotorista(ctx echo.Context, driverID kernel.UUID) error {
	query, err := queries.NewGetDriversQuery(&driverID, "")
	if err != nil {
		return respondError(ctx, err)
	}

	drivers, err := s.queries.GetDrivers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMotoristaResponse(drivers[0]))
}

// CreateMotorista handles POST /api/v1/motoristas. A login account is
// provisioned alongside the driver when none is linked yet.
func (s *Server) CreateMotorista(ctx echo.Context) error {
	var req motoristaRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	category, err := driver.LicenseCategoryFromString(req.Cnh)
	if err != nil {
		return respondError(ctx, err)
	}
	birthDate, err := parseOptionalDate(req.DataNascimento, "data_nascimento")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateDriverCommand(
		req.Nome, req.Cpf, category, req.CnhNumero, req.Telefone, req.Email, birthDate)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.CreateDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.DriverID().String()})
}

// UpdateMotorista handles PUT /api/v1/motoristas/:id. The tax id is
// immutable and absent from the update contract.
func (s *Server) UpdateMotorista(ctx echo.Context) error {
	driverID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req motoristaRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	category, err := driver.LicenseCategoryFromString(req.Cnh)
	if err != nil {
		return respondError(ctx, err)
	}
	status, err := driver.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}
	birthDate, err := parseOptionalDate(req.DataNascimento, "data_nascimento")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateDriverCommand(
		driverID, req.Nome, category, req.CnhNumero, req.Telefone, req.Email, status, birthDate)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.UpdateDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteMotorista handles DELETE /api/v1/motoristas/:id.
func (s *Server) DeleteMotorista(ctx echo.Context) error {
	driverID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteDriverCommand(driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.DeleteDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetMotoristaEntregas handles GET /api/v1/motoristas/:id/entregas.
func (s *Server) GetMotoristaEntregas(ctx echo.Context) error {
	driverID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}
	if !callerFrom(ctx).ownsDriver(driverID) {
		return respondForbidden(ctx)
	}

	query, err := queries.NewGetDeliveriesQuery(nil, nil, &driverID, nil, ctx.QueryParam("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	deliveries, err := s.queries.GetDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]entregaResponse, len(deliveries))
	for i, d := range deliveries {
		response[i] = toEntregaResponse(d)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMotoristaRotas handles GET /api/v1/motoristas/:id/rotas.
func (s *Server) GetMotoristaRotas(ctx echo.Context) error {
	driverID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}
	if !callerFrom(ctx).ownsDriver(driverID) {
		return respondForbidden(ctx)
	}

	query, err := queries.NewGetRoutesQuery(nil, &driverID, nil, ctx.QueryParam("status"))
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

// GetMotoristaHistorico handles GET /api/v1/motoristas/:id/historico,
// every status change the driver recorded across their deliveries.
func (s *Server) GetMotoristaHistorico(ctx echo.Context) error {
	driverID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}
	if !callerFrom(ctx).ownsDriver(driverID) {
		return respondForbidden(ctx)
	}

	query, err := queries.NewGetDriverHistoryQuery(driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	entries, err := s.queries.GetDriverHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]historicoResponse, len(entries))
	for i, entry := range entries {
		response[i] = toHistoricoResponse(entry)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMotoristaVisaoCompleta handles GET /api/v1/motoristas/:id/visao-completa.
func (s *Server) GetMotoristaVisaoCompleta(ctx echo.Context) error {
	driverID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}
	if !callerFrom(ctx).ownsDriver(driverID) {
		return respondForbidden(ctx)
	}

	return s.respondDashboard(ctx, driverID)
}

// AtribuirVeiculo handles PUT /api/v1/motoristas/:id/atribuir-veiculo.
// A vehicle already in use by the driver is released first.
func (s *Server) AtribuirVeiculo(ctx echo.Context) error {
	driverID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req atribuirVeiculoRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	vehicleID, err := parseID(req.VeiculoID, "veiculo_id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignVehicleCommand(driverID, vehicleID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.AssignVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
