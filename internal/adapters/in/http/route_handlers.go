package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetRotas handles GET /api/v1/rotas with an optional ?status= filter.
// Drivers only see routes assigned to them.
func (s *Server) GetRotas(ctx echo.Context) error {
	query, err := queries.NewGetRoutesQuery(
		nil, callerFrom(ctx).scopeDriverID(), nil, ctx.QueryParam("status"))
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

// GetRota handles GET /api/v1/rotas/:id.
func (s *Server) GetRota(ctx echo.Context) error {
	routeID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	route, err := s.fetchScopedRota(ctx, routeID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRotaResponse(route))
}

// fetchScopedRota loads one route honoring driver scoping. A driver asking
// for a foreign route gets not-found, indistinguishable from an unknown id.
func (s *Server) fetchScopedRota(ctx echo.Context, routeID kernel.UUID) (queries.RouteResponse, error) {
	query, err := queries.NewGetRoutesQuery(&routeID, callerFrom(ctx).scopeDriverID(), nil, "")
	if err != nil {
		return queries.RouteResponse{}, err
	}

	routes, err := s.queries.GetRoutes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queries.RouteResponse{}, err
	}

	return routes[0], nil
}

// CreateRota handles POST /api/v1/rotas. An initial delivery set may be
// attached; the summed capacity is checked against the vehicle.
func (s *Server) CreateRota(ctx echo.Context) error {
	var req rotaRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	driverID, err := parseOptionalID(req.MotoristaID, "motorista_id")
	if err != nil {
		return respondError(ctx, err)
	}
	vehicleID, err := parseOptionalID(req.VeiculoID, "veiculo_id")
	if err != nil {
		return respondError(ctx, err)
	}
	routeDate, err := parseDate(req.DataRota, "data_rota")
	if err != nil {
		return respondError(ctx, err)
	}

	deliveryIDs := make([]kernel.UUID, len(req.EntregaIDs))
	for i, raw := range req.EntregaIDs {
		if deliveryIDs[i], err = parseID(raw, "entrega_ids"); err != nil {
			return respondError(ctx, err)
		}
	}

	cmd, err := commands.NewCreateRouteCommand(
		req.Nome, req.Descricao, driverID, vehicleID,
		routeDate, req.KmTotalEstimado, req.TempoEstimadoMinutos, deliveryIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.CreateRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.RouteID().String()})
}

// UpdateRota handles PUT /api/v1/rotas/:id.
func (s *Server) UpdateRota(ctx echo.Context) error {
	routeID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req rotaRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	driverID, err := parseOptionalID(req.MotoristaID, "motorista_id")
	if err != nil {
		return respondError(ctx, err)
	}
	vehicleID, err := parseOptionalID(req.VeiculoID, "veiculo_id")
	if err != nil {
		return respondError(ctx, err)
	}
	routeDate, err := parseDate(req.DataRota, "data_rota")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateRouteCommand(
		routeID, req.Nome, req.Descricao, driverID, vehicleID,
		routeDate, req.KmTotalEstimado, req.TempoEstimadoMinutos)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.UpdateRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteRota handles DELETE /api/v1/rotas/:id.
func (s *Server) DeleteRota(ctx echo.Context) error {
	routeID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteRouteCommand(routeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.DeleteRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRotaEntregas handles GET /api/v1/rotas/:id/entregas.
func (s *Server) GetRotaEntregas(ctx echo.Context) error {
	routeID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	// Ownership is checked on the route itself; the deliveries are then
	// listed unscoped so pending ones without a driver still show up.
	if _, err = s.fetchScopedRota(ctx, routeID); err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDeliveriesQuery(nil, nil, nil, &routeID, "")
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

// AddRotaEntrega handles POST /api/v1/rotas/:id/entregas.
func (s *Server) AddRotaEntrega(ctx echo.Context) error {
	routeID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req rotaEntregaRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	deliveryID, err := parseID(req.EntregaID, "entrega_id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddDeliveryToRouteCommand(routeID, deliveryID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.AddDeliveryToRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveRotaEntrega handles DELETE /api/v1/rotas/:id/entregas/:entregaId.
func (s *Server) RemoveRotaEntrega(ctx echo.Context) error {
	routeID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}
	deliveryID, err := parseID(ctx.Param("entregaId"), "entregaId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveDeliveryFromRouteCommand(routeID, deliveryID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.RemoveDeliveryFromRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRotaCapacidade handles GET /api/v1/rotas/:id/capacidade.
func (s *Server) GetRotaCapacidade(ctx echo.Context) error {
	routeID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	route, err := s.fetchScopedRota(ctx, routeID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp := capacidadeResponse{
		RotaID:                   route.ID.String(),
		CapacidadeTotalUtilizada: route.UsedCapacity,
		CapacidadeMaxima:         route.MaxCapacity,
		TotalEntregas:            route.DeliveryCount,
	}
	if route.MaxCapacity != nil {
		available := *route.MaxCapacity - route.UsedCapacity
		resp.CapacidadeDisponivel = &available
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetRotaDashboard handles GET /api/v1/rotas/:id/dashboard, the route with
// its deliveries bucketed by status.
func (s *Server) GetRotaDashboard(ctx echo.Context) error {
	routeID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	route, err := s.fetchScopedRota(ctx, routeID)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDeliveriesQuery(nil, nil, nil, &routeID, "")
	if err != nil {
		return respondError(ctx, err)
	}

	deliveries, err := s.queries.GetDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	byStatus := make(map[string]int)
	for _, d := range deliveries {
		byStatus[d.Status]++
	}

	return ctx.JSON(http.StatusOK, rotaDashboardResponse{
		Rota:              toRotaResponse(route),
		EntregasPorStatus: byStatus,
	})
}

// IniciarRota handles POST /api/v1/rotas/:id/iniciar. Admins may start any
// route; drivers only their own.
func (s *Server) IniciarRota(ctx echo.Context) error {
	routeID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewStartRouteCommand(routeID, callerFrom(ctx).scopeDriverID())
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.StartRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConcluirRota handles POST /api/v1/rotas/:id/concluir. Actual distance and
// duration are optional; the vehicle odometer advances by the given km.
func (s *Server) ConcluirRota(ctx echo.Context) error {
	routeID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req concluirRotaRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCompleteRouteCommand(
		routeID, callerFrom(ctx).scopeDriverID(), req.KmTotalReal, req.TempoRealMinutos)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.CompleteRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelarRota handles POST /api/v1/rotas/:id/cancelar.
func (s *Server) CancelarRota(ctx echo.Context) error {
	routeID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelRouteCommand(routeID, callerFrom(ctx).scopeDriverID())
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.CancelRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
