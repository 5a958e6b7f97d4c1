package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetEntregas handles GET /api/v1/entregas with optional ?status= and
// ?cliente_id= filters. Drivers only see deliveries assigned to them.
func (s *Server) GetEntregas(ctx echo.Context) error {
	var customerID *kernel.UUID
	if raw := ctx.QueryParam("cliente_id"); raw != "" {
		parsed, err := parseID(raw, "cliente_id")
		if err != nil {
			return respondError(ctx, err)
		}
		customerID = &parsed
	}

	query, err := queries.NewGetDeliveriesQuery(
		nil, customerID, callerFrom(ctx).scopeDriverID(), nil, ctx.QueryParam("status"))
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

// GetEntrega handles GET /api/v1/entregas/:id. A driver asking for a
// foreign delivery gets 404, indistinguishable from an unknown id.
func (s *Server) GetEntrega(ctx echo.Context) error {
	deliveryID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDeliveriesQuery(
		&deliveryID, nil, callerFrom(ctx).scopeDriverID(), nil, "")
	if err != nil {
		return respondError(ctx, err)
	}

	deliveries, err := s.queries.GetDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toEntregaResponse(deliveries[0]))
}

// CreateEntrega handles POST /api/v1/entregas. The tracking code is
// generated server side; clients read it back from the created resource.
func (s *Server) CreateEntrega(ctx echo.Context) error {
	var req entregaRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	customerID, err := parseID(req.ClienteID, "cliente_id")
	if err != nil {
		return respondError(ctx, err)
	}
	expectedDate, err := parseOptionalDate(req.DataEntregaPrevista, "data_entrega_prevista")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateDeliveryCommand(
		customerID,
		req.EnderecoOrigem, req.EnderecoDestino, req.CepOrigem, req.CepDestino,
		req.CapacidadeNecessaria, req.ValorFrete, expectedDate, req.Observacoes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.CreateDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.DeliveryID().String()})
}

// UpdateEntrega handles PUT /api/v1/entregas/:id. Tracking code, customer
// and status are immutable here; status changes go through /status.
func (s *Server) UpdateEntrega(ctx echo.Context) error {
	deliveryID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req entregaRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	expectedDate, err := parseOptionalDate(req.DataEntregaPrevista, "data_entrega_prevista")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryCommand(
		deliveryID,
		req.EnderecoOrigem, req.EnderecoDestino, req.CepOrigem, req.CepDestino,
		req.CapacidadeNecessaria, req.ValorFrete, expectedDate, req.Observacoes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.UpdateDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteEntrega handles DELETE /api/v1/entregas/:id.
func (s *Server) DeleteEntrega(ctx echo.Context) error {
	deliveryID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteDeliveryCommand(deliveryID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.DeleteDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AtribuirMotorista handles POST /api/v1/entregas/:id/atribuir-motorista.
func (s *Server) AtribuirMotorista(ctx echo.Context) error {
	deliveryID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req atribuirMotoristaRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	driverID, err := parseID(req.MotoristaID, "motorista_id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(deliveryID, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.AssignDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateEntregaStatus handles PUT /api/v1/entregas/:id/status. Admins may
// change any delivery; drivers only their own, recorded as the acting driver.
func (s *Server) UpdateEntregaStatus(ctx echo.Context) error {
	deliveryID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req statusEntregaRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	newStatus, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	caller := callerFrom(ctx)
	if !caller.isAdmin() && caller.DriverID == nil {
		return respondForbidden(ctx)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		deliveryID, newStatus, req.Observacao, caller.scopeDriverID())
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.UpdateDeliveryStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetEntregaHistorico handles GET /api/v1/entregas/:id/historico.
func (s *Server) GetEntregaHistorico(ctx echo.Context) error {
	deliveryID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	caller := callerFrom(ctx)
	if !caller.isAdmin() {
		// Resolve through the scoped delivery query so a foreign delivery
		// answers 404 before its history is exposed.
		scoped, queryErr := queries.NewGetDeliveriesQuery(&deliveryID, nil, caller.scopeDriverID(), nil, "")
		if queryErr != nil {
			return respondError(ctx, queryErr)
		}
		if _, queryErr = s.queries.GetDeliveries.Handle(ctx.Request().Context(), scoped); queryErr != nil {
			return respondError(ctx, queryErr)
		}
	}

	query, err := queries.NewGetDeliveryHistoryQuery(deliveryID)
	if err != nil {
		return respondError(ctx, err)
	}

	entries, err := s.queries.GetDeliveryHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]historicoResponse, len(entries))
	for i, entry := range entries {
		response[i] = toHistoricoResponse(entry)
	}

	return ctx.JSON(http.StatusOK, response)
}
