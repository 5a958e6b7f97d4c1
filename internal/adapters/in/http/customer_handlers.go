package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetClientes handles GET /api/v1/clientes. Drivers only see the customers
// of deliveries assigned to them.
func (s *Server) GetClientes(ctx echo.Context) error {
	query, err := queries.NewGetCustomersQuery(nil, callerFrom(ctx).scopeDriverID())
	if err != nil {
		return respondError(ctx, err)
	}

	customers, err := s.queries.GetCustomers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]clienteResponse, len(customers))
	for i, customer := range customers {
		response[i] = toClienteResponse(customer)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCliente handles GET /api/v1/clientes/:id.
func (s *Server) GetCliente(ctx echo.Context) error {
	customerID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCustomersQuery(&customerID, callerFrom(ctx).scopeDriverID())
	if err != nil {
		return respondError(ctx, err)
	}

	customers, err := s.queries.GetCustomers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toClienteResponse(customers[0]))
}

// CreateCliente handles POST /api/v1/clientes.
func (s *Server) CreateCliente(ctx echo.Context) error {
	var req clienteRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(
		req.Nome, req.Email, req.Telefone, req.CpfCnpj, req.Endereco, req.Cep)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.CreateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.CustomerID().String()})
}

// UpdateCliente handles PUT /api/v1/clientes/:id.
func (s *Server) UpdateCliente(ctx echo.Context) error {
	customerID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req clienteRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateCustomerCommand(
		customerID, req.Nome, req.Email, req.Telefone, req.Endereco, req.Cep)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.UpdateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteCliente handles DELETE /api/v1/clientes/:id. Deliveries of the
// customer are removed with it.
func (s *Server) DeleteCliente(ctx echo.Context) error {
	customerID, err := parseID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteCustomerCommand(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
