package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// CommandHandlers bundles every write-side handler the server dispatches to.
type CommandHandlers struct {
	CreateCustomer commands.CreateCustomerCommandHandler
	UpdateCustomer commands.UpdateCustomerCommandHandler
	DeleteCustomer commands.DeleteCustomerCommandHandler

	CreateDriver  commands.CreateDriverCommandHandler
	UpdateDriver  commands.UpdateDriverCommandHandler
	DeleteDriver  commands.DeleteDriverCommandHandler
	AssignVehicle commands.AssignVehicleCommandHandler

	CreateVehicle commands.CreateVehicleCommandHandler
	UpdateVehicle commands.UpdateVehicleCommandHandler
	DeleteVehicle commands.DeleteVehicleCommandHandler

	CreateDelivery       commands.CreateDeliveryCommandHandler
	UpdateDelivery       commands.UpdateDeliveryCommandHandler
	DeleteDelivery       commands.DeleteDeliveryCommandHandler
	AssignDriver         commands.AssignDriverCommandHandler
	UpdateDeliveryStatus commands.UpdateDeliveryStatusCommandHandler

	CreateRoute             commands.CreateRouteCommandHandler
	UpdateRoute             commands.UpdateRouteCommandHandler
	DeleteRoute             commands.DeleteRouteCommandHandler
	AddDeliveryToRoute      commands.AddDeliveryToRouteCommandHandler
	RemoveDeliveryFromRoute commands.RemoveDeliveryFromRouteCommandHandler
	StartRoute              commands.StartRouteCommandHandler
	CompleteRoute           commands.CompleteRouteCommandHandler
	CancelRoute             commands.CancelRouteCommandHandler
}

// QueryHandlers bundles every read-side handler the server dispatches to.
type QueryHandlers struct {
	GetCustomers        queries.GetCustomersQueryHandler
	GetDrivers          queries.GetDriversQueryHandler
	GetVehicles         queries.GetVehiclesQueryHandler
	GetDeliveries       queries.GetDeliveriesQueryHandler
	GetRoutes           queries.GetRoutesQueryHandler
	GetDeliveryHistory  queries.GetDeliveryHistoryQueryHandler
	GetDriverHistory    queries.GetDriverHistoryQueryHandler
	GetDriverDashboard  queries.GetDriverDashboardQueryHandler
	GetOperationsReport queries.GetOperationsReportQueryHandler
	GetAccountProfile   queries.GetAccountProfileQueryHandler
	TrackDelivery       queries.TrackDeliveryQueryHandler
}

// Server wires HTTP requests to application use cases. Authorization is
// enforced here: role checks via middleware, record ownership per handler.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	tokens   *auth.TokenService
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers, tokens *auth.TokenService) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		tokens:   tokens,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance. Tracking,
// token issuing and the health probe stay public; everything else requires
// a bearer token.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	public := e.Group("/api/v1")
	public.POST("/auth/token", s.IssueToken)
	public.POST("/auth/refresh", s.RefreshToken)
	public.GET("/rastreio", s.TrackDelivery)

	api := e.Group("/api/v1", authenticate(s.tokens))

	api.GET("/clientes", s.GetClientes)
	api.POST("/clientes", s.CreateCliente, requireAdmin)
	api.GET("/clientes/:id", s.GetCliente)
	api.PUT("/clientes/:id", s.UpdateCliente, requireAdmin)
	api.DELETE("/clientes/:id", s.DeleteCliente, requireAdmin)

	api.GET("/motoristas", s.GetMotoristas)
	api.POST("/motoristas", s.CreateMotorista, requireAdmin)
	api.GET("/motoristas/me", s.GetMotoristaMe)
	api.GET("/motoristas/:id", s.GetMotorista)
	api.PUT("/motoristas/:id", s.UpdateMotorista, requireAdmin)
	api.DELETE("/motoristas/:id", s.DeleteMotorista, requireAdmin)
	api.GET("/motoristas/:id/entregas", s.GetMotoristaEntregas)
	api.GET("/motoristas/:id/rotas", s.GetMotoristaRotas)
	api.GET("/motoristas/:id/historico", s.GetMotoristaHistorico)
	api.GET("/motoristas/:id/visao-completa", s.GetMotoristaVisaoCompleta)
	api.PUT("/motoristas/:id/atribuir-veiculo", s.AtribuirVeiculo, requireAdmin)

	api.GET("/veiculos", s.GetVeiculos)
	api.POST("/veiculos", s.CreateVeiculo, requireAdmin)
	api.GET("/veiculos/disponiveis", s.GetVeiculosDisponiveis)
	api.GET("/veiculos/:id", s.GetVeiculo)
	api.PUT("/veiculos/:id", s.UpdateVeiculo, requireAdmin)
	api.DELETE("/veiculos/:id", s.DeleteVeiculo, requireAdmin)
	api.GET("/veiculos/:id/rotas", s.GetVeiculoRotas)

	api.GET("/entregas", s.GetEntregas)
	api.POST("/entregas", s.CreateEntrega, requireAdmin)
	api.GET("/entregas/:id", s.GetEntrega)
	api.PUT("/entregas/:id", s.UpdateEntrega, requireAdmin)
	api.DELETE("/entregas/:id", s.DeleteEntrega, requireAdmin)
	api.POST("/entregas/:id/atribuir-motorista", s.AtribuirMotorista, requireAdmin)
	api.PUT("/entregas/:id/status", s.UpdateEntregaStatus)
	api.GET("/entregas/:id/historico", s.GetEntregaHistorico)

	api.GET("/rotas", s.GetRotas)
	api.POST("/rotas", s.CreateRota, requireAdmin)
	api.GET("/rotas/:id", s.GetRota)
	api.PUT("/rotas/:id", s.UpdateRota, requireAdmin)
	api.DELETE("/rotas/:id", s.DeleteRota, requireAdmin)
	api.GET("/rotas/:id/entregas", s.GetRotaEntregas)
	api.POST("/rotas/:id/entregas", s.AddRotaEntrega, requireAdmin)
	api.DELETE("/rotas/:id/entregas/:entregaId", s.RemoveRotaEntrega, requireAdmin)
	api.GET("/rotas/:id/capacidade", s.GetRotaCapacidade)
	api.GET("/rotas/:id/dashboard", s.GetRotaDashboard)
	api.POST("/rotas/:id/iniciar", s.IniciarRota)
	api.POST("/rotas/:id/concluir", s.ConcluirRota)
	api.POST("/rotas/:id/cancelar", s.CancelarRota)

	api.GET("/relatorios", s.GetRelatorio, requireAdmin)
	api.GET("/dashboard/motorista", s.GetDashboardMotorista)
}
