package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetRelatorio handles GET /api/v1/relatorios?periodo=hoje|semana|mes.
func (s *Server) GetRelatorio(ctx echo.Context) error {
	query, err := queries.NewGetOperationsReportQuery(ctx.QueryParam("periodo"))
	if err != nil {
		return respondError(ctx, err)
	}

	report, err := s.queries.GetOperationsReport.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRelatorioResponse(report))
}

// GetDashboardMotorista handles GET /api/v1/dashboard/motorista, the
// calling driver's own dashboard.
func (s *Server) GetDashboardMotorista(ctx echo.Context) error {
	caller := callerFrom(ctx)
	if caller.DriverID == nil {
		return respondForbidden(ctx)
	}

	return s.respondDashboard(ctx, *caller.DriverID)
}

func (s *Server) respondDashboard(ctx echo.Context, driverID kernel.UUID) error {
	query, err := queries.NewGetDriverDashboardQuery(driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	dashboard, err := s.queries.GetDriverDashboard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDashboardMotoristaResponse(dashboard))
}

// TrackDelivery handles GET /api/v1/rastreio?codigo=XXXXXXXX, the public
// tracking lookup. Unknown codes answer 404.
func (s *Server) TrackDelivery(ctx echo.Context) error {
	query, err := queries.NewTrackDeliveryQuery(ctx.QueryParam("codigo"))
	if err != nil {
		return respondError(ctx, err)
	}

	tracking, err := s.queries.TrackDelivery.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRastreioResponse(tracking))
}
