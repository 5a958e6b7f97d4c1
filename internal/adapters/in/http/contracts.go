package http

import (
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

// Request bodies. Field names follow the wire vocabulary the API has always
// spoken; status and enum values use their canonical english forms.

type clienteRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	CpfCnpj  string `json:"cpf_cnpj"`
	Endereco string `json:"endereco"`
	Cep      string `json:"cep"`
}

type motoristaRequest struct {
	Nome           string  `json:"nome"`
	Cpf            string  `json:"cpf"`
	Cnh            string  `json:"cnh"`
	CnhNumero      string  `json:"cnh_numero"`
	Telefone       string  `json:"telefone"`
	Email          string  `json:"email"`
	Status         string  `json:"status"`
	DataNascimento *string `json:"data_nascimento"`
}

type veiculoRequest struct {
	Placa            string  `json:"placa"`
	Modelo           string  `json:"modelo"`
	Marca            string  `json:"marca"`
	Tipo             string  `json:"tipo"`
	CapacidadeMaxima int     `json:"capacidade_maxima"`
	AnoFabricacao    int     `json:"ano_fabricacao"`
	KmAtual          float64 `json:"km_atual"`
	Status           string  `json:"status"`
}

type entregaRequest struct {
	ClienteID            string  `json:"cliente_id"`
	EnderecoOrigem       string  `json:"endereco_origem"`
	EnderecoDestino      string  `json:"endereco_destino"`
	CepOrigem            string  `json:"cep_origem"`
	CepDestino           string  `json:"cep_destino"`
	CapacidadeNecessaria int     `json:"capacidade_necessaria"`
	ValorFrete           float64 `json:"valor_frete"`
	DataEntregaPrevista  *string `json:"data_entrega_prevista"`
	Observacoes          string  `json:"observacoes"`
}

type rotaRequest struct {
	Nome                 string   `json:"nome"`
	Descricao            string   `json:"descricao"`
	MotoristaID          *string  `json:"motorista_id"`
	VeiculoID            *string  `json:"veiculo_id"`
	DataRota             string   `json:"data_rota"`
	KmTotalEstimado      float64  `json:"km_total_estimado"`
	TempoEstimadoMinutos int      `json:"tempo_estimado_minutos"`
	EntregaIDs           []string `json:"entrega_ids"`
}

type atribuirVeiculoRequest struct {
	VeiculoID string `json:"veiculo_id"`
}

type atribuirMotoristaRequest struct {
	MotoristaID string `json:"motorista_id"`
}

type statusEntregaRequest struct {
	Status     string `json:"status"`
	Observacao string `json:"observacao"`
}

type rotaEntregaRequest struct {
	EntregaID string `json:"entrega_id"`
}

type concluirRotaRequest struct {
	KmTotalReal      *float64 `json:"km_total_real"`
	TempoRealMinutos *int     `json:"tempo_real_minutos"`
}

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Response bodies.

type clienteResponse struct {
	ID           string    `json:"id"`
	Nome         string    `json:"nome"`
	Email        string    `json:"email"`
	Telefone     string    `json:"telefone"`
	CpfCnpj      string    `json:"cpf_cnpj"`
	Endereco     string    `json:"endereco"`
	Cep          string    `json:"cep"`
	DataCadastro time.Time `json:"data_cadastro"`
}

type motoristaResponse struct {
	ID             string    `json:"id"`
	Nome           string    `json:"nome"`
	Cpf            string    `json:"cpf"`
	Cnh            string    `json:"cnh"`
	CnhNumero      string    `json:"cnh_numero"`
	Telefone       string    `json:"telefone"`
	Email          string    `json:"email"`
	Status         string    `json:"status"`
	DataNascimento *string   `json:"data_nascimento"`
	DataCadastro   time.Time `json:"data_cadastro"`
}

type veiculoResponse struct {
	ID               string    `json:"id"`
	Placa            string    `json:"placa"`
	Modelo           string    `json:"modelo"`
	Marca            string    `json:"marca"`
	Tipo             string    `json:"tipo"`
	CapacidadeMaxima int       `json:"capacidade_maxima"`
	AnoFabricacao    int       `json:"ano_fabricacao"`
	KmAtual          float64   `json:"km_atual"`
	Status           string    `json:"status"`
	MotoristaAtual   *string   `json:"motorista_atual"`
	DataCadastro     time.Time `json:"data_cadastro"`
}

type entregaResponse struct {
	ID                   string     `json:"id"`
	CodigoRastreio       string     `json:"codigo_rastreio"`
	ClienteID            string     `json:"cliente_id"`
	ClienteNome          string     `json:"cliente_nome"`
	EnderecoOrigem       string     `json:"endereco_origem"`
	EnderecoDestino      string     `json:"endereco_destino"`
	CepOrigem            string     `json:"cep_origem"`
	CepDestino           string     `json:"cep_destino"`
	Status               string     `json:"status"`
	CapacidadeNecessaria int        `json:"capacidade_necessaria"`
	ValorFrete           float64    `json:"valor_frete"`
	DataSolicitacao      time.Time  `json:"data_solicitacao"`
	DataEntregaPrevista  *string    `json:"data_entrega_prevista"`
	DataEntregaReal      *time.Time `json:"data_entrega_real"`
	Observacoes          string     `json:"observacoes"`
	MotoristaID          *string    `json:"motorista_id"`
	MotoristaNome        *string    `json:"motorista_nome"`
	RotaID               *string    `json:"rota_id"`
}

type rotaResponse struct {
	ID                       string     `json:"id"`
	Nome                     string     `json:"nome"`
	Descricao                string     `json:"descricao"`
	MotoristaID              *string    `json:"motorista_id"`
	MotoristaNome            *string    `json:"motorista_nome"`
	VeiculoID                *string    `json:"veiculo_id"`
	VeiculoPlaca             *string    `json:"veiculo_placa"`
	DataRota                 string     `json:"data_rota"`
	Status                   string     `json:"status"`
	CapacidadeTotalUtilizada int        `json:"capacidade_total_utilizada"`
	CapacidadeMaxima         *int       `json:"capacidade_maxima"`
	CapacidadeDisponivel     *int       `json:"capacidade_disponivel"`
	KmTotalEstimado          float64    `json:"km_total_estimado"`
	KmTotalReal              *float64   `json:"km_total_real"`
	TempoEstimadoMinutos     int        `json:"tempo_estimado_minutos"`
	TempoRealMinutos         *int       `json:"tempo_real_minutos"`
	TotalEntregas            int        `json:"total_entregas"`
	DataCriacao              time.Time  `json:"data_criacao"`
	DataInicio               *time.Time `json:"data_inicio"`
	DataConclusao            *time.Time `json:"data_conclusao"`
}

type historicoResponse struct {
	ID             string    `json:"id"`
	EntregaID      string    `json:"entrega_id"`
	StatusAnterior string    `json:"status_anterior"`
	StatusNovo     string    `json:"status_novo"`
	Observacao     string    `json:"observacao"`
	MotoristaID    *string   `json:"motorista_id"`
	MotoristaNome  *string   `json:"motorista_nome"`
	DataRegistro   time.Time `json:"data_registro"`
}

type rastreioEventoResponse struct {
	StatusAnterior string    `json:"status_anterior"`
	StatusNovo     string    `json:"status_novo"`
	Observacao     string    `json:"observacao"`
	DataRegistro   time.Time `json:"data_registro"`
}

type rastreioResponse struct {
	CodigoRastreio      string                   `json:"codigo_rastreio"`
	Status              string                   `json:"status"`
	CepOrigem           string                   `json:"cep_origem"`
	CepDestino          string                   `json:"cep_destino"`
	DataSolicitacao     time.Time                `json:"data_solicitacao"`
	DataEntregaPrevista *string                  `json:"data_entrega_prevista"`
	DataEntregaReal     *time.Time               `json:"data_entrega_real"`
	Historico           []rastreioEventoResponse `json:"historico"`
}

type capacidadeResponse struct {
	RotaID                   string `json:"rota_id"`
	CapacidadeTotalUtilizada int    `json:"capacidade_total_utilizada"`
	CapacidadeMaxima         *int   `json:"capacidade_maxima"`
	CapacidadeDisponivel     *int   `json:"capacidade_disponivel"`
	TotalEntregas            int    `json:"total_entregas"`
}

type rotaDashboardResponse struct {
	Rota              rotaResponse   `json:"rota"`
	EntregasPorStatus map[string]int `json:"entregas_por_status"`
}

type dashboardMotoristaResponse struct {
	MotoristaID            string           `json:"motorista_id"`
	MotoristaNome          string           `json:"motorista_nome"`
	Status                 string           `json:"status"`
	VeiculoAtual           *veiculoResponse `json:"veiculo_atual"`
	RotasHoje              []rotaResponse   `json:"rotas_hoje"`
	EntregasPendentes      int              `json:"entregas_pendentes"`
	EntregasEmTransito     int              `json:"entregas_em_transito"`
	EntregasConcluidasHoje int              `json:"entregas_concluidas_hoje"`
}

type relatorioResponse struct {
	Periodo       string    `json:"periodo"`
	InicioPeriodo time.Time `json:"inicio_periodo"`

	TotalEntregas       int `json:"total_entregas"`
	EntregasPendentes   int `json:"entregas_pendentes"`
	EntregasEmTransito  int `json:"entregas_em_transito"`
	EntregasConcluidas  int `json:"entregas_concluidas"`
	EntregasCanceladas  int `json:"entregas_canceladas"`
	EntregasReagendadas int `json:"entregas_reagendadas"`

	ValorFreteTotal    float64 `json:"valor_frete_total"`
	ValorFreteEntregue float64 `json:"valor_frete_entregue"`

	RotasPlanejadas  int `json:"rotas_planejadas"`
	RotasEmAndamento int `json:"rotas_em_andamento"`
	RotasConcluidas  int `json:"rotas_concluidas"`
	RotasCanceladas  int `json:"rotas_canceladas"`

	MotoristasAtivos    int `json:"motoristas_ativos"`
	VeiculosDisponiveis int `json:"veiculos_disponiveis"`

	EntregasSemAtribuicao int `json:"entregas_sem_atribuicao"`
	VeiculosEmManutencao  int `json:"veiculos_em_manutencao"`
}

type motoristaSummary struct {
	ID     string `json:"id"`
	Nome   string `json:"nome"`
	Status string `json:"status"`
}

type userSummary struct {
	ID        string            `json:"id"`
	Username  string            `json:"username"`
	Email     string            `json:"email"`
	Role      string            `json:"role"`
	Motorista *motoristaSummary `json:"motorista"`
}

type tokenResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresAt    time.Time   `json:"expires_at"`
	User         userSummary `json:"user"`
}

// Conversions between read models and wire shapes.

func toClienteResponse(c queries.CustomerResponse) clienteResponse {
	return clienteResponse{
		ID:           c.ID.String(),
		Nome:         c.Name,
		Email:        c.Email,
		Telefone:     c.Phone,
		CpfCnpj:      c.TaxID,
		Endereco:     c.Address,
		Cep:          c.PostalCode,
		DataCadastro: c.RegisteredAt,
	}
}

func toMotoristaResponse(d queries.DriverResponse) motoristaResponse {
	return motoristaResponse{
		ID:             d.ID.String(),
		Nome:           d.Name,
		Cpf:            d.TaxID,
		Cnh:            d.LicenseCategory,
		CnhNumero:      d.LicenseNumber,
		Telefone:       d.Phone,
		Email:          d.Email,
		Status:         d.Status,
		DataNascimento: formatDate(d.BirthDate),
		DataCadastro:   d.RegisteredAt,
	}
}

func toVeiculoResponse(v queries.VehicleResponse) veiculoResponse {
	return veiculoResponse{
		ID:               v.ID.String(),
		Placa:            v.Plate,
		Modelo:           v.Model,
		Marca:            v.Brand,
		Tipo:             v.Kind,
		CapacidadeMaxima: v.MaxCapacity,
		AnoFabricacao:    v.Year,
		KmAtual:          v.OdometerKm,
		Status:           v.Status,
		MotoristaAtual:   uuidString(v.CurrentDriverID),
		DataCadastro:     v.RegisteredAt,
	}
}

func toEntregaResponse(d queries.DeliveryResponse) entregaResponse {
	return entregaResponse{
		ID:                   d.ID.String(),
		CodigoRastreio:       d.TrackingCode,
		ClienteID:            d.CustomerID.String(),
		ClienteNome:          d.CustomerName,
		EnderecoOrigem:       d.OriginAddress,
		EnderecoDestino:      d.DestinationAddress,
		CepOrigem:            d.OriginPostal,
		CepDestino:           d.DestinationPostal,
		Status:               d.Status,
		CapacidadeNecessaria: d.RequiredCapacity,
		ValorFrete:           d.FreightValue,
		DataSolicitacao:      d.RequestedAt,
		DataEntregaPrevista:  formatDate(d.ExpectedDate),
		DataEntregaReal:      d.DeliveredAt,
		Observacoes:          d.Notes,
		MotoristaID:          uuidString(d.DriverID),
		MotoristaNome:        d.DriverName,
		RotaID:               uuidString(d.RouteID),
	}
}

func toRotaResponse(r queries.RouteResponse) rotaResponse {
	resp := rotaResponse{
		ID:                       r.ID.String(),
		Nome:                     r.Name,
		Descricao:                r.Description,
		MotoristaID:              uuidString(r.DriverID),
		MotoristaNome:            r.DriverName,
		VeiculoID:                uuidString(r.VehicleID),
		VeiculoPlaca:             r.VehiclePlate,
		DataRota:                 r.RouteDate.Format(dateLayout),
		Status:                   r.Status,
		CapacidadeTotalUtilizada: r.UsedCapacity,
		CapacidadeMaxima:         r.MaxCapacity,
		KmTotalEstimado:          r.EstimatedKm,
		KmTotalReal:              r.ActualKm,
		TempoEstimadoMinutos:     r.EstimatedMinutes,
		TempoRealMinutos:         r.ActualMinutes,
		TotalEntregas:            r.DeliveryCount,
		DataCriacao:              r.CreatedAt,
		DataInicio:               r.StartedAt,
		DataConclusao:            r.CompletedAt,
	}

	if r.MaxCapacity != nil {
		available := *r.MaxCapacity - r.UsedCapacity
		resp.CapacidadeDisponivel = &available
	}

	return resp
}

func toHistoricoResponse(h queries.DeliveryHistoryResponse) historicoResponse {
	return historicoResponse{
		ID:             h.ID.String(),
		EntregaID:      h.DeliveryID.String(),
		StatusAnterior: h.PreviousStatus,
		StatusNovo:     h.NewStatus,
		Observacao:     h.Note,
		MotoristaID:    uuidString(h.DriverID),
		MotoristaNome:  h.DriverName,
		DataRegistro:   h.RecordedAt,
	}
}

func toRastreioResponse(t queries.TrackDeliveryResponse) rastreioResponse {
	trail := make([]rastreioEventoResponse, len(t.Trail))
	for i, event := range t.Trail {
		trail[i] = rastreioEventoResponse{
			StatusAnterior: event.PreviousStatus,
			StatusNovo:     event.NewStatus,
			Observacao:     event.Note,
			DataRegistro:   event.RecordedAt,
		}
	}

	return rastreioResponse{
		CodigoRastreio:      t.TrackingCode,
		Status:              t.Status,
		CepOrigem:           t.OriginPostal,
		CepDestino:          t.DestinationPostal,
		DataSolicitacao:     t.RequestedAt,
		DataEntregaPrevista: formatDate(t.ExpectedDate),
		DataEntregaReal:     t.DeliveredAt,
		Historico:           trail,
	}
}

func toRelatorioResponse(r queries.OperationsReportResponse) relatorioResponse {
	return relatorioResponse{
		Periodo:               r.Period,
		InicioPeriodo:         r.PeriodStart,
		TotalEntregas:         r.TotalDeliveries,
		EntregasPendentes:     r.PendingDeliveries,
		EntregasEmTransito:    r.InTransitDeliveries,
		EntregasConcluidas:    r.DeliveredDeliveries,
		EntregasCanceladas:    r.CancelledDeliveries,
		EntregasReagendadas:   r.RescheduledDeliveries,
		ValorFreteTotal:       r.TotalFreightValue,
		ValorFreteEntregue:    r.DeliveredFreightValue,
		RotasPlanejadas:       r.RoutesPlanned,
		RotasEmAndamento:      r.RoutesInProgress,
		RotasConcluidas:       r.RoutesCompleted,
		RotasCanceladas:       r.RoutesCancelled,
		MotoristasAtivos:      r.ActiveDrivers,
		VeiculosDisponiveis:   r.AvailableVehicles,
		EntregasSemAtribuicao: r.UnassignedPendingDeliveries,
		VeiculosEmManutencao:  r.VehiclesInMaintenance,
	}
}

func toDashboardMotoristaResponse(d queries.DriverDashboardResponse) dashboardMotoristaResponse {
	resp := dashboardMotoristaResponse{
		MotoristaID:            d.DriverID.String(),
		MotoristaNome:          d.DriverName,
		Status:                 d.Status,
		RotasHoje:              make([]rotaResponse, len(d.TodayRoutes)),
		EntregasPendentes:      d.PendingDeliveries,
		EntregasEmTransito:     d.InTransitDeliveries,
		EntregasConcluidasHoje: d.DeliveredToday,
	}

	if d.CurrentVehicle != nil {
		vehicle := toVeiculoResponse(*d.CurrentVehicle)
		resp.VeiculoAtual = &vehicle
	}
	for i, r := range d.TodayRoutes {
		resp.RotasHoje[i] = toRotaResponse(r)
	}

	return resp
}

// Parsing helpers.

func parseID(raw, paramName string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidError(paramName)
	}
	return id, nil
}

func parseOptionalID(raw *string, paramName string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := parseID(*raw, paramName)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseDate(raw, paramName string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidError(paramName)
	}
	return parsed, nil
}

func parseOptionalDate(raw *string, paramName string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	parsed, err := parseDate(*raw, paramName)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(dateLayout)
	return &formatted
}

func uuidString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
