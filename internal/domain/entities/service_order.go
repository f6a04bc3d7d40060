package entities

// OrderStatus is the lifecycle of a service order (ordem de serviço).
//
// The set is closed: the browser colors status chips from it and the
// backend rejects anything else.
type OrderStatus string

const (
	OrderStatusAguardando     OrderStatus = "aguardando"
	OrderStatusEmAndamento    OrderStatus = "em_andamento"
	OrderStatusAguardandoPeca OrderStatus = "aguardando_peca"
	OrderStatusPronto         OrderStatus = "pronto"
	OrderStatusEntregue       OrderStatus = "entregue"
	OrderStatusCancelado      OrderStatus = "cancelado"
)

var orderStatuses = map[OrderStatus]struct{}{
	OrderStatusAguardando:     {},
	OrderStatusEmAndamento:    {},
	OrderStatusAguardandoPeca: {},
	OrderStatusPronto:         {},
	OrderStatusEntregue:       {},
	OrderStatusCancelado:      {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatuses[s]
	return ok
}

type OrderPriority string

const (
	OrderPriorityBaixa   OrderPriority = "baixa"
	OrderPriorityNormal  OrderPriority = "normal"
	OrderPriorityAlta    OrderPriority = "alta"
	OrderPriorityUrgente OrderPriority = "urgente"
)

func (p OrderPriority) Valid() bool {
	switch p {
	case OrderPriorityBaixa, OrderPriorityNormal, OrderPriorityAlta, OrderPriorityUrgente:
		return true
	}
	return false
}

// OrderPart is a part (peça) consumed by an order.
type OrderPart struct {
	ProductID ID      `json:"produto_id,omitempty"`
	Name      string  `json:"nome"`
	Quantity  int     `json:"quantidade"`
	UnitPrice float64 `json:"valor_unitario"`
}

// OrderService is a service line (serviço) billed on an order.
type OrderService struct {
	Description string  `json:"descricao"`
	Price       float64 `json:"valor"`
}

type OrderPhoto struct {
	ID        ID     `json:"id"`
	URL       string `json:"url"`
	Filename  string `json:"filename,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ServiceOrder is a repair order.
//
// Monetary representation:
//   - PartsTotal, ServicesTotal and Total are recomputed locally before
//     saving; the backend recomputes them again and its values win.
type ServiceOrder struct {
	ID             ID             `json:"id"`
	Number         string         `json:"numero,omitempty"`
	CustomerID     ID             `json:"cliente_id"`
	CustomerName   string         `json:"cliente_nome,omitempty"`
	CustomerPhone  string         `json:"cliente_telefone,omitempty"`
	Equipment      string         `json:"equipamento"`
	Brand          string         `json:"marca,omitempty"`
	Model          string         `json:"modelo,omitempty"`
	SerialNumber   string         `json:"numero_serie,omitempty"`
	ReportedDefect string         `json:"defeito_relatado"`
	Diagnosis      string         `json:"diagnostico,omitempty"`
	Status         OrderStatus    `json:"status"`
	Priority       OrderPriority  `json:"prioridade"`
	Parts          []OrderPart    `json:"pecas"`
	Services       []OrderService `json:"servicos"`
	LaborCost      float64        `json:"valor_mao_obra"`
	Discount       float64        `json:"desconto"`
	PartsTotal     float64        `json:"valor_pecas"`
	ServicesTotal  float64        `json:"valor_servicos"`
	Total          float64        `json:"valor_total"`
	Photos         []OrderPhoto   `json:"fotos,omitempty"`
	EntryDate      string         `json:"data_entrada,omitempty"`
	ForecastDate   string         `json:"data_previsao,omitempty"`
	CompletedAt    string         `json:"data_conclusao,omitempty"`
	Notes          string         `json:"observacoes,omitempty"`
}

// OrderHistoryEntry is one status transition recorded by the backend.
type OrderHistoryEntry struct {
	ID             ID     `json:"id"`
	OrderID        ID     `json:"ordem_id"`
	PreviousStatus string `json:"status_anterior"`
	NewStatus      string `json:"status_novo"`
	Note           string `json:"observacao,omitempty"`
	User           string `json:"usuario,omitempty"`
	CreatedAt      string `json:"created_at"`
}

// OrderStats is the dashboard counter block served by /ordens/stats.
type OrderStats struct {
	Total          int            `json:"total"`
	ByStatus       map[string]int `json:"por_status"`
	MonthlyRevenue float64        `json:"faturamento_mes"`
	AverageTicket  float64        `json:"ticket_medio"`
	OpenOrders     int            `json:"em_aberto"`
}

// StatusChange is the payload of PATCH /ordens/:id/status.
type StatusChange struct {
	Status OrderStatus `json:"status"`
	Note   string      `json:"observacao,omitempty"`
}

// PhotoUpload is an image held in memory until it is sent as multipart.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}
