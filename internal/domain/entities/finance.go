package entities

// EntryKind selects one of the financial books under /financeiro.
type EntryKind string

const (
	EntryKindCashFlow   EntryKind = "fluxo-caixa"
	EntryKindPayable    EntryKind = "contas-pagar"
	EntryKindReceivable EntryKind = "contas-receber"
)

func (k EntryKind) Valid() bool {
	return k == EntryKindCashFlow || k == EntryKindPayable || k == EntryKindReceivable
}

type EntryType string

const (
	EntryTypeEntrada EntryType = "entrada"
	EntryTypeSaida   EntryType = "saida"
)

// EntryStatus covers both the backend status and the locally derived display
// status.
type EntryStatus string

const (
	EntryStatusPendente     EntryStatus = "pendente"
	EntryStatusPago         EntryStatus = "pago"
	EntryStatusRecebido     EntryStatus = "recebido"
	EntryStatusCancelado    EntryStatus = "cancelado"
	EntryStatusVencido      EntryStatus = "vencido"
	EntryStatusVenceEmBreve EntryStatus = "vence_em_breve"
)

// FinancialEntry is a cash-flow movement, payable or receivable.
//
// Date is the cash-flow movement date; it is a plain string field called
// "data", which is why envelope detection ignores scalar "data" values.
type FinancialEntry struct {
	ID            ID          `json:"id"`
	Type          EntryType   `json:"tipo"`
	Description   string      `json:"descricao"`
	Amount        float64     `json:"valor"`
	CategoryID    ID          `json:"categoria_id,omitempty"`
	CategoryName  string      `json:"categoria_nome,omitempty"`
	Date          string      `json:"data,omitempty"`
	DueDate       string      `json:"data_vencimento,omitempty"`
	PaidDate      string      `json:"data_pagamento,omitempty"`
	Counterparty  string      `json:"favorecido,omitempty"`
	PaymentMethod string      `json:"forma_pagamento,omitempty"`
	Status        EntryStatus `json:"status,omitempty"`
	DisplayStatus EntryStatus `json:"status_exibicao,omitempty"`
	Notes         string      `json:"observacoes,omitempty"`
}

// Settlement is the payload of the pay/receive actions.
type Settlement struct {
	PaidDate      string  `json:"data_pagamento"`
	Amount        float64 `json:"valor,omitempty"`
	PaymentMethod string  `json:"forma_pagamento,omitempty"`
}

type FinanceCategory struct {
	ID   ID        `json:"id"`
	Name string    `json:"nome"`
	Type EntryType `json:"tipo"`
}

// FinanceSummary is the dashboard block served by /financeiro/resumo.
type FinanceSummary struct {
	Income       float64 `json:"entradas"`
	Expenses     float64 `json:"saidas"`
	Balance      float64 `json:"saldo"`
	Payable      float64 `json:"a_pagar"`
	Receivable   float64 `json:"a_receber"`
	OverdueCount int     `json:"vencidas"`
}
