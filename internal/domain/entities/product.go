package entities

type ProductType string

const (
	ProductTypePeca      ProductType = "peca"
	ProductTypeAcessorio ProductType = "acessorio"
)

func (t ProductType) Valid() bool {
	return t == ProductTypePeca || t == ProductTypeAcessorio
}

// Product is an inventory item.
//
// StockCurrent is read-only from this side: stock only changes through a
// movement so the backend keeps the history.
type Product struct {
	ID           ID          `json:"id"`
	Name         string      `json:"nome"`
	Code         string      `json:"codigo,omitempty"`
	Description  string      `json:"descricao,omitempty"`
	Type         ProductType `json:"tipo"`
	CategoryID   ID          `json:"categoria_id,omitempty"`
	CategoryName string      `json:"categoria_nome,omitempty"`
	StockCurrent int         `json:"estoque_atual"`
	StockMin     int         `json:"estoque_minimo"`
	StockMax     int         `json:"estoque_maximo"`
	CostPrice    float64     `json:"preco_custo"`
	SalePrice    float64     `json:"preco_venda"`
	Margin       float64     `json:"margem"`
	Location     string      `json:"localizacao,omitempty"`
	Active       bool        `json:"ativo"`
}

// ProductInput is the create/update payload. InitialStock is only sent on
// create.
type ProductInput struct {
	Name         string      `json:"nome"`
	Code         string      `json:"codigo,omitempty"`
	Description  string      `json:"descricao,omitempty"`
	Type         ProductType `json:"tipo"`
	CategoryID   ID          `json:"categoria_id,omitempty"`
	InitialStock *int        `json:"estoque_atual,omitempty"`
	StockMin     int         `json:"estoque_minimo"`
	StockMax     int         `json:"estoque_maximo"`
	CostPrice    float64     `json:"preco_custo"`
	SalePrice    float64     `json:"preco_venda"`
	Margin       float64     `json:"margem"`
	Location     string      `json:"localizacao,omitempty"`
	Active       *bool       `json:"ativo,omitempty"`
}

type Category struct {
	ID          ID     `json:"id"`
	Name        string `json:"nome"`
	Description string `json:"descricao,omitempty"`
}

// StockAlert flags a product at or below its minimum stock.
type StockAlert struct {
	ProductID    ID     `json:"produto_id"`
	Name         string `json:"nome"`
	StockCurrent int    `json:"estoque_atual"`
	StockMin     int    `json:"estoque_minimo"`
	Level        string `json:"nivel"`
}

type MovementType string

const (
	MovementEntrada MovementType = "entrada"
	MovementSaida   MovementType = "saida"
	MovementAjuste  MovementType = "ajuste"
)

func (t MovementType) Valid() bool {
	return t == MovementEntrada || t == MovementSaida || t == MovementAjuste
}

// StockMovement is both the payload of /produtos/:id/movimentar and an entry
// of the movement history.
type StockMovement struct {
	ID            ID           `json:"id,omitempty"`
	ProductID     ID           `json:"produto_id,omitempty"`
	Type          MovementType `json:"tipo"`
	Quantity      int          `json:"quantidade"`
	Reason        string       `json:"motivo,omitempty"`
	PreviousStock *int         `json:"estoque_anterior,omitempty"`
	NewStock      *int         `json:"estoque_novo,omitempty"`
	CreatedAt     string       `json:"created_at,omitempty"`
}
