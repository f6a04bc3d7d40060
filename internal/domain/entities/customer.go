package entities

// Customer is a shop customer (cliente).
type Customer struct {
	ID        ID     `json:"id"`
	Name      string `json:"nome"`
	Phone     string `json:"telefone"`
	Email     string `json:"email"`
	Document  string `json:"cpf_cnpj,omitempty"`
	Address   string `json:"endereco"`
	City      string `json:"cidade,omitempty"`
	State     string `json:"estado,omitempty"`
	ZipCode   string `json:"cep,omitempty"`
	Notes     string `json:"observacoes,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
