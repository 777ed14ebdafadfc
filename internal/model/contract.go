package model

// Contractor is the individual client who signs the contract (contratante).
type Contractor struct {
	Name       string `json:"nome"`
	NationalID string `json:"rg"`
	TaxID      string `json:"cpf"`
}

// ContractedParty is the company providing the products (contratado).
type ContractedParty struct {
	CompanyName  string `json:"nomeEmpresa"`
	CompanyTaxID string `json:"cnpj"`
}

// LineItem is one row of the contracted products table. The JSON keys are the
// ones stored in pedidos.produtos_contratados_json.
type LineItem struct {
	Quantity    string `json:"Quantidade"`
	Description string `json:"Produto"`
	UnitValue   string `json:"Valor Unitário"`
	TotalValue  string `json:"Valor Total Item"`
}

// ContractRecord is the structured result of parsing a contract text.
// Every field is independently optional.
type ContractRecord struct {
	Contractor      Optional[Contractor]      `json:"contratante"`
	ContractedParty Optional[ContractedParty] `json:"contratado"`
	LineItems       []LineItem                `json:"produtosContratados"`
	TotalValue      Optional[string]          `json:"valorTotalPedido"`
	PaymentDate     Optional[string]          `json:"dataPagamento"`
	EventDate       Optional[string]          `json:"dataEvento"`
	EventLocation   Optional[string]          `json:"localEvento"`
}
