package entities

// PersonClassification distinguishes natural persons (PF, CPF document) from
// legal entities (PJ, CNPJ document).
type PersonClassification string

const (
	PersonClassificationPF PersonClassification = "PF"
	PersonClassificationPJ PersonClassification = "PJ"
)

type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
}

// Person is a client or related party that can be associated with proposals.
type Person struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Classification PersonClassification `json:"classification"`
	CPF            *string              `json:"cpf,omitempty"`
	CNPJ           *string              `json:"cnpj,omitempty"`
	Address        *Address             `json:"address,omitempty"`
}

// Seller is a sales executive. A seller may belong to several sales teams.
type Seller struct {
	ID           string   `json:"id"`
	UserID       string   `json:"user_id"`
	Name         string   `json:"name"`
	SalesTeamIDs []string `json:"sales_team_ids"`
}

// Channel is the sales channel a proposal came through.
type Channel struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	HasPartner bool   `json:"has_partner"`
}
