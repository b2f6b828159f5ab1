package model

type Attribute struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order"`
	Active      bool   `json:"active"`
}

// QuestionPair contrasts two attributes through a pair of statements.
type QuestionPair struct {
	ID             uint   `json:"id"`
	Attribute1Name string `json:"attribute1_name"`
	Attribute2Name string `json:"attribute2_name"`
	StatementA     string `json:"statement_a"`
	StatementB     string `json:"statement_b"`
	Order          int    `json:"order"`
	Active         bool   `json:"active"`
}
