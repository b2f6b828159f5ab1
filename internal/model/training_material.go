package model

// TrainingMaterial is ordered by a dense 0-based Order.
type TrainingMaterial struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	DocumentURL string `json:"document_url"`
	Active      bool   `json:"active"`
	Order       int    `json:"order"`
}
