package model

// Manager receives assessment notifications for a business. Default managers
// are included in every assessment of their business.
type Manager struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Region    string `json:"region"`
	Position  string `json:"position"`
	IsDefault bool   `json:"is_default"`
}
