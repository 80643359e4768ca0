package domain

type Club struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Faculty     string `json:"faculty"`
	Description string `json:"description"`
}
