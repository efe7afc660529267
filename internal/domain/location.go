package domain

type Location struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
