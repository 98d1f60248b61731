package entity

// Entidade: Session - identidade autenticada do dashboard.
// Cliente single-tenant: existe no máximo uma sessão por vez.
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
