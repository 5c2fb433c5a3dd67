package models

// Channel é um canal de publicação do diretório de ativos (sem estado
// derivado).
type Channel struct {
	ID       string `json:"id" firestore:"-"`
	Name     string `json:"name" firestore:"name"`
	Platform string `json:"platform,omitempty" firestore:"platform,omitempty"`
	URL      string `json:"url,omitempty" firestore:"url,omitempty"`
	Notes    string `json:"notes,omitempty" firestore:"notes,omitempty"`
}

// MediaContact é um contato de imprensa do diretório de ativos.
type MediaContact struct {
	ID     string `json:"id" firestore:"-"`
	Name   string `json:"name" firestore:"name"`
	Outlet string `json:"outlet,omitempty" firestore:"outlet,omitempty"`
	Phone  string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Email  string `json:"email,omitempty" firestore:"email,omitempty"`
	Notes  string `json:"notes,omitempty" firestore:"notes,omitempty"`
}
