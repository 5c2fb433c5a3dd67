// Package navigation mapeia as abas do dashboard para descritores de
// visão. O cliente usa Path para o histórico do navegador e Collections
// para saber quais assinaturas de coleção abrir ao montar a visão.
package navigation

// Tab descreve uma aba navegável do dashboard.
type Tab struct {
	Key          string   `json:"key"`
	Title        string   `json:"title"`
	Path         string   `json:"path"`
	RequiredRole string   `json:"requiredRole,omitempty"`
	Collections  []string `json:"collections,omitempty"`
}

// tabs é a tabela fixa de navegação, na ordem de exibição.
var tabs = []Tab{
	{Key: "dashboard", Title: "ภาพรวม", Path: "/", Collections: []string{"tasks", "plans", "links"}},
	{Key: "strategy", Title: "กระดานยุทธศาสตร์", Path: "/strategy", Collections: []string{"tasks"}},
	{Key: "masterplan", Title: "แผนแม่บท", Path: "/masterplan", Collections: []string{"plans"}},
	{Key: "rapidresponse", Title: "ตอบโต้เร่งด่วน", Path: "/rapid-response", Collections: []string{"tasks"}},
	{Key: "assets", Title: "ช่องทางและสื่อ", Path: "/assets", Collections: []string{"channels", "media_contacts"}},
	{Key: "newsroom", Title: "ห้องข่าว", Path: "/newsroom", Collections: []string{"links"}},
	{Key: "admin", Title: "ผู้ดูแลระบบ", Path: "/admin", RequiredRole: "Admin"},
}

// Tabs devolve a tabela completa na ordem de exibição.
func Tabs() []Tab {
	out := make([]Tab, len(tabs))
	copy(out, tabs)
	return out
}

// TabsForRole filtra as abas visíveis para um papel.
func TabsForRole(role string) []Tab {
	visible := []Tab{}
	for _, tab := range tabs {
		if tab.RequiredRole == "" || tab.RequiredRole == role {
			visible = append(visible, tab)
		}
	}
	return visible
}

// Lookup resolve uma aba pela chave.
func Lookup(key string) (Tab, bool) {
	for _, tab := range tabs {
		if tab.Key == key {
			return tab, true
		}
	}
	return Tab{}, false
}
