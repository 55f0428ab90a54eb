package dto

// DashboardStatsDTO contadores globales (no dependen del rol).
type DashboardStatsDTO struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

// DashboardDTO respuesta de GET /api/dashboard: vistas filtradas por rol más contadores.
type DashboardDTO struct {
	Projects         []ProjectResponse         `json:"projects"`
	PurchaseRequests []PurchaseRequestResponse `json:"purchase_requests"`
	Invoices         []InvoiceResponse         `json:"invoices"`
	Stats            DashboardStatsDTO         `json:"stats"`
}

// ProjectDetailDTO respuesta de GET /api/projects/:id.
type ProjectDetailDTO struct {
	Project          ProjectResponse           `json:"project"`
	Tasks            []TaskResponse            `json:"tasks"`
	PurchaseRequests []PurchaseRequestResponse `json:"purchase_requests"`
	Invoices         []InvoiceResponse         `json:"invoices"`
	Comments         []CommentResponse         `json:"comments"` // del más reciente al más antiguo
	ActiveUsers      []UserSummary             `json:"active_users"`
	CommentAuthors   map[string]UserSummary    `json:"comment_authors"` // comment_id -> autor
}
