package dto

import (
	"time"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

// DateLayout formato de fecha de calendario usado en entradas y salidas.
const DateLayout = "2006-01-02"

// ToProjectResponse convierte la entidad a su salida HTTP.
func ToProjectResponse(p *entity.Project) ProjectResponse {
	return ProjectResponse{
		ID:              p.ID,
		ProjectCode:     p.ProjectCode,
		Name:            p.Name,
		ClientName:      p.ClientName,
		Description:     p.Description,
		EstimatedCost:   p.EstimatedCost,
		StartDate:       formatDate(p.StartDate),
		EndDate:         formatDate(p.EndDate),
		Status:          string(p.Status),
		ProgressPercent: p.ProgressPercent,
		CreatedBy:       p.CreatedBy,
		ApprovedBy:      p.ApprovedBy,
		CreatedAt:       p.CreatedAt,
	}
}

// ToProjectList convierte una lista; nunca devuelve nil para que el JSON sea [].
func ToProjectList(list []*entity.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToProjectResponse(p))
	}
	return out
}

func ToTaskResponse(t *entity.Task) TaskResponse {
	return TaskResponse{
		ID:              t.ID,
		ProjectID:       t.ProjectID,
		Name:            t.Name,
		Description:     t.Description,
		AssignedTo:      t.AssignedTo,
		Status:          string(t.Status),
		ProgressPercent: t.ProgressPercent,
		StartDate:       formatDate(t.StartDate),
		EndDate:         formatDate(t.EndDate),
		CreatedAt:       t.CreatedAt,
	}
}

func ToTaskList(list []*entity.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(list))
	for _, t := range list {
		out = append(out, ToTaskResponse(t))
	}
	return out
}

func ToPurchaseRequestResponse(pr *entity.PurchaseRequest) PurchaseRequestResponse {
	return PurchaseRequestResponse{
		ID:            pr.ID,
		ProjectID:     pr.ProjectID,
		RequestedBy:   pr.RequestedBy,
		SupplierID:    pr.SupplierID,
		Description:   pr.Description,
		EstimatedCost: pr.EstimatedCost,
		Status:        string(pr.Status),
		CreatedAt:     pr.CreatedAt,
	}
}

func ToPurchaseRequestList(list []*entity.PurchaseRequest) []PurchaseRequestResponse {
	out := make([]PurchaseRequestResponse, 0, len(list))
	for _, pr := range list {
		out = append(out, ToPurchaseRequestResponse(pr))
	}
	return out
}

func ToSupplierResponse(s *entity.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt,
	}
}

func ToInvoiceResponse(inv *entity.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.ID,
		ProjectID:     inv.ProjectID,
		InvoiceType:   inv.InvoiceType,
		Amount:        inv.Amount,
		PaymentStatus: string(inv.PaymentStatus),
		CreatedBy:     inv.CreatedBy,
		CreatedAt:     inv.CreatedAt,
	}
}

func ToInvoiceList(list []*entity.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, ToInvoiceResponse(inv))
	}
	return out
}

func ToCommentResponse(c *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:          c.ID,
		ProjectID:   c.ProjectID,
		UserID:      c.UserID,
		CommentText: c.CommentText,
		CreatedAt:   c.CreatedAt,
	}
}

func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Role:       string(u.Role),
		Department: u.Department,
		FullName:   u.FullName,
		Email:      u.Email,
		Phone:      u.Phone,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
	}
}

func ToUserSummary(u *entity.User) UserSummary {
	return UserSummary{
		ID:         u.ID,
		Username:   u.Username,
		FullName:   u.FullName,
		Role:       string(u.Role),
		Department: u.Department,
	}
}

func ToSessionResponse(s entity.Session) SessionResponse {
	return SessionResponse{
		UserID:     s.UserID,
		Username:   s.Username,
		Role:       string(s.Role),
		Department: s.Department,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
