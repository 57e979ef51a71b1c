package dto

import (
	"time"

	"go-medical-console/internal/domain/entity"
)

type AuditLogQuery struct {
	UserID   *int64
	Action   string
	Resource string
	Page     int
	PerPage  int
}

// Response DTOs

type AuditLogResponse struct {
	ID         int64       `json:"id"`
	UserID     *int64      `json:"user_id,omitempty"`
	UserEmail  string      `json:"user_email,omitempty"`
	Role       string      `json:"role,omitempty"`
	Action     string      `json:"action"`
	Resource   string      `json:"resource,omitempty"`
	ResourceID string      `json:"resource_id,omitempty"`
	Metadata   entity.JSON `json:"metadata,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs       []AuditLogResponse `json:"logs"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PerPage    int                `json:"per_page"`
	TotalPages int                `json:"total_pages"`
}
