// AngelaMos | 2026
// dto.go

package contribution

import (
	"encoding/json"
	"errors"
	"time"
)

const (
	MsgNameTooShort        = "Name must be at least 2 characters"
	MsgInvalidEmail        = "Please enter a valid email"
	MsgContentTooShort     = "Content must be at least 10 characters"
	MsgDescriptionTooShort = "Description must be at least 20 characters"
	MsgSourceTooShort      = "Source information must be at least 10 characters"
	MsgMartyrNotFound      = "The selected memorial record does not exist"
)

var ErrSystemAccountMissing = errors.New("System error: Admin user not found") //nolint:staticcheck // shown to users as-is

// SubmitInput carries the general contribution form. Any status the caller
// supplies is ignored.
type SubmitInput struct {
	MartyrID         string `json:"martyrId"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Relationship     string `json:"relationship"`
	Content          string `json:"content"`
	URL              string `json:"url"`
	ContributionType string `json:"contributionType"`
	Status           string `json:"status,omitempty"`
}

// AddMartyrInput carries a new-record proposal. Optional fields are blank
// when not provided.
type AddMartyrInput struct {
	Name                  string `json:"name"`
	Date                  string `json:"date"`
	Location              string `json:"location"`
	Description           string `json:"description"`
	Source                string `json:"source"`
	Age                   string `json:"age"`
	Gender                string `json:"gender"`
	Occupation            string `json:"occupation"`
	FamilyStatus          string `json:"familyStatus"`
	Cause                 string `json:"cause"`
	ImageURL              string `json:"imageUrl"`
	SubmitterRelationship string `json:"submitterRelationship"`
	SubmitterName         string `json:"submitterName"`
	SubmitterEmail        string `json:"submitterEmail"`
}

type ReviewRequest struct {
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type ListPendingParams struct {
	Page     int
	PageSize int
}

func (p *ListPendingParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

func (p *ListPendingParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

type ContributionResponse struct {
	ID          string          `json:"id"`
	Type        Type            `json:"type"`
	Status      Status          `json:"status"`
	Content     json.RawMessage `json:"content"`
	Notes       *string         `json:"notes,omitempty"`
	ReviewNotes *string         `json:"reviewNotes,omitempty"`
	MartyrID    *string         `json:"martyrId,omitempty"`
	MartyrName  *string         `json:"martyrName,omitempty"`
	User        SubmitterInfo   `json:"user"`
	ReviewedBy  *string         `json:"reviewedBy,omitempty"`
	ReviewedAt  *time.Time      `json:"reviewedAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type SubmitterInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func ToContributionResponse(c *Contribution) ContributionResponse {
	content := json.RawMessage(c.Content)
	if len(content) == 0 {
		content = json.RawMessage("{}")
	}

	return ContributionResponse{
		ID:          c.ID,
		Type:        c.Type,
		Status:      c.Status,
		Content:     content,
		Notes:       c.Notes,
		ReviewNotes: c.ReviewNotes,
		MartyrID:    c.MartyrID,
		MartyrName:  c.MartyrName,
		User: SubmitterInfo{
			ID:    c.UserID,
			Name:  c.SubmitterName,
			Email: c.SubmitterEmail,
		},
		ReviewedBy: c.ReviewedBy,
		ReviewedAt: c.ReviewedAt,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func ToContributionResponseList(items []Contribution) []ContributionResponse {
	responses := make([]ContributionResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToContributionResponse(&items[i]))
	}
	return responses
}
