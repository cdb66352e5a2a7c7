// AngelaMos | 2026
// entity.go

package contribution

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx/types"

	"github.com/angelamos/memorial/internal/core"
)

type Type string

const (
	TypeMartyrAddition Type = "MARTYR_ADDITION"
	TypeCorrection     Type = "CORRECTION"
	TypeTestimonial    Type = "TESTIMONIAL"
	TypePhoto          Type = "PHOTO"
	TypeDocument       Type = "DOCUMENT"
	TypeOther          Type = "OTHER"
)

var formTypes = map[string]Type{
	"testimonial": TypeTestimonial,
	"photo":       TypePhoto,
	"document":    TypeDocument,
	"correction":  TypeCorrection,
	"information": TypeOther,
}

// MapType turns the free-form type chosen on the contribution form into a
// stored type. Unknown and blank values become OTHER.
func MapType(s string) Type {
	key := strings.ToLower(strings.TrimSpace(s))
	if t, ok := formTypes[key]; ok {
		return t
	}

	switch t := Type(strings.ToUpper(key)); t {
	case TypeMartyrAddition, TypeCorrection, TypeTestimonial,
		TypePhoto, TypeDocument, TypeOther:
		return t
	}

	return TypeOther
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

var ErrAlreadyResolved = fmt.Errorf("contribution already resolved: %w", core.ErrConflict)

type Contribution struct {
	ID          string         `db:"id"`
	Type        Type           `db:"type"`
	Status      Status         `db:"status"`
	Content     types.JSONText `db:"content"`
	Notes       *string        `db:"notes"`
	ReviewNotes *string        `db:"review_notes"`
	UserID      string         `db:"user_id"`
	MartyrID    *string        `db:"martyr_id"`
	ReviewedBy  *string        `db:"reviewed_by"`
	ReviewedAt  *time.Time     `db:"reviewed_at"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`

	SubmitterName  string  `db:"submitter_name"`
	SubmitterEmail string  `db:"submitter_email"`
	MartyrName     *string `db:"martyr_name"`
}

// SubmissionPayload is the content of contributions made through the
// general contribution form.
type SubmissionPayload struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Relationship     string `json:"relationship"`
	Content          string `json:"content"`
	URL              string `json:"url"`
	ContributionType string `json:"contributionType"`
}

type MartyrData struct {
	Name         string    `json:"name"`
	Date         time.Time `json:"date"`
	Location     string    `json:"location"`
	Cause        *string   `json:"cause,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Age          *int      `json:"age,omitempty"`
	Gender       *string   `json:"gender,omitempty"`
	Occupation   *string   `json:"occupation,omitempty"`
	FamilyStatus *string   `json:"familyStatus,omitempty"`
	ImageURL     *string   `json:"imageUrl,omitempty"`
}

// MartyrAdditionPayload is the content of a new-record proposal.
type MartyrAdditionPayload struct {
	MartyrData            MartyrData `json:"martyrData"`
	Source                string     `json:"source"`
	SubmitterRelationship *string    `json:"submitterRelationship,omitempty"`
}

func encodePayload(v any) (types.JSONText, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode contribution content: %w", err)
	}
	return types.JSONText(raw), nil
}

func (c *Contribution) decode(v any) error {
	if len(c.Content) == 0 {
		return nil
	}
	if err := json.Unmarshal(c.Content, v); err != nil {
		return fmt.Errorf("decode contribution %s content: %w", c.ID, err)
	}
	return nil
}

type StatusCount struct {
	Status Status `db:"status" json:"status"`
	Count  int    `db:"count"  json:"count"`
}
