// AngelaMos | 2026
// dto.go

package martyr

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const (
	MsgNameTooShort     = "Name must be at least 2 characters"
	MsgDateRequired     = "Date is required"
	MsgInvalidDate      = "Please enter a valid date"
	MsgLocationRequired = "Location is required"
	MsgInvalidAge       = "Age must be a valid number"
)

// MaxAge bounds the age column on every write path.
const MaxAge = 150

var ErrInvalidDate = errors.New(MsgInvalidDate)

// ParseDate accepts ISO dates and the month-name forms people type into
// forms. Slash dates are read day-first or month-first only when one of
// the two leading numbers is above 12; anything else ambiguous, bare
// numbers such as unix timestamps, and impossible calendar dates are
// rejected.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || isDigits(s) {
		return time.Time{}, ErrInvalidDate
	}

	if t, ok, err := parseSlashDate(s); ok {
		return t, err
	}

	t, err := dateparse.ParseStrict(s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	return t.UTC(), nil
}

func parseSlashDate(s string) (time.Time, bool, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 || len(parts[2]) != 4 {
		return time.Time{}, false, nil
	}
	for _, p := range parts {
		if !isDigits(p) {
			return time.Time{}, false, nil
		}
	}

	first, _ := strconv.Atoi(parts[0])
	second, _ := strconv.Atoi(parts[1])

	var layout string
	switch {
	case first > 12 && second <= 12:
		layout = "2/1/2006"
	case second > 12 && first <= 12:
		layout = "1/2/2006"
	default:
		return time.Time{}, true, ErrInvalidDate
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, true, ErrInvalidDate
	}
	return t, true, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

type CreateMartyrRequest struct {
	Name         string  `json:"name"                    validate:"required,min=2,max=200"`
	Date         string  `json:"date"                    validate:"required,max=64"`
	Location     string  `json:"location"                validate:"required,max=200"`
	Cause        *string `json:"cause,omitempty"         validate:"omitempty,max=500"`
	Description  *string `json:"description,omitempty"   validate:"omitempty,max=10000"`
	ImageURL     *string `json:"imageUrl,omitempty"      validate:"omitempty,url,max=500"`
	Age          *int    `json:"age,omitempty"           validate:"omitempty,min=0,max=150"`
	Gender       *string `json:"gender,omitempty"        validate:"omitempty,max=16"`
	Occupation   *string `json:"occupation,omitempty"    validate:"omitempty,max=200"`
	FamilyStatus *string `json:"familyStatus,omitempty"  validate:"omitempty,max=200"`
	IsVerified   *bool   `json:"isVerified,omitempty"`
}

type UpdateMartyrRequest struct {
	Name         *string `json:"name,omitempty"          validate:"omitempty,min=2,max=200"`
	Date         *string `json:"date,omitempty"          validate:"omitempty,max=64"`
	Location     *string `json:"location,omitempty"      validate:"omitempty,min=1,max=200"`
	Cause        *string `json:"cause,omitempty"         validate:"omitempty,max=500"`
	Description  *string `json:"description,omitempty"   validate:"omitempty,max=10000"`
	ImageURL     *string `json:"imageUrl,omitempty"      validate:"omitempty,url,max=500"`
	Age          *int    `json:"age,omitempty"           validate:"omitempty,min=0,max=150"`
	Gender       *string `json:"gender,omitempty"        validate:"omitempty,max=16"`
	Occupation   *string `json:"occupation,omitempty"    validate:"omitempty,max=200"`
	FamilyStatus *string `json:"familyStatus,omitempty"  validate:"omitempty,max=200"`
}

type VerifyMartyrRequest struct {
	IsVerified bool `json:"isVerified"`
}

type MartyrResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Date         time.Time             `json:"date"`
	Location     string                `json:"location"`
	Cause        *string               `json:"cause,omitempty"`
	Description  *string               `json:"description,omitempty"`
	ImageURL     *string               `json:"imageUrl,omitempty"`
	Age          *int                  `json:"age,omitempty"`
	Gender       *Gender               `json:"gender,omitempty"`
	Occupation   *string               `json:"occupation,omitempty"`
	FamilyStatus *string               `json:"familyStatus,omitempty"`
	IsVerified   bool                  `json:"isVerified"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
	Testimonials []TestimonialResponse `json:"testimonials"`
	Sources      []SourceResponse      `json:"sources"`
}

type TestimonialResponse struct {
	ID           string     `json:"id"`
	Content      string     `json:"content"`
	Author       string     `json:"author"`
	Relationship *string    `json:"relationship,omitempty"`
	Date         *time.Time `json:"date,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type SourceResponse struct {
	ID   string     `json:"id"`
	Name string     `json:"name"`
	URL  *string    `json:"url,omitempty"`
	Date time.Time  `json:"date"`
	Type SourceType `json:"type"`
}

type AnalyticsResponse struct {
	Stats        *Stats          `json:"stats"`
	ByYear       []YearCount     `json:"byYear"`
	ByLocation   []LocationCount `json:"byLocation"`
	TopLocations []LocationCount `json:"topLocations"`
}

func ToMartyrResponse(m *Martyr) MartyrResponse {
	resp := MartyrResponse{
		ID:           m.ID,
		Name:         m.Name,
		Date:         m.Date,
		Location:     m.Location,
		Cause:        m.Cause,
		Description:  m.Description,
		ImageURL:     m.ImageURL,
		Age:          m.Age,
		Gender:       m.Gender,
		Occupation:   m.Occupation,
		FamilyStatus: m.FamilyStatus,
		IsVerified:   m.IsVerified,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		Testimonials: make([]TestimonialResponse, 0, len(m.Testimonials)),
		Sources:      make([]SourceResponse, 0, len(m.Sources)),
	}

	for _, t := range m.Testimonials {
		resp.Testimonials = append(resp.Testimonials, TestimonialResponse{
			ID:           t.ID,
			Content:      t.Content,
			Author:       t.Author,
			Relationship: t.Relationship,
			Date:         t.Date,
			CreatedAt:    t.CreatedAt,
		})
	}

	for _, s := range m.Sources {
		resp.Sources = append(resp.Sources, SourceResponse{
			ID:   s.ID,
			Name: s.Name,
			URL:  s.URL,
			Date: s.Date,
			Type: s.Type,
		})
	}

	return resp
}

func ToMartyrResponseList(martyrs []Martyr) []MartyrResponse {
	responses := make([]MartyrResponse, 0, len(martyrs))
	for i := range martyrs {
		responses = append(responses, ToMartyrResponse(&martyrs[i]))
	}
	return responses
}
