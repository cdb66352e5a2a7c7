// AngelaMos | 2026
// entity.go

package martyr

import (
	"strings"
	"time"

	"github.com/angelamos/memorial/internal/core"
)

type Gender string

const (
	GenderMale    Gender = "MALE"
	GenderFemale  Gender = "FEMALE"
	GenderOther   Gender = "OTHER"
	GenderUnknown Gender = "UNKNOWN"
)

// ParseGender uppercases s and falls back to UNKNOWN for anything outside
// the enum.
func ParseGender(s string) Gender {
	switch g := Gender(strings.ToUpper(strings.TrimSpace(s))); g {
	case GenderMale, GenderFemale, GenderOther, GenderUnknown:
		return g
	default:
		return GenderUnknown
	}
}

type SourceType string

const (
	SourceNews     SourceType = "NEWS"
	SourceReport   SourceType = "REPORT"
	SourceSocial   SourceType = "SOCIAL"
	SourceOfficial SourceType = "OFFICIAL"
	SourceOther    SourceType = "OTHER"
)

type Martyr struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Date         time.Time `db:"date"`
	Location     string    `db:"location"`
	Cause        *string   `db:"cause"`
	Description  *string   `db:"description"`
	ImageURL     *string   `db:"image_url"`
	Age          *int      `db:"age"`
	Gender       *Gender   `db:"gender"`
	Occupation   *string   `db:"occupation"`
	FamilyStatus *string   `db:"family_status"`
	IsVerified   bool      `db:"is_verified"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`

	Testimonials []Testimonial `db:"-"`
	Sources      []Source      `db:"-"`
}

// Validate checks the columns every stored record must carry.
func (m *Martyr) Validate() error {
	ve := &core.ValidationError{}

	if len(strings.TrimSpace(m.Name)) < 2 {
		ve.Add("name", MsgNameTooShort)
	}
	if m.Date.IsZero() {
		ve.Add("date", MsgDateRequired)
	}
	if strings.TrimSpace(m.Location) == "" {
		ve.Add("location", MsgLocationRequired)
	}
	if m.Age != nil && (*m.Age < 0 || *m.Age > MaxAge) {
		ve.Add("age", MsgInvalidAge)
	}

	return ve.Err()
}

type Testimonial struct {
	ID           string     `db:"id"`
	Content      string     `db:"content"`
	Author       string     `db:"author"`
	Relationship *string    `db:"relationship"`
	Date         *time.Time `db:"date"`
	IsVerified   bool       `db:"is_verified"`
	MartyrID     *string    `db:"martyr_id"`
	UserID       *string    `db:"user_id"`
	CreatedAt    time.Time  `db:"created_at"`
}

type Source struct {
	ID        string     `db:"id"`
	Name      string     `db:"name"`
	URL       *string    `db:"url"`
	Date      time.Time  `db:"date"`
	Type      SourceType `db:"type"`
	MartyrID  *string    `db:"martyr_id"`
	CreatedAt time.Time  `db:"created_at"`
}

type YearCount struct {
	Year  int `db:"year"  json:"year"`
	Count int `db:"count" json:"count"`
}

type LocationCount struct {
	Location string `db:"location" json:"location"`
	Count    int    `db:"count"    json:"count"`
}

// Stats holds row counts across the memorial tables.
type Stats struct {
	Martyrs       int `db:"martyrs"       json:"martyrs"`
	Users         int `db:"users"         json:"users"`
	Testimonials  int `db:"testimonials"  json:"testimonials"`
	Sources       int `db:"sources"       json:"sources"`
	Contributions int `db:"contributions" json:"contributions"`
}

type ListParams struct {
	Limit  *int
	Offset *int
}
