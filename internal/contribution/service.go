// AngelaMos | 2026
// service.go

package contribution

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"

	"github.com/angelamos/memorial/internal/core"
	"github.com/angelamos/memorial/internal/martyr"
	"github.com/angelamos/memorial/internal/permission"
	"github.com/angelamos/memorial/internal/user"
)

//go:generate moq -out users_mock_test.go . Users
//go:generate moq -out martyrs_mock_test.go . Martyrs

// Users is the slice of the user service the workflow depends on.
type Users interface {
	GetUser(ctx context.Context, id string) (*user.User, error)
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
	FindOrCreateByEmail(ctx context.Context, email, name string) (*user.User, error)
	Authorize(
		ctx context.Context,
		actorID string,
		action permission.Action,
	) (*user.User, error)
}

// Martyrs is the write side of the memorial store used to apply approved
// contributions.
type Martyrs interface {
	GetByID(ctx context.Context, id string) (*martyr.Martyr, error)
	Create(ctx context.Context, m *martyr.Martyr) error
	SetVerified(ctx context.Context, id string, verified bool) error
	SetImage(ctx context.Context, id, imageURL string) error
	CreateTestimonial(ctx context.Context, t *martyr.Testimonial) error
	CreateSource(ctx context.Context, s *martyr.Source) error
}

type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type CacheInvalidator interface {
	Invalidate(ctx context.Context, ids ...string)
}

type Service struct {
	repo        Repository
	users       Users
	martyrs     Martyrs
	tx          TxRunner
	cache       CacheInvalidator
	systemEmail string
	logger      *slog.Logger
	now         func() time.Time
}

func NewService(
	repo Repository,
	users Users,
	martyrs Martyrs,
	tx TxRunner,
	cache CacheInvalidator,
	systemEmail string,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:        repo,
		users:       users,
		martyrs:     martyrs,
		tx:          tx,
		cache:       cache,
		systemEmail: systemEmail,
		logger:      logger,
		now:         time.Now,
	}
}

func runeLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func ValidateSubmit(in SubmitInput) *core.ValidationError {
	ve := &core.ValidationError{}

	if runeLen(in.Name) < 2 {
		ve.Add("name", MsgNameTooShort)
	}
	if !strings.Contains(in.Email, "@") {
		ve.Add("email", MsgInvalidEmail)
	}
	if runeLen(in.Content) < 10 {
		ve.Add("content", MsgContentTooShort)
	}

	return ve
}

// Submit records a general contribution. Anonymous submitters are
// provisioned as placeholder accounts keyed by email.
func (s *Service) Submit(
	ctx context.Context,
	actorID string,
	in SubmitInput,
) (*Contribution, error) {
	if ve := ValidateSubmit(in); ve.HasErrors() {
		return nil, ve
	}

	name := strings.TrimSpace(in.Name)
	email := core.NormalizeEmail(in.Email)
	kind := MapType(in.ContributionType)

	content, err := encodePayload(SubmissionPayload{
		Name:             name,
		Email:            email,
		Relationship:     strings.TrimSpace(in.Relationship),
		Content:          strings.TrimSpace(in.Content),
		URL:              strings.TrimSpace(in.URL),
		ContributionType: in.ContributionType,
	})
	if err != nil {
		return nil, err
	}

	notes := fmt.Sprintf("Contribution submitted by %s (%s)", name, email)
	c := &Contribution{
		Type:     kind,
		Status:   StatusPending,
		Content:  content,
		Notes:    &notes,
		MartyrID: optional(in.MartyrID),
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if c.MartyrID != nil {
			m, err := s.martyrs.GetByID(ctx, *c.MartyrID)
			if err != nil {
				return err
			}
			if m == nil {
				return core.NewValidationError("martyrId", MsgMartyrNotFound)
			}
		}

		submitter, err := s.resolveSubmitter(ctx, actorID, email, name)
		if err != nil {
			return err
		}
		c.UserID = submitter.ID
		c.SubmitterName = submitter.Name
		c.SubmitterEmail = submitter.Email

		return s.repo.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	submittedTotal.WithLabelValues(string(c.Type)).Inc()
	s.logger.InfoContext(ctx, "contribution submitted",
		"id", c.ID,
		"type", c.Type,
		"user_id", c.UserID,
	)

	return c, nil
}

func (s *Service) resolveSubmitter(
	ctx context.Context,
	actorID, email, name string,
) (*user.User, error) {
	if actorID != "" {
		u, err := s.users.GetUser(ctx, actorID)
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf("resolve submitter: %w", core.ErrUnauthorized)
		}
		return u, err
	}

	return s.users.FindOrCreateByEmail(ctx, email, name)
}

type validatedAddition struct {
	data   MartyrData
	gender *martyr.Gender
}

func validateAddMartyr(in AddMartyrInput) (*validatedAddition, *core.ValidationError) {
	ve := &core.ValidationError{}
	out := &validatedAddition{}

	if runeLen(in.Name) < 2 {
		ve.Add("name", MsgNameTooShort)
	}

	if strings.TrimSpace(in.Date) == "" {
		ve.Add("date", martyr.MsgDateRequired)
	} else if date, err := martyr.ParseDate(in.Date); err != nil {
		ve.Add("date", martyr.MsgInvalidDate)
	} else {
		out.data.Date = date
	}

	if strings.TrimSpace(in.Location) == "" {
		ve.Add("location", martyr.MsgLocationRequired)
	}
	if runeLen(in.Description) < 20 {
		ve.Add("description", MsgDescriptionTooShort)
	}
	if runeLen(in.Source) < 10 {
		ve.Add("source", MsgSourceTooShort)
	}

	if age := strings.TrimSpace(in.Age); age != "" {
		n, err := strconv.Atoi(age)
		if err != nil || n < 0 || n > martyr.MaxAge {
			ve.Add("age", martyr.MsgInvalidAge)
		} else {
			out.data.Age = &n
		}
	}

	if email := strings.TrimSpace(in.SubmitterEmail); email != "" && !strings.Contains(email, "@") {
		ve.Add("submitterEmail", MsgInvalidEmail)
	}

	if ve.HasErrors() {
		return nil, ve
	}

	out.data.Name = strings.TrimSpace(in.Name)
	out.data.Location = strings.TrimSpace(in.Location)
	out.data.Description = optional(in.Description)
	out.data.Cause = optional(in.Cause)
	out.data.Occupation = optional(in.Occupation)
	out.data.FamilyStatus = optional(in.FamilyStatus)
	out.data.ImageURL = optional(in.ImageURL)

	if g := strings.TrimSpace(in.Gender); g != "" {
		parsed := martyr.ParseGender(g)
		out.gender = &parsed
		gs := string(parsed)
		out.data.Gender = &gs
	}

	return out, nil
}

func (d MartyrData) toMartyr(gender *martyr.Gender, verified bool) *martyr.Martyr {
	return &martyr.Martyr{
		Name:         d.Name,
		Date:         d.Date,
		Location:     d.Location,
		Cause:        d.Cause,
		Description:  d.Description,
		ImageURL:     d.ImageURL,
		Age:          d.Age,
		Gender:       gender,
		Occupation:   d.Occupation,
		FamilyStatus: d.FamilyStatus,
		IsVerified:   verified,
	}
}

// AddMartyr stores an unverified record and the MARTYR_ADDITION
// contribution that tracks it in one transaction.
func (s *Service) AddMartyr(
	ctx context.Context,
	actorID string,
	in AddMartyrInput,
) (*Contribution, error) {
	valid, ve := validateAddMartyr(in)
	if ve != nil {
		return nil, ve
	}

	source := strings.TrimSpace(in.Source)
	content, err := encodePayload(MartyrAdditionPayload{
		MartyrData:            valid.data,
		Source:                source,
		SubmitterRelationship: optional(in.SubmitterRelationship),
	})
	if err != nil {
		return nil, err
	}

	notes := "New martyr profile submitted. Source: " + source
	c := &Contribution{
		Type:    TypeMartyrAddition,
		Status:  StatusPending,
		Content: content,
		Notes:   &notes,
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		submitter, err := s.additionSubmitter(ctx, actorID, in)
		if err != nil {
			return err
		}

		m := valid.data.toMartyr(valid.gender, false)
		if err := s.martyrs.Create(ctx, m); err != nil {
			return err
		}

		c.UserID = submitter.ID
		c.SubmitterName = submitter.Name
		c.SubmitterEmail = submitter.Email
		c.MartyrID = &m.ID
		c.MartyrName = &m.Name

		return s.repo.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	submittedTotal.WithLabelValues(string(c.Type)).Inc()
	s.logger.InfoContext(ctx, "martyr profile submitted",
		"id", c.ID,
		"martyr_id", *c.MartyrID,
		"user_id", c.UserID,
	)

	return c, nil
}

func (s *Service) additionSubmitter(
	ctx context.Context,
	actorID string,
	in AddMartyrInput,
) (*user.User, error) {
	if actorID != "" || strings.TrimSpace(in.SubmitterEmail) != "" {
		return s.resolveSubmitter(
			ctx,
			actorID,
			core.NormalizeEmail(in.SubmitterEmail),
			strings.TrimSpace(in.SubmitterName),
		)
	}

	system, err := s.users.GetUserByEmail(ctx, s.systemEmail)
	if errors.Is(err, core.ErrNotFound) {
		return nil, ErrSystemAccountMissing
	}
	if err != nil {
		return nil, err
	}

	return system, nil
}

func (s *Service) ListPending(
	ctx context.Context,
	actorID string,
	params ListPendingParams,
) ([]Contribution, int, error) {
	if _, err := s.users.Authorize(ctx, actorID, permission.ViewAllContributions); err != nil {
		return nil, 0, err
	}

	params.Normalize()
	return s.repo.ListPending(ctx, params.PageSize, params.Offset())
}

func (s *Service) ListMine(ctx context.Context, actorID string) ([]Contribution, error) {
	actor, err := s.users.Authorize(ctx, actorID, permission.ViewOwnContributions)
	if err != nil {
		return nil, err
	}

	return s.repo.ListByUser(ctx, actor.ID)
}

// Get returns a contribution to its owner or to a reviewer.
func (s *Service) Get(ctx context.Context, actorID, id string) (*Contribution, error) {
	actor, err := s.users.Authorize(ctx, actorID, permission.ViewOwnContributions)
	if err != nil {
		return nil, err
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.UserID != actor.ID && !actor.Can(permission.ViewAllContributions) {
		return nil, fmt.Errorf("get contribution: %w", core.ErrForbidden)
	}

	return c, nil
}

func (s *Service) Approve(
	ctx context.Context,
	actorID, id string,
	notes *string,
) (*Contribution, error) {
	return s.review(ctx, actorID, id, notes, StatusApproved)
}

func (s *Service) Reject(
	ctx context.Context,
	actorID, id string,
	notes *string,
) (*Contribution, error) {
	return s.review(ctx, actorID, id, notes, StatusRejected)
}

func (s *Service) review(
	ctx context.Context,
	actorID, id string,
	notes *string,
	outcome Status,
) (*Contribution, error) {
	action := permission.ApproveContributions
	if outcome == StatusRejected {
		action = permission.RejectContributions
	}

	actor, err := s.users.Authorize(ctx, actorID, action)
	if err != nil {
		return nil, err
	}

	ctx, span := core.StartSpan(ctx, "contribution.review",
		attribute.String("contribution.id", id),
		attribute.String("contribution.outcome", string(outcome)),
	)
	defer func() { core.EndSpan(span, err) }()

	var touched []string
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		c, err := s.repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if c.Status != StatusPending {
			return ErrAlreadyResolved
		}

		if outcome == StatusApproved {
			touched, err = s.materialize(ctx, c)
			if err != nil {
				return err
			}
		}

		return s.repo.Resolve(ctx, c.ID, outcome, actor.ID, optional(deref(notes)))
	})
	if err != nil {
		return nil, err
	}

	if len(touched) > 0 {
		s.cache.Invalidate(ctx, touched...)
	}

	resolvedTotal.WithLabelValues(string(outcome)).Inc()
	s.logger.InfoContext(ctx, "contribution resolved",
		"id", id,
		"status", outcome,
		"reviewer_id", actor.ID,
	)

	return s.repo.GetByID(ctx, id)
}

// materialize applies an approved contribution to the memorial store and
// returns the ids of the records it changed.
func (s *Service) materialize(ctx context.Context, c *Contribution) ([]string, error) {
	switch c.Type {
	case TypeMartyrAddition:
		return s.applyAddition(ctx, c)

	case TypeTestimonial:
		var p SubmissionPayload
		if err := c.decode(&p); err != nil {
			return nil, err
		}

		created := c.CreatedAt
		userID := c.UserID
		err := s.martyrs.CreateTestimonial(ctx, &martyr.Testimonial{
			Content:      p.Content,
			Author:       p.Name,
			Relationship: optional(p.Relationship),
			Date:         &created,
			IsVerified:   true,
			MartyrID:     c.MartyrID,
			UserID:       &userID,
		})
		if err != nil {
			return nil, err
		}
		return touchedIDs(c.MartyrID), nil

	case TypeDocument:
		var p SubmissionPayload
		if err := c.decode(&p); err != nil {
			return nil, err
		}

		err := s.martyrs.CreateSource(ctx, &martyr.Source{
			Name:     p.Content,
			URL:      optional(p.URL),
			Date:     s.now().UTC(),
			Type:     martyr.SourceOther,
			MartyrID: c.MartyrID,
		})
		if err != nil {
			return nil, err
		}
		return touchedIDs(c.MartyrID), nil

	case TypePhoto:
		var p SubmissionPayload
		if err := c.decode(&p); err != nil {
			return nil, err
		}

		url := strings.TrimSpace(p.URL)
		if c.MartyrID == nil || url == "" {
			return nil, nil
		}
		if err := s.martyrs.SetImage(ctx, *c.MartyrID, url); err != nil {
			return nil, err
		}
		return touchedIDs(c.MartyrID), nil
	}

	return nil, nil
}

func (s *Service) applyAddition(ctx context.Context, c *Contribution) ([]string, error) {
	var p MartyrAdditionPayload
	if err := c.decode(&p); err != nil {
		return nil, err
	}

	var martyrID string
	if c.MartyrID != nil {
		martyrID = *c.MartyrID
		if err := s.martyrs.SetVerified(ctx, martyrID, true); err != nil {
			return nil, err
		}
	} else {
		var gender *martyr.Gender
		if p.MartyrData.Gender != nil {
			g := martyr.ParseGender(*p.MartyrData.Gender)
			gender = &g
		}

		m := p.MartyrData.toMartyr(gender, true)
		if err := s.martyrs.Create(ctx, m); err != nil {
			return nil, err
		}
		if err := s.repo.SetMartyr(ctx, c.ID, m.ID); err != nil {
			return nil, err
		}
		martyrID = m.ID
	}

	if source := strings.TrimSpace(p.Source); source != "" {
		err := s.martyrs.CreateSource(ctx, &martyr.Source{
			Name:     source,
			Date:     s.now().UTC(),
			Type:     martyr.SourceOther,
			MartyrID: &martyrID,
		})
		if err != nil {
			return nil, err
		}
	}

	return []string{martyrID}, nil
}

func (s *Service) StatusCounts(ctx context.Context, actorID string) ([]StatusCount, error) {
	if _, err := s.users.Authorize(ctx, actorID, permission.ViewAnalytics); err != nil {
		return nil, err
	}

	return s.repo.CountByStatus(ctx)
}

func touchedIDs(id *string) []string {
	if id == nil {
		return nil
	}
	return []string{*id}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
