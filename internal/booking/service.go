package booking

import (
	"context"
	"errors"

	"github.com/matuteb/cancha-rental-backend/internal/court"
	"github.com/matuteb/cancha-rental-backend/internal/pkg/phone"
)

type CreateRequest struct {
	CourtID         int64
	Day             int
	StartHour       int
	DurationMinutes int
	Phone           string
	ContactName     *string
}

type UpdateRequest struct {
	Day             *int
	StartHour       *int
	DurationMinutes *int
	Phone           *string
	ContactName     *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id int64) (*Booking, error)
	GetFullByID(ctx context.Context, id int64) (*FullBooking, error)
	GetByCourt(ctx context.Context, courtID int64) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, error)
	ListFull(ctx context.Context, filter Filter) ([]*FullBooking, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Booking, error)
	Delete(ctx context.Context, id int64) (*Booking, error)
	DeleteByQuery(ctx context.Context, filter Filter) ([]*Booking, error)
}

type service struct {
	repo         Repository
	courtService court.Service
}

func NewService(repo Repository, courtService court.Service) Service {
	return &service{
		repo:         repo,
		courtService: courtService,
	}
}

// validateSchedule checks the candidate time coordinates before any
// conflict query runs.
func validateSchedule(day, startHour, durationMinutes int) error {
	if day < 0 {
		return ErrInvalidDay
	}
	if startHour < 0 || startHour >= 24 {
		return ErrInvalidHour
	}
	if durationMinutes <= 0 || durationMinutes >= MinutesPerDay {
		return ErrInvalidDuration
	}
	return nil
}

// normalizeFilter canonicalizes the phone filter and rejects empty
// name-like filters before they reach the storage layer.
func normalizeFilter(filter Filter) (Filter, error) {
	if filter.ContactName != nil && *filter.ContactName == "" {
		return filter, ErrEmptyContactFilter
	}
	if filter.Phone != nil {
		normalized, err := phone.Normalize(*filter.Phone)
		if err != nil {
			return filter, err
		}
		filter.Phone = &normalized
	}
	return filter, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if err := validateSchedule(req.Day, req.StartHour, req.DurationMinutes); err != nil {
		return nil, err
	}

	if _, err := s.courtService.GetByID(ctx, req.CourtID); err != nil {
		if errors.Is(err, court.ErrNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}

	normalized, err := phone.Normalize(req.Phone)
	if err != nil {
		return nil, err
	}

	conflict, err := s.repo.HasConflict(ctx, req.CourtID, req.Day, req.StartHour, req.DurationMinutes, 0)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrTimeConflict
	}

	b := &Booking{
		CourtID:         req.CourtID,
		Day:             req.Day,
		StartHour:       req.StartHour,
		DurationMinutes: req.DurationMinutes,
		Phone:           normalized,
		ContactName:     req.ContactName,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetFullByID(ctx context.Context, id int64) (*FullBooking, error) {
	return s.repo.GetFullByID(ctx, id)
}

func (s *service) GetByCourt(ctx context.Context, courtID int64) (*Booking, error) {
	return s.repo.GetByCourt(ctx, courtID)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	filter, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

func (s *service) ListFull(ctx context.Context, filter Filter) ([]*FullBooking, error) {
	filter, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}
	return s.repo.ListFull(ctx, filter)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRequest) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Day == nil && req.StartHour == nil && req.DurationMinutes == nil &&
		req.Phone == nil && req.ContactName == nil {
		return nil, ErrNoChanges
	}

	// Merge the provided fields over the stored values, then re-validate
	// the merged schedule against every other booking.
	if req.Day != nil {
		b.Day = *req.Day
	}
	if req.StartHour != nil {
		b.StartHour = *req.StartHour
	}
	if req.DurationMinutes != nil {
		b.DurationMinutes = *req.DurationMinutes
	}

	if err := validateSchedule(b.Day, b.StartHour, b.DurationMinutes); err != nil {
		return nil, err
	}

	conflict, err := s.repo.HasConflict(ctx, b.CourtID, b.Day, b.StartHour, b.DurationMinutes, b.ID)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrTimeConflict
	}

	if req.Phone != nil {
		normalized, err := phone.Normalize(*req.Phone)
		if err != nil {
			return nil, err
		}
		b.Phone = normalized
	}
	if req.ContactName != nil {
		b.ContactName = req.ContactName
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id int64) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) DeleteByQuery(ctx context.Context, filter Filter) ([]*Booking, error) {
	filter, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}
	return s.repo.DeleteByQuery(ctx, filter)
}
