package court

import (
	"context"
	"strings"
	"unicode/utf8"
)

type CreateRequest struct {
	Name    string
	Covered bool
}

type UpdateRequest struct {
	Name    *string
	Covered *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Court, error)
	GetByID(ctx context.Context, id int64) (*Court, error)
	List(ctx context.Context, filter Filter) ([]*Court, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Court, error)
	Delete(ctx context.Context, id int64) (*Court, error)
	DeleteByQuery(ctx context.Context, filter Filter) ([]*Court, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func validateFilter(filter Filter) error {
	// An empty name filter would silently match nothing useful.
	if filter.Name != nil && *filter.Name == "" {
		return ErrEmptyNameFilter
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Court, error) {
	if err := validateName(req.Name); err != nil {
		return nil, err
	}

	c := &Court{
		Name:    req.Name,
		Covered: req.Covered,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Court, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Court, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRequest) (*Court, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name == nil && req.Covered == nil {
		return nil, ErrNoChanges
	}

	if req.Name != nil {
		if err := validateName(*req.Name); err != nil {
			return nil, err
		}
		c.Name = *req.Name
	}
	if req.Covered != nil {
		c.Covered = *req.Covered
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id int64) (*Court, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) DeleteByQuery(ctx context.Context, filter Filter) ([]*Court, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	return s.repo.DeleteByQuery(ctx, filter)
}
