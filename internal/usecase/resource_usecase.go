package usecase

import (
	"context"
	"errors"
	"strconv"

	"go-medical-console/internal/delivery/dto"
	"go-medical-console/internal/delivery/http/middleware"
	"go-medical-console/internal/domain/entity"
	"go-medical-console/internal/domain/repository"
	"go-medical-console/internal/listing"
	"go-medical-console/internal/service"

	"github.com/sirupsen/logrus"
)

var ErrResourceNotFound = errors.New("resource not found")

// ResourceDefinition describes one list screen: which fields the search
// box scans, which dropdown filters exist and how the items are loaded.
type ResourceDefinition[T any] struct {
	Name    string
	Search  []listing.Field[T]
	Filters func(q *dto.ListQuery) []listing.Predicate[T]
	// PerPage is the default client-side page size, 0 for everything.
	PerPage int
	// Load replaces the plain FindAll, to scope the list to the session
	// user or to resolve relations before searching.
	Load func(ctx context.Context) ([]T, error)
	ID   func(item *T) int64
}

type ResourceUsecase[T any] interface {
	List(ctx context.Context, query *dto.ListQuery) (*listing.Page[T], error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, payload interface{}) (*T, error)
	Update(ctx context.Context, id int64, payload interface{}) (*T, error)
	// Delete removes the record and answers with the list fetched again,
	// filters reset.
	Delete(ctx context.Context, id int64) (*listing.Page[T], error)
}

type resourceUsecase[T any] struct {
	log          *logrus.Logger
	repo         repository.ResourceRepository[T]
	auditService service.AuditService
	def          ResourceDefinition[T]
}

func NewResourceUsecase[T any](
	log *logrus.Logger,
	repo repository.ResourceRepository[T],
	auditService service.AuditService,
	def ResourceDefinition[T],
) ResourceUsecase[T] {
	return &resourceUsecase[T]{
		log:          log,
		repo:         repo,
		auditService: auditService,
		def:          def,
	}
}

func (u *resourceUsecase[T]) load(ctx context.Context) ([]T, error) {
	if u.def.Load != nil {
		return u.def.Load(ctx)
	}
	return u.repo.FindAll(ctx)
}

func (u *resourceUsecase[T]) List(ctx context.Context, query *dto.ListQuery) (*listing.Page[T], error) {
	if query == nil {
		query = &dto.ListQuery{Page: 1}
	}

	items, err := u.load(ctx)
	if err != nil {
		u.log.Warnf("Failed to load %s: %+v", u.def.Name, err)
		return nil, err
	}

	view := listing.NewView(items).Search(query.Search, u.def.Search...)
	if u.def.Filters != nil {
		view.Filter(u.def.Filters(query)...)
	}

	perPage := u.def.PerPage
	if query.PerPage != nil {
		perPage = *query.PerPage
	}
	page := view.Page(query.Page, perPage)
	return &page, nil
}

func (u *resourceUsecase[T]) Get(ctx context.Context, id int64) (*T, error) {
	item, err := u.repo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find %s %d: %+v", u.def.Name, id, err)
		return nil, err
	}
	if item == nil {
		return nil, ErrResourceNotFound
	}
	return item, nil
}

func (u *resourceUsecase[T]) Create(ctx context.Context, payload interface{}) (*T, error) {
	created, err := u.repo.Create(ctx, payload)
	if err != nil {
		u.log.Warnf("Failed to create %s: %+v", u.def.Name, err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, actor(ctx), u.def.Name, u.idOf(created), payload)
	return created, nil
}

func (u *resourceUsecase[T]) Update(ctx context.Context, id int64, payload interface{}) (*T, error) {
	updated, err := u.repo.Update(ctx, id, payload)
	if err != nil {
		u.log.Warnf("Failed to update %s %d: %+v", u.def.Name, id, err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, actor(ctx), u.def.Name, strconv.FormatInt(id, 10), payload)
	return updated, nil
}

func (u *resourceUsecase[T]) Delete(ctx context.Context, id int64) (*listing.Page[T], error) {
	if err := u.repo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete %s %d: %+v", u.def.Name, id, err)
		return nil, err
	}
	u.auditService.LogDelete(ctx, actor(ctx), u.def.Name, strconv.FormatInt(id, 10))

	// The record is gone either way; a failed refresh only leaves the
	// screen without a list.
	page, err := u.List(ctx, &dto.ListQuery{Page: 1})
	if err != nil {
		return nil, nil
	}
	return page, nil
}

func (u *resourceUsecase[T]) idOf(item *T) string {
	if item == nil || u.def.ID == nil {
		return ""
	}
	return strconv.FormatInt(u.def.ID(item), 10)
}

func actor(ctx context.Context) *entity.Session {
	session, _ := middleware.GetSessionFromContext(ctx)
	return session
}
