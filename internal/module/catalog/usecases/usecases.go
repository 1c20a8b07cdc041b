package usecases

import (
	"context"
	"strings"

	"studio-booking-service/internal/module/catalog/models/entity"
	"studio-booking-service/internal/module/catalog/models/request"
	"studio-booking-service/internal/module/catalog/models/response"
	"studio-booking-service/internal/module/catalog/repositories"
	"studio-booking-service/internal/pkg/errors"
	"studio-booking-service/internal/pkg/log"
)

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
}

type Usecase interface {
	ListPackages(ctx context.Context, eventType string) (response.PackageList, error)
	GetPackage(ctx context.Context, id int64) (response.Package, error)
	UpsertPackage(ctx context.Context, id int64, payload *request.UpsertPackage) error
	DeletePackage(ctx context.Context, id int64) error
}

func New(repo repositories.Repositories, log log.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

// MatchPackages filters the catalog by event type. The "other" token is a
// reserved literal meaning "no filter"; any other value matches category
// case-insensitively.
func MatchPackages(pkgs []entity.Package, eventType string) []entity.Package {
	if eventType == "" || eventType == entity.EventTypeOther {
		return pkgs
	}

	matched := make([]entity.Package, 0, len(pkgs))
	for _, pkg := range pkgs {
		if strings.EqualFold(pkg.Category, eventType) {
			matched = append(matched, pkg)
		}
	}
	return matched
}

func (u *usecase) ListPackages(ctx context.Context, eventType string) (response.PackageList, error) {
	pkgs, err := u.loadCatalog(ctx)
	if err != nil {
		return response.PackageList{}, err
	}

	matched := MatchPackages(pkgs, eventType)

	// An empty match must never dead-end the caller: fall back to the
	// full catalog and mark the response accordingly.
	fallback := false
	if len(matched) == 0 && len(pkgs) > 0 {
		matched = pkgs
		fallback = true
	}

	return response.PackageList{
		Packages: toResponses(matched),
		Fallback: fallback,
	}, nil
}

func (u *usecase) GetPackage(ctx context.Context, id int64) (response.Package, error) {
	pkg, err := u.repo.FindPackageByID(ctx, id)
	if err != nil {
		return response.Package{}, err
	}
	return toResponse(pkg), nil
}

func (u *usecase) UpsertPackage(ctx context.Context, id int64, payload *request.UpsertPackage) error {
	if !entity.ValidEventType(payload.Category) {
		return errors.BadRequest("unknown package category")
	}

	pkg := entity.Package{
		ID:          id,
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		Duration:    payload.Duration,
		CoverImage:  payload.CoverImage,
		Features:    payload.Features,
		Category:    strings.ToLower(payload.Category),
		PackageType: payload.PackageType,
		Active:      payload.Active,
	}

	if err := u.repo.UpsertPackage(ctx, pkg); err != nil {
		return err
	}

	return u.repo.InvalidateCatalogCache(ctx)
}

func (u *usecase) DeletePackage(ctx context.Context, id int64) error {
	if err := u.repo.SoftDeletePackage(ctx, id); err != nil {
		return err
	}
	return u.repo.InvalidateCatalogCache(ctx)
}

func (u *usecase) loadCatalog(ctx context.Context) ([]entity.Package, error) {
	if cached, ok := u.repo.GetCachedCatalog(ctx); ok {
		return cached, nil
	}

	pkgs, err := u.repo.FindActivePackages(ctx)
	if err != nil {
		return nil, err
	}

	if err := u.repo.SetCachedCatalog(ctx, pkgs); err != nil {
		// stale cache is tolerable, a failed fill is not fatal
		u.log.Error(ctx, "error fill catalog cache", err)
	}

	return pkgs, nil
}

func toResponses(pkgs []entity.Package) []response.Package {
	out := make([]response.Package, 0, len(pkgs))
	for _, pkg := range pkgs {
		out = append(out, toResponse(pkg))
	}
	return out
}

func toResponse(pkg entity.Package) response.Package {
	return response.Package{
		ID:          pkg.ID,
		Name:        pkg.Name,
		Description: pkg.Description,
		Price:       pkg.Price,
		Duration:    pkg.Duration,
		CoverImage:  pkg.CoverImage,
		Features:    pkg.Features,
		Category:    pkg.Category,
		PackageType: pkg.PackageType,
	}
}
