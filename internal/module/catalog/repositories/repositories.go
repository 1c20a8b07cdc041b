package repositories

import (
	"context"
	"database/sql"
	"time"

	"studio-booking-service/internal/module/catalog/models/entity"
	"studio-booking-service/internal/pkg/errors"
	"studio-booking-service/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

const catalogCacheKey = "catalog:packages"

type repositories struct {
	db          *sqlx.DB
	log         log.Logger
	redisClient *redis.Client
	cacheTTL    time.Duration
}

type Repositories interface {
	// db
	FindActivePackages(ctx context.Context) ([]entity.Package, error)
	FindPackageByID(ctx context.Context, id int64) (entity.Package, error)
	UpsertPackage(ctx context.Context, pkg entity.Package) error
	SoftDeletePackage(ctx context.Context, id int64) error
	// redis
	GetCachedCatalog(ctx context.Context) ([]entity.Package, bool)
	SetCachedCatalog(ctx context.Context, pkgs []entity.Package) error
	InvalidateCatalogCache(ctx context.Context) error
}

func New(db *sqlx.DB, log log.Logger, redisClient *redis.Client, cacheTTL time.Duration) Repositories {
	return &repositories{
		db:          db,
		log:         log,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// FindActivePackages implements Repositories.
func (r *repositories) FindActivePackages(ctx context.Context) ([]entity.Package, error) {
	query := `SELECT * FROM packages WHERE active = true AND deleted_at IS NULL ORDER BY id`
	var pkgs []entity.Package
	err := r.db.SelectContext(ctx, &pkgs, query)
	if err != nil {
		return nil, errors.InternalServerError("error find active packages")
	}
	return pkgs, nil
}

// FindPackageByID implements Repositories.
func (r *repositories) FindPackageByID(ctx context.Context, id int64) (entity.Package, error) {
	query := `SELECT * FROM packages WHERE id = $1 AND deleted_at IS NULL`
	var pkg entity.Package
	err := r.db.GetContext(ctx, &pkg, query, id)
	if err == sql.ErrNoRows {
		return entity.Package{}, errors.NotFound("package not found")
	}
	if err != nil {
		return entity.Package{}, errors.InternalServerError("error find package by id")
	}
	return pkg, nil
}

// UpsertPackage implements Repositories.
func (r *repositories) UpsertPackage(ctx context.Context, pkg entity.Package) error {
	if pkg.ID == 0 {
		_, err := r.db.NamedExecContext(ctx, `
			INSERT INTO packages (name, description, price, duration, cover_image, features, category, package_type, active, created_at)
			VALUES (:name, :description, :price, :duration, :cover_image, :features, :category, :package_type, :active, NOW())
		`, pkg)
		if err != nil {
			return errors.InternalServerError("error insert package")
		}
		return nil
	}

	_, err := r.db.NamedExecContext(ctx, `
		UPDATE packages
		SET name = :name, description = :description, price = :price, duration = :duration,
			cover_image = :cover_image, features = :features, category = :category,
			package_type = :package_type, active = :active, updated_at = NOW()
		WHERE id = :id AND deleted_at IS NULL
	`, pkg)
	if err != nil {
		return errors.InternalServerError("error update package")
	}
	return nil
}

// SoftDeletePackage implements Repositories.
func (r *repositories) SoftDeletePackage(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE packages SET deleted_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return errors.InternalServerError("error delete package")
	}
	return nil
}

// GetCachedCatalog implements Repositories. A cache miss or decode failure
// is reported as absent, never as an error.
func (r *repositories) GetCachedCatalog(ctx context.Context) ([]entity.Package, bool) {
	data, err := r.redisClient.Get(ctx, catalogCacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			r.log.Error(ctx, "error get cached catalog", err)
		}
		return nil, false
	}

	var pkgs []entity.Package
	if err := json.Unmarshal([]byte(data), &pkgs); err != nil {
		r.log.Error(ctx, "error unmarshal cached catalog", err)
		return nil, false
	}
	return pkgs, true
}

// SetCachedCatalog implements Repositories.
func (r *repositories) SetCachedCatalog(ctx context.Context, pkgs []entity.Package) error {
	data, err := json.Marshal(pkgs)
	if err != nil {
		return errors.InternalServerError("error marshal catalog cache")
	}
	if err := r.redisClient.Set(ctx, catalogCacheKey, data, r.cacheTTL).Err(); err != nil {
		return errors.InternalServerError("error set catalog cache")
	}
	return nil
}

// InvalidateCatalogCache implements Repositories.
func (r *repositories) InvalidateCatalogCache(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, catalogCacheKey).Err(); err != nil {
		return errors.InternalServerError("error invalidate catalog cache")
	}
	return nil
}
