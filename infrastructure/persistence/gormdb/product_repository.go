package gormdb

import (
	"context"
	"errors"

	"storefront/domain/catalog"
	"storefront/domain/shared"
	"storefront/infrastructure/persistence"
	"storefront/infrastructure/persistence/gormdb/po"
	"storefront/infrastructure/persistence/retry"
	"storefront/infrastructure/persistence/specification"
	"storefront/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductRepository is the catalog backed by the products table.
type ProductRepository struct {
	db         *gorm.DB
	retry      retry.Config
	translator *specification.ProductTranslator
}

var _ catalog.Repository = (*ProductRepository)(nil)

func NewProductRepository(db *gorm.DB, retryCfg retry.Config) *ProductRepository {
	return &ProductRepository{
		db:         db,
		retry:      retryCfg,
		translator: specification.NewProductTranslator(),
	}
}

func (r *ProductRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (catalog.Product, error) {
	var row po.ProductPO
	err := r.getDB(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return catalog.Product{}, shared.NewNotFoundError("product", "product not found: "+id, catalog.ErrProductNotFound)
	}
	if err != nil {
		return catalog.Product{}, err
	}
	return row.ToDomain(), nil
}

// List pushes spec down to SQL when every part of it translates; otherwise
// it loads the table and filters in memory. Rows are ordered by id.
func (r *ProductRepository) List(ctx context.Context, spec shared.Specification[catalog.Product]) ([]catalog.Product, error) {
	query := r.getDB(ctx).Order("id")
	expr, translated := r.translator.Translate(spec)
	if translated && expr != nil {
		query = query.Where(expr)
	}
	if !translated {
		logger.FromContext(ctx).Debug("Specification not translatable, filtering in memory")
	}

	var rows []po.ProductPO
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]catalog.Product, 0, len(rows))
	for i := range rows {
		p := rows[i].ToDomain()
		if !translated && !shared.Matches(ctx, spec, p) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *ProductRepository) Save(ctx context.Context, p catalog.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	row := po.FromProduct(p)
	return retry.ExecuteWithRetry(ctx, r.retry, func(ctx context.Context) error {
		return r.getDB(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(row).Error
	})
}

// Seed saves products in one transaction. Existing rows with the same id
// are replaced.
func (r *ProductRepository) Seed(ctx context.Context, products []catalog.Product) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := persistence.ContextWithTx(ctx, tx)
		for _, p := range products {
			if err := r.Save(txCtx, p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.Info("Catalog seeded", zap.Int("products", len(products)))
	return nil
}

// Count returns the number of catalog rows.
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.getDB(ctx).Model(&po.ProductPO{}).Count(&n).Error
	return n, err
}
