package productrepo

import (
	"context"
	"errors"

	"github.com/avkuzmin/wbcashback/internal/domain"
	"github.com/avkuzmin/wbcashback/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const productColumns = "id, name, article, wb_price, cashback_percent, price, description, image, active, is_archived"

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Article, &p.WBPrice, &p.CashbackPercent,
		&p.Price, &p.Description, &p.Image, &p.Active, &p.IsArchived)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) collect(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			zap.L().Error("can't scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, *p)
	}
	return products, nil
}

func (r *Repository) FindActive(ctx context.Context) ([]domain.Product, error) {
	query := `
        SELECT ` + productColumns + `
        FROM products
        WHERE active = TRUE AND is_archived = FALSE
        ORDER BY id
    `
	products, err := r.collect(ctx, query)
	if err != nil {
		return nil, err
	}
	if err := r.loadImages(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *Repository) loadImages(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}
	ids := make([]int, 0, len(products))
	index := make(map[int]int, len(products))
	for i, p := range products {
		ids = append(ids, p.ID)
		index[p.ID] = i
	}

	query := `
        SELECT id, product_id, image
        FROM product_images
        WHERE product_id = ANY($1)
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		zap.L().Error("can't get product images", zap.Error(err))
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var img domain.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.Image); err != nil {
			zap.L().Error("can't scan product image row", zap.Error(err))
			return err
		}
		if i, ok := index[img.ProductID]; ok {
			products[i].Images = append(products[i].Images, img)
		}
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	query := `
        SELECT ` + productColumns + `
        FROM products
        WHERE id = $1
    `
	p, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find product", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) FindByIDs(ctx context.Context, ids []int) ([]domain.Product, error) {
	query := `
        SELECT ` + productColumns + `
        FROM products
        WHERE id = ANY($1)
        ORDER BY id
    `
	return r.collect(ctx, query, ids)
}

func (r *Repository) FindAll(ctx context.Context, includeArchived bool) ([]domain.Product, error) {
	query := `
        SELECT ` + productColumns + `
        FROM products
        WHERE is_archived = FALSE OR $1
        ORDER BY id
    `
	return r.collect(ctx, query, includeArchived)
}

func (r *Repository) Save(ctx context.Context, product *domain.Product) error {
	query := `
        INSERT INTO products (name, article, wb_price, cashback_percent, price, description, image, active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, product.Name, product.Article, product.WBPrice,
		product.CashbackPercent, product.Price, product.Description, product.Image, product.Active).
		Scan(&product.ID)
	if err != nil {
		zap.L().Error("can't save product", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, product *domain.Product) error {
	query := `
        UPDATE products
        SET name = $1, article = $2, wb_price = $3, cashback_percent = $4,
            price = $5, description = $6, image = $7, active = $8
        WHERE id = $9
    `
	_, err := r.db.Exec(ctx, query, product.Name, product.Article, product.WBPrice,
		product.CashbackPercent, product.Price, product.Description, product.Image,
		product.Active, product.ID)
	if err != nil {
		zap.L().Error("can't update product", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetArchived(ctx context.Context, ids []int, archived bool) error {
	query := `
        UPDATE products
        SET is_archived = $1
        WHERE id = ANY($2)
    `
	_, err := r.db.Exec(ctx, query, archived, ids)
	if err != nil {
		zap.L().Error("can't archive products", zap.Error(err))
		return err
	}
	return nil
}
