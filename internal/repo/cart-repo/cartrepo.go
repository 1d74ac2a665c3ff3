package cartrepo

import (
	"context"

	"github.com/avkuzmin/wbcashback/internal/domain"
	"github.com/avkuzmin/wbcashback/internal/pg"
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

// Add is get-or-create: a second add of the same product is a no-op.
func (r *Repository) Add(ctx context.Context, userID, productID int) error {
	query := `
        INSERT INTO cart_items (user_id, product_id)
        VALUES ($1, $2)
        ON CONFLICT (user_id, product_id) DO NOTHING
    `
	_, err := r.db.Exec(ctx, query, userID, productID)
	if err != nil {
		zap.L().Error("can't add cart item", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Remove(ctx context.Context, userID, productID int) error {
	query := `
        DELETE FROM cart_items
        WHERE user_id = $1 AND product_id = $2
    `
	_, err := r.db.Exec(ctx, query, userID, productID)
	if err != nil {
		zap.L().Error("can't remove cart item", zap.Error(err))
		return err
	}
	return nil
}

// FindProducts returns the display fields of everything in the user's cart.
func (r *Repository) FindProducts(ctx context.Context, userID int) ([]domain.Product, error) {
	query := `
        SELECT p.id, p.name, p.price, p.image
        FROM cart_items c
        JOIN products p ON p.id = c.product_id
        WHERE c.user_id = $1
        ORDER BY c.created_at
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get cart items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Image); err != nil {
			zap.L().Error("can't scan cart row", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *Repository) Clear(ctx context.Context, userID int) error {
	query := `
        DELETE FROM cart_items
        WHERE user_id = $1
    `
	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't clear cart", zap.Error(err))
		return err
	}
	return nil
}
