package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/avkuzmin/wbcashback/internal/domain"
	"github.com/avkuzmin/wbcashback/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const orderColumns = "id, user_id, product_id, status, screenshot, receipt_screenshot, check_number, created_at, is_archived"

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.UserID, &o.ProductID, &o.Status, &o.Screenshot,
		&o.ReceiptScreenshot, &o.CheckNumber, &o.CreatedAt, &o.IsArchived)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateIfAbsent inserts a new order in the initial status unless the
// (user, product) pair already has one. Concurrent duplicate attempts
// converge on the unique index: exactly one insert wins, the rest see
// created=false.
func (r *Repository) CreateIfAbsent(ctx context.Context, userID, productID int) (*domain.Order, bool, error) {
	query := `
        INSERT INTO orders (user_id, product_id, status)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, product_id) DO NOTHING
        RETURNING ` + orderColumns
	order, err := scanOrder(r.db.QueryRow(ctx, query, userID, productID, domain.OrderedStatus))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		zap.L().Error("can't create order", zap.Error(err))
		return nil, false, err
	}
	return order, true, nil
}

// FindLastByUserAndStatus returns the most recently created order of the user
// in the given status. Highest id wins the tie, matching creation order.
func (r *Repository) FindLastByUserAndStatus(ctx context.Context, userID int, status string) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE user_id = $1 AND status = $2
        ORDER BY id DESC
        LIMIT 1
    `
	order, err := scanOrder(r.db.QueryRow(ctx, query, userID, status))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order by status", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	return r.collect(ctx, query, userID)
}

func (r *Repository) FindByIDs(ctx context.Context, ids []int) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = ANY($1)
        ORDER BY id
    `
	return r.collect(ctx, query, ids)
}

func (r *Repository) FindByStatus(ctx context.Context, status string, includeArchived bool) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE status = $1 AND (is_archived = FALSE OR $2)
        ORDER BY created_at DESC
    `
	return r.collect(ctx, query, status, includeArchived)
}

func (r *Repository) collect(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

func (r *Repository) FindProductIDsByUser(ctx context.Context, userID int) ([]int, error) {
	query := `
        SELECT product_id
        FROM orders
        WHERE user_id = $1
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get ordered product ids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan product id row", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// UpdateIntake persists one intake transition: status plus whatever
// attachment or check number the step collected.
func (r *Repository) UpdateIntake(ctx context.Context, order *domain.Order) error {
	query := `
        UPDATE orders
        SET status = $1, screenshot = $2, receipt_screenshot = $3, check_number = $4
        WHERE id = $5
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, order.Status, order.Screenshot,
			order.ReceiptScreenshot, order.CheckNumber, order.ID)
		if err != nil {
			zap.L().Error("failed to update order intake", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, ids []int, status string) error {
	query := `
        UPDATE orders
        SET status = $1
        WHERE id = ANY($2)
    `
	_, err := r.db.Exec(ctx, query, status, ids)
	if err != nil {
		zap.L().Error("failed to update order status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetArchived(ctx context.Context, ids []int, archived bool) error {
	query := `
        UPDATE orders
        SET is_archived = $1
        WHERE id = ANY($2)
    `
	_, err := r.db.Exec(ctx, query, archived, ids)
	if err != nil {
		zap.L().Error("failed to archive orders", zap.Error(err))
		return err
	}
	return nil
}

// StaleIntake is a reminder projection: an order stuck mid-intake joined with
// the fields needed to address the nudge.
type StaleIntake struct {
	OrderID     int
	Status      string
	TelegramID  int64
	ProductName string
}

func (r *Repository) FindStaleIntake(ctx context.Context, olderThan time.Time) ([]StaleIntake, error) {
	query := `
        SELECT o.id, o.status, u.telegram_id, p.name
        FROM orders o
        JOIN users u ON u.id = o.user_id
        JOIN products p ON p.id = o.product_id
        WHERE o.status IN ($1, $2, $3)
          AND o.created_at < $4
          AND o.reminder_sent = FALSE
        ORDER BY o.id
    `
	rows, err := r.db.Query(ctx, query, domain.OrderedStatus, domain.CheckWaitStatus,
		domain.NumberWaitStatus, olderThan)
	if err != nil {
		zap.L().Error("can't get stale intake orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var stale []StaleIntake
	for rows.Next() {
		var s StaleIntake
		if err := rows.Scan(&s.OrderID, &s.Status, &s.TelegramID, &s.ProductName); err != nil {
			zap.L().Error("can't scan stale intake row", zap.Error(err))
			return nil, err
		}
		stale = append(stale, s)
	}
	return stale, nil
}

func (r *Repository) MarkReminded(ctx context.Context, ids []int) error {
	query := `
        UPDATE orders
        SET reminder_sent = TRUE
        WHERE id = ANY($1)
    `
	_, err := r.db.Exec(ctx, query, ids)
	if err != nil {
		zap.L().Error("failed to mark orders reminded", zap.Error(err))
		return err
	}
	return nil
}
