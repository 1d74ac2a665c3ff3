package productrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/avkuzmin/wbcashback/internal/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func productRows(products ...domain.Product) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{
		"id", "name", "article", "wb_price", "cashback_percent",
		"price", "description", "image", "active", "is_archived",
	})
	for _, p := range products {
		rows.AddRow(p.ID, p.Name, p.Article, p.WBPrice, p.CashbackPercent,
			p.Price, p.Description, p.Image, p.Active, p.IsArchived)
	}
	return rows
}

func TestRepository_FindActive(t *testing.T) {
	repo, mock := NewMock(t)

	products := []domain.Product{
		{ID: 1, Name: "Футболка", WBPrice: 990, CashbackPercent: 50, Active: true},
		{ID: 2, Name: "Кроссовки", WBPrice: 4500, CashbackPercent: 30, Active: true},
	}
	mock.ExpectQuery(regexp.QuoteMeta("WHERE active = TRUE AND is_archived = FALSE")).
		WillReturnRows(productRows(products...))
	mock.ExpectQuery(regexp.QuoteMeta("FROM product_images")).
		WithArgs([]int{1, 2}).
		WillReturnRows(pgxmock.NewRows([]string{"id", "product_id", "image"}).
			AddRow(10, 1, "products/1_a.jpg").
			AddRow(11, 1, "products/1_b.jpg"))

	got, err := repo.FindActive(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Len(t, got[0].Images, 2)
	assert.Equal(t, "products/1_b.jpg", got[0].Images[1].Image)
	assert.Empty(t, got[1].Images)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindActive_Empty(t *testing.T) {
	repo, mock := NewMock(t)

	// пустой каталог не ходит за картинками
	mock.ExpectQuery(regexp.QuoteMeta("WHERE active = TRUE AND is_archived = FALSE")).
		WillReturnRows(productRows())

	got, err := repo.FindActive(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(5).
		WillReturnRows(productRows(domain.Product{ID: 5, Name: "Футболка"}))
	p, err := repo.FindByID(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, "Футболка", p.Name)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(6).
		WillReturnRows(productRows())
	p, err = repo.FindByID(context.Background(), 6)
	assert.NoError(t, err)
	assert.Nil(t, p)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE is_archived = FALSE OR $1")).
		WithArgs(true).
		WillReturnRows(productRows(
			domain.Product{ID: 1, Name: "Футболка"},
			domain.Product{ID: 2, Name: "Кепка", IsArchived: true},
		))

	got, err := repo.FindAll(context.Background(), true)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	product := &domain.Product{Name: "Футболка", Article: "WB-1", WBPrice: 990, CashbackPercent: 50, Price: 490, Active: true}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO products")).
		WithArgs("Футболка", "WB-1", 990.0, 50, 490.0, "", "", true).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))

	assert.NoError(t, repo.Save(context.Background(), product))
	assert.Equal(t, 7, product.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	product := &domain.Product{ID: 7, Name: "Футболка", WBPrice: 990, CashbackPercent: 40}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE products")).
		WithArgs("Футболка", "", 990.0, 40, 0.0, "", "", false, 7).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.Update(context.Background(), product))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE products")).
		WithArgs("Футболка", "", 990.0, 40, 0.0, "", "", false, 7).
		WillReturnError(errors.New("db down"))
	assert.Error(t, repo.Update(context.Background(), product))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetArchived(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("SET is_archived = $1")).
		WithArgs(true, []int{1, 2}).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	assert.NoError(t, repo.SetArchived(context.Background(), []int{1, 2}, true))
	assert.NoError(t, mock.ExpectationsWereMet())
}
