package repo

import (
	cartrepo "github.com/avkuzmin/wbcashback/internal/repo/cart-repo"
	orderrepo "github.com/avkuzmin/wbcashback/internal/repo/order-repo"
	productrepo "github.com/avkuzmin/wbcashback/internal/repo/product-repo"
	userrepo "github.com/avkuzmin/wbcashback/internal/repo/user-repo"
	withdrawalrepo "github.com/avkuzmin/wbcashback/internal/repo/withdrawal-repo"

	"github.com/avkuzmin/wbcashback/internal/pg"
)

type Repositories struct {
	UserRepo       *userrepo.Repository
	ProductRepo    *productrepo.Repository
	CartRepo       *cartrepo.Repository
	OrderRepo      *orderrepo.Repository
	WithdrawalRepo *withdrawalrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		ProductRepo:    productrepo.New(conn),
		CartRepo:       cartrepo.New(conn),
		OrderRepo:      orderrepo.New(conn, txManager),
		WithdrawalRepo: withdrawalrepo.New(conn),
	}
}
