package service

import (
	"github.com/avkuzmin/wbcashback/internal/pg"
	"github.com/avkuzmin/wbcashback/internal/repo"
	"github.com/avkuzmin/wbcashback/internal/service/cartservice"
	"github.com/avkuzmin/wbcashback/internal/service/catalogservice"
	"github.com/avkuzmin/wbcashback/internal/service/intakeservice"
	"github.com/avkuzmin/wbcashback/internal/service/orderservice"
	"github.com/avkuzmin/wbcashback/internal/service/productservice"
	"github.com/avkuzmin/wbcashback/internal/service/reviewservice"
	"github.com/avkuzmin/wbcashback/internal/service/userservice"
	"github.com/avkuzmin/wbcashback/internal/service/withdrawalservice"
)

type Services struct {
	User       *userservice.Service
	Cart       *cartservice.Service
	Catalog    *catalogservice.Service
	Order      *orderservice.Service
	Intake     *intakeservice.Service
	Review     *reviewservice.Service
	Withdrawal *withdrawalservice.Service
	Product    *productservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, notifier orderservice.Notifier, media intakeservice.MediaStore) *Services {
	return &Services{
		User:       userservice.New(repo.UserRepo),
		Cart:       cartservice.New(repo.CartRepo, repo.UserRepo, repo.ProductRepo),
		Catalog:    catalogservice.New(repo.ProductRepo, repo.OrderRepo, repo.UserRepo),
		Order:      orderservice.New(repo.OrderRepo, repo.ProductRepo, repo.CartRepo, repo.UserRepo, notifier),
		Intake:     intakeservice.New(repo.OrderRepo, repo.UserRepo, repo.ProductRepo, media),
		Review:     reviewservice.New(repo.OrderRepo, repo.ProductRepo, repo.UserRepo, txManager),
		Withdrawal: withdrawalservice.New(repo.WithdrawalRepo, repo.UserRepo),
		Product:    productservice.New(repo.ProductRepo),
	}
}
