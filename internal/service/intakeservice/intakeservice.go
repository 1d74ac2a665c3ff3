package intakeservice

import (
	"context"
	"io"
	"strings"

	"github.com/avkuzmin/wbcashback/internal/domain"
	"github.com/avkuzmin/wbcashback/internal/metrics"
	"github.com/avkuzmin/wbcashback/pkg/locker"
	"go.uber.org/zap"
)

type OrderRepo interface {
	FindLastByUserAndStatus(ctx context.Context, userID int, status string) (*domain.Order, error)
	UpdateIntake(ctx context.Context, order *domain.Order) error
}

type UserRepo interface {
	FindByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
}

type ProductRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Product, error)
}

// MediaStore persists an accepted photo and returns the stable reference the
// order record keeps. The write must succeed before any status transition.
type MediaStore interface {
	SaveProof(telegramID int64, orderID int, photo io.Reader) (string, error)
	SaveReceipt(telegramID int64, orderID int, photo io.Reader) (string, error)
}

// Service drives an order through the intake states in response to chat
// messages: ordered -> check_wait -> number_wait -> received.
type Service struct {
	orders   OrderRepo
	users    UserRepo
	products ProductRepo
	media    MediaStore
	locks    *locker.KeyedMutex
}

func New(orders OrderRepo, users UserRepo, products ProductRepo, media MediaStore) *Service {
	return &Service{
		orders:   orders,
		users:    users,
		products: products,
		media:    media,
		locks:    locker.New(),
	}
}

type ReplyKind int

const (
	// ReplyNone нет ответа пользователю.
	ReplyNone ReplyKind = iota
	// ReplyNoActiveOrder нет заказа, ожидающего фото.
	ReplyNoActiveOrder
	// ReplyAskReceiptPhoto скрин заказа принят, ждём фото чека.
	ReplyAskReceiptPhoto
	// ReplyAskCheckNumber чек принят, ждём номер чека текстом.
	ReplyAskCheckNumber
	// ReplyReceived заказ собран и отправлен на проверку.
	ReplyReceived
)

type Reply struct {
	Kind        ReplyKind
	ProductName string
}

// HandlePhoto routes an inbound photo to the single order that is waiting
// for one. An order awaiting its receipt takes precedence over an order
// awaiting proof of purchase; at most one order advances per message.
func (s *Service) HandlePhoto(ctx context.Context, telegramID int64, photo io.Reader) (Reply, error) {
	unlock := s.locks.Lock(telegramID)
	defer unlock()

	user, err := s.users.FindByTelegramID(ctx, telegramID)
	if err != nil {
		return Reply{}, err
	}
	if user == nil {
		return Reply{}, nil
	}

	waitingReceipt, err := s.orders.FindLastByUserAndStatus(ctx, user.ID, domain.CheckWaitStatus)
	if err != nil {
		return Reply{}, err
	}
	waitingProof, err := s.orders.FindLastByUserAndStatus(ctx, user.ID, domain.OrderedStatus)
	if err != nil {
		return Reply{}, err
	}

	switch {
	case waitingReceipt != nil:
		path, err := s.media.SaveReceipt(telegramID, waitingReceipt.ID, photo)
		if err != nil {
			zap.L().Error("can't store receipt photo", zap.Int("order_id", waitingReceipt.ID), zap.Error(err))
			return Reply{}, err
		}
		waitingReceipt.ReceiptScreenshot = path
		waitingReceipt.Status = domain.NumberWaitStatus
		if err := s.orders.UpdateIntake(ctx, waitingReceipt); err != nil {
			return Reply{}, err
		}
		metrics.IntakeTransitions.WithLabelValues(domain.NumberWaitStatus).Inc()
		return Reply{Kind: ReplyAskCheckNumber}, nil

	case waitingProof != nil:
		path, err := s.media.SaveProof(telegramID, waitingProof.ID, photo)
		if err != nil {
			zap.L().Error("can't store proof photo", zap.Int("order_id", waitingProof.ID), zap.Error(err))
			return Reply{}, err
		}
		waitingProof.Screenshot = path
		waitingProof.Status = domain.CheckWaitStatus
		if err := s.orders.UpdateIntake(ctx, waitingProof); err != nil {
			return Reply{}, err
		}
		metrics.IntakeTransitions.WithLabelValues(domain.CheckWaitStatus).Inc()
		return Reply{Kind: ReplyAskReceiptPhoto}, nil

	default:
		return Reply{Kind: ReplyNoActiveOrder}, nil
	}
}

// HandleText stores non-command text as the check number of the most recent
// order awaiting one. Without such an order the message is dropped silently.
func (s *Service) HandleText(ctx context.Context, telegramID int64, text string) (Reply, error) {
	if strings.HasPrefix(text, "/") {
		return Reply{}, nil
	}

	unlock := s.locks.Lock(telegramID)
	defer unlock()

	user, err := s.users.FindByTelegramID(ctx, telegramID)
	if err != nil {
		return Reply{}, err
	}
	if user == nil {
		return Reply{}, nil
	}

	order, err := s.orders.FindLastByUserAndStatus(ctx, user.ID, domain.NumberWaitStatus)
	if err != nil {
		return Reply{}, err
	}
	if order == nil {
		return Reply{}, nil
	}

	order.CheckNumber = text
	order.Status = domain.ReceivedStatus
	if err := s.orders.UpdateIntake(ctx, order); err != nil {
		return Reply{}, err
	}
	metrics.IntakeTransitions.WithLabelValues(domain.ReceivedStatus).Inc()

	var productName string
	if product, err := s.products.FindByID(ctx, order.ProductID); err == nil && product != nil {
		productName = product.Name
	}
	return Reply{Kind: ReplyReceived, ProductName: productName}, nil
}
