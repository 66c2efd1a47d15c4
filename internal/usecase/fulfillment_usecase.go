package usecase

import (
	"context"
	"strings"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
	"github.com/AVTech-ve/ecommerce-backend/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FulfillmentUseCase реализует платежи, доставки и отзывы по заказам.
type FulfillmentUseCase struct {
	orderRepo    OrderRepository
	paymentRepo  PaymentRepository
	deliveryRepo DeliveryRepository
	feedbackRepo FeedbackRepository
	dbPool       transaction.Transactional
	logger       logger.Logger
}

func NewFulfillmentUC(
	orderRepo OrderRepository,
	paymentRepo PaymentRepository,
	deliveryRepo DeliveryRepository,
	feedbackRepo FeedbackRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *FulfillmentUseCase {
	return &FulfillmentUseCase{
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		deliveryRepo: deliveryRepo,
		feedbackRepo: feedbackRepo,
		dbPool:       dbPool,
		logger:       logger,
	}
}

// CreatePayment регистрирует платёж и переводит заказ в статус paid
// в одной транзакции.
func (f *FulfillmentUseCase) CreatePayment(ctx context.Context, req *CreatePaymentReq) (*domain.Payment, error) {
	const op = "FulfillmentUseCase.CreatePayment"

	order, err := f.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if order.UserID != req.UserID {
		return nil, e.Wrap(op, e.ErrForbidden)
	}

	if !order.CanTransitionTo(domain.OrderPaid) {
		return nil, e.Wrap(op, e.ErrInvalidOrderStatus)
	}

	if !req.Amount.Equal(order.TotalAmount) {
		return nil, e.Wrap(op, e.ErrInvalidPrice)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, f.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = tr.ContextWithTx(ctx, tx.Transaction())

	payment, err := f.paymentRepo.Create(ctx, &domain.Payment{
		OrderID:       req.OrderID,
		Amount:        req.Amount,
		Method:        req.Method,
		Status:        domain.PaymentCompleted,
		TransactionID: uuid.NewString(),
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if _, err = f.orderRepo.UpdateStatus(ctx, req.OrderID, domain.OrderPaid); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return payment, nil
}

// GetPayment возвращает платёж по заказу.
func (f *FulfillmentUseCase) GetPayment(ctx context.Context, orderID int64) (*domain.Payment, error) {
	const op = "FulfillmentUseCase.GetPayment"

	payment, err := f.paymentRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return payment, nil
}

// CreateDelivery создаёт доставку для оплаченного заказа.
func (f *FulfillmentUseCase) CreateDelivery(ctx context.Context, req *CreateDeliveryReq) (*domain.Delivery, error) {
	const op = "FulfillmentUseCase.CreateDelivery"

	if strings.TrimSpace(req.Address) == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	order, err := f.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if order.Status != domain.OrderPaid && order.Status != domain.OrderShipped {
		return nil, e.Wrap(op, e.ErrInvalidOrderStatus)
	}

	delivery, err := f.deliveryRepo.Create(ctx, &domain.Delivery{
		OrderID:          req.OrderID,
		Address:          req.Address,
		Status:           domain.DeliveryPending,
		EstimatedArrival: req.EstimatedArrival,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return delivery, nil
}

// GetDelivery возвращает доставку по заказу.
func (f *FulfillmentUseCase) GetDelivery(ctx context.Context, orderID int64) (*domain.Delivery, error) {
	const op = "FulfillmentUseCase.GetDelivery"

	delivery, err := f.deliveryRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return delivery, nil
}

// UpdateDeliveryStatus обновляет статус доставки; переход в delivered
// дополнительно переводит заказ в статус delivered.
func (f *FulfillmentUseCase) UpdateDeliveryStatus(ctx context.Context, orderID int64, status, trackingInfo string) (*domain.Delivery, error) {
	const op = "FulfillmentUseCase.UpdateDeliveryStatus"

	delivery, err := f.deliveryRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, f.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = tr.ContextWithTx(ctx, tx.Transaction())

	delivery, err = f.deliveryRepo.UpdateStatus(ctx, delivery.ID, status, trackingInfo)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if status == domain.DeliveryDelivered {
		order, err := f.orderRepo.GetByID(ctx, orderID)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		if order.CanTransitionTo(domain.OrderDelivered) {
			if _, err = f.orderRepo.UpdateStatus(ctx, orderID, domain.OrderDelivered); err != nil {
				return nil, e.Wrap(op, err)
			}
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return delivery, nil
}

// CreateFeedback создаёт отзыв по доставленному заказу пользователя.
func (f *FulfillmentUseCase) CreateFeedback(ctx context.Context, req *CreateFeedbackReq) (*domain.Feedback, error) {
	const op = "FulfillmentUseCase.CreateFeedback"

	if req.Rating < 1 || req.Rating > 5 {
		return nil, e.Wrap(op, e.ErrInvalidRating)
	}

	order, err := f.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if order.UserID != req.UserID {
		return nil, e.Wrap(op, e.ErrForbidden)
	}

	feedback, err := f.feedbackRepo.Create(ctx, &domain.Feedback{
		OrderID: req.OrderID,
		UserID:  req.UserID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return feedback, nil
}

// ListFeedback возвращает отзывы по заказу.
func (f *FulfillmentUseCase) ListFeedback(ctx context.Context, orderID int64) ([]domain.Feedback, error) {
	const op = "FulfillmentUseCase.ListFeedback"

	feedback, err := f.feedbackRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return feedback, nil
}

// DeleteFeedback удаляет отзыв.
func (f *FulfillmentUseCase) DeleteFeedback(ctx context.Context, id int64) error {
	const op = "FulfillmentUseCase.DeleteFeedback"

	if err := f.feedbackRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
