package usecase

import (
	"context"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
	"github.com/AVTech-ve/ecommerce-backend/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// OrderUseCase реализует корзину и оформление заказов.
type OrderUseCase struct {
	cartRepo      CartRepository
	orderRepo     OrderRepository
	productRepo   ProductRepository
	inventoryRepo InventoryRepository
	dbPool        transaction.Transactional
	logger        logger.Logger
}

func NewOrderUC(
	cartRepo CartRepository,
	orderRepo OrderRepository,
	productRepo ProductRepository,
	inventoryRepo InventoryRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		cartRepo:      cartRepo,
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		dbPool:        dbPool,
		logger:        logger,
	}
}

// GetCart возвращает активную корзину пользователя, создавая её при отсутствии.
func (o *OrderUseCase) GetCart(ctx context.Context, userID int64) (*domain.ShoppingCart, error) {
	const op = "OrderUseCase.GetCart"

	cart, err := o.cartRepo.GetOrCreateActive(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return cart, nil
}

// AddCartItem добавляет позицию в корзину или увеличивает её количество.
func (o *OrderUseCase) AddCartItem(ctx context.Context, req *AddCartItemReq) (*domain.ShoppingCart, error) {
	const op = "OrderUseCase.AddCartItem"

	if req.Quantity <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}

	// Позиция корзины ссылается только на активный товар
	if _, err := o.productRepo.GetActiveByID(ctx, req.ProductID); err != nil {
		return nil, e.Wrap(op, err)
	}

	cart, err := o.cartRepo.GetOrCreateActive(ctx, req.UserID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if _, err = o.cartRepo.UpsertItem(ctx, cart.ID, req.ProductID, req.Quantity); err != nil {
		return nil, e.Wrap(op, err)
	}

	cart, err = o.cartRepo.GetActiveByUser(ctx, req.UserID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return cart, nil
}

// RemoveCartItem удаляет позицию из активной корзины пользователя.
func (o *OrderUseCase) RemoveCartItem(ctx context.Context, userID, productID int64) error {
	const op = "OrderUseCase.RemoveCartItem"

	cart, err := o.cartRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err := o.cartRepo.RemoveItem(ctx, cart.ID, productID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Checkout оформляет заказ из активной корзины: снимок цен из инвентаря,
// списание остатков и очистка корзины выполняются в одной транзакции.
func (o *OrderUseCase) Checkout(ctx context.Context, req *CheckoutReq) (*domain.Order, error) {
	const op = "OrderUseCase.Checkout"

	cart, err := o.cartRepo.GetActiveByUser(ctx, req.UserID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(cart.Items) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyCart)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = tr.ContextWithTx(ctx, tx.Transaction())

	total := decimal.Zero
	items := make([]domain.OrderItem, 0, len(cart.Items))

	for _, item := range cart.Items {
		var inv *domain.Inventory
		inv, err = o.inventoryRepo.GetByProductID(ctx, item.ProductID)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		if inv.Stock < item.Quantity {
			err = e.ErrInvalidQuantity
			return nil, e.Wrap(op, err)
		}

		if _, err = o.inventoryRepo.AdjustStock(ctx, item.ProductID, -item.Quantity); err != nil {
			return nil, e.Wrap(op, err)
		}

		unitPrice := o.priceFor(inv, req.Currency)
		total = total.Add(unitPrice.Mul(decimal.NewFromInt32(item.Quantity)))

		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
		})
	}

	order, err := o.orderRepo.Create(ctx, &domain.Order{
		UserID:        req.UserID,
		TotalAmount:   total,
		Currency:      req.Currency,
		Status:        domain.OrderPending,
		PaymentMethod: req.PaymentMethod,
		Active:        true,
		Items:         items,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = o.cartRepo.Clear(ctx, cart.ID); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return order, nil
}

// GetOrder возвращает заказ владельцу или администратору.
func (o *OrderUseCase) GetOrder(ctx context.Context, user *domain.User, id int64) (*domain.Order, error) {
	const op = "OrderUseCase.GetOrder"

	order, err := o.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if order.UserID != user.ID && !user.IsAdmin() {
		return nil, e.Wrap(op, e.ErrForbidden)
	}

	return order, nil
}

// ListOrders возвращает страницу заказов пользователя.
func (o *OrderUseCase) ListOrders(ctx context.Context, userID int64, page *PageParams) (*Page[domain.Order], error) {
	const op = "OrderUseCase.ListOrders"

	page.Normalize()

	orders, total, err := o.orderRepo.ListByUser(ctx, userID, page)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewPage(orders, total, page), nil
}

// UpdateOrderStatus переводит заказ в новый статус с проверкой допустимости перехода.
func (o *OrderUseCase) UpdateOrderStatus(ctx context.Context, id int64, status string) (*domain.Order, error) {
	const op = "OrderUseCase.UpdateOrderStatus"

	order, err := o.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !order.CanTransitionTo(status) {
		return nil, e.Wrap(op, e.ErrInvalidOrderStatus)
	}

	order, err = o.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return order, nil
}

// priceFor выбирает цену позиции по валюте заказа, по умолчанию USD.
func (o *OrderUseCase) priceFor(inv *domain.Inventory, currency string) decimal.Decimal {
	if currency == "BS" {
		return inv.PriceBS
	}

	return inv.PriceUSD
}
