package usecase

import (
	"context"
	"strings"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// PromotionUseCase реализует управление акциями и их товарами.
type PromotionUseCase struct {
	promotionRepo PromotionRepository
	productRepo   ProductRepository
	logger        logger.Logger
}

func NewPromotionUC(promotionRepo PromotionRepository, productRepo ProductRepository, logger logger.Logger) *PromotionUseCase {
	return &PromotionUseCase{
		promotionRepo: promotionRepo,
		productRepo:   productRepo,
		logger:        logger,
	}
}

// CreatePromotion создаёт акцию.
func (p *PromotionUseCase) CreatePromotion(ctx context.Context, req *CreatePromotionReq) (*domain.Promotion, error) {
	const op = "PromotionUseCase.CreatePromotion"

	if err := p.validatePromotion(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	promotion, err := p.promotionRepo.Create(ctx, &domain.Promotion{
		Title:              req.Title,
		Description:        req.Description,
		DiscountPercentage: req.DiscountPercentage,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		Active:             true,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return promotion, nil
}

// UpdatePromotion обновляет параметры акции.
func (p *PromotionUseCase) UpdatePromotion(ctx context.Context, id int64, req *CreatePromotionReq) (*domain.Promotion, error) {
	const op = "PromotionUseCase.UpdatePromotion"

	if err := p.validatePromotion(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	promotion, err := p.promotionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	promotion.Title = req.Title
	promotion.Description = req.Description
	promotion.DiscountPercentage = req.DiscountPercentage
	promotion.StartDate = req.StartDate
	promotion.EndDate = req.EndDate

	promotion, err = p.promotionRepo.Update(ctx, promotion)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return promotion, nil
}

// GetPromotion возвращает акцию по идентификатору.
func (p *PromotionUseCase) GetPromotion(ctx context.Context, id int64) (*domain.Promotion, error) {
	const op = "PromotionUseCase.GetPromotion"

	promotion, err := p.promotionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return promotion, nil
}

// ListPromotions возвращает страницу акций.
func (p *PromotionUseCase) ListPromotions(ctx context.Context, page *PageParams) (*Page[domain.Promotion], error) {
	const op = "PromotionUseCase.ListPromotions"

	page.Normalize()

	promotions, total, err := p.promotionRepo.List(ctx, page)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewPage(promotions, total, page), nil
}

// DeactivatePromotion мягко удаляет акцию.
func (p *PromotionUseCase) DeactivatePromotion(ctx context.Context, id int64) error {
	const op = "PromotionUseCase.DeactivatePromotion"

	if err := p.promotionRepo.Deactivate(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// AddProduct добавляет активный товар в акцию.
func (p *PromotionUseCase) AddProduct(ctx context.Context, promotionID, productID int64) error {
	const op = "PromotionUseCase.AddProduct"

	if _, err := p.promotionRepo.GetByID(ctx, promotionID); err != nil {
		return e.Wrap(op, err)
	}

	if _, err := p.productRepo.GetActiveByID(ctx, productID); err != nil {
		return e.Wrap(op, err)
	}

	if err := p.promotionRepo.AddProduct(ctx, promotionID, productID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// RemoveProduct убирает товар из акции.
func (p *PromotionUseCase) RemoveProduct(ctx context.Context, promotionID, productID int64) error {
	const op = "PromotionUseCase.RemoveProduct"

	if err := p.promotionRepo.RemoveProduct(ctx, promotionID, productID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// ListProducts возвращает товары акции.
func (p *PromotionUseCase) ListProducts(ctx context.Context, promotionID int64) ([]ProductResponse, error) {
	const op = "PromotionUseCase.ListProducts"

	if _, err := p.promotionRepo.GetByID(ctx, promotionID); err != nil {
		return nil, e.Wrap(op, err)
	}

	ids, err := p.promotionRepo.ListProducts(ctx, promotionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	products := make([]ProductResponse, 0, len(ids))
	for _, id := range ids {
		product, err := p.productRepo.GetActiveByID(ctx, id)
		if err != nil {
			// Деактивированные товары выпадают из выдачи акции
			continue
		}

		products = append(products, ProductResponse{
			ID:          product.ID,
			UUID:        product.UUID,
			BrandID:     product.BrandID,
			CategoryID:  product.CategoryID,
			Name:        product.Name,
			Description: product.Description,
			Active:      product.Active,
			ImageURL:    product.ImageURL,
			CreatedAt:   product.CreatedAt,
			UpdatedAt:   product.UpdatedAt,
		})
	}

	return products, nil
}

func (p *PromotionUseCase) validatePromotion(req *CreatePromotionReq) error {
	if strings.TrimSpace(req.Title) == "" {
		return e.ErrMissingFields
	}

	if req.DiscountPercentage.LessThan(decimal.Zero) || req.DiscountPercentage.GreaterThan(decimal.NewFromInt(100)) {
		return e.ErrInvalidDiscount
	}

	if req.EndDate.Before(req.StartDate) {
		return e.ErrMissingFields
	}

	return nil
}
