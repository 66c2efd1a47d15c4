package usecase

import (
	"context"
	"strings"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// CatalogUseCase реализует справочники каталога: бренды, категории,
// гарантии и складские остатки.
type CatalogUseCase struct {
	brandRepo     BrandRepository
	categoryRepo  CategoryRepository
	warrantyRepo  WarrantyRepository
	inventoryRepo InventoryRepository
	productRepo   ProductRepository
	logger        logger.Logger
}

func NewCatalogUC(
	brandRepo BrandRepository,
	categoryRepo CategoryRepository,
	warrantyRepo WarrantyRepository,
	inventoryRepo InventoryRepository,
	productRepo ProductRepository,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		brandRepo:     brandRepo,
		categoryRepo:  categoryRepo,
		warrantyRepo:  warrantyRepo,
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
		logger:        logger,
	}
}

// BRANDS

func (c *CatalogUseCase) CreateBrand(ctx context.Context, name string) (*domain.Brand, error) {
	const op = "CatalogUseCase.CreateBrand"

	if strings.TrimSpace(name) == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	brand, err := c.brandRepo.Create(ctx, domain.NewBrand(name))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return brand, nil
}

func (c *CatalogUseCase) UpdateBrand(ctx context.Context, id int64, name string) (*domain.Brand, error) {
	const op = "CatalogUseCase.UpdateBrand"

	if strings.TrimSpace(name) == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	brand, err := c.brandRepo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	brand.Name = name

	brand, err = c.brandRepo.Update(ctx, brand)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return brand, nil
}

func (c *CatalogUseCase) GetBrand(ctx context.Context, id int64) (*domain.Brand, error) {
	const op = "CatalogUseCase.GetBrand"

	brand, err := c.brandRepo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return brand, nil
}

func (c *CatalogUseCase) ListBrands(ctx context.Context, page *PageParams) (*Page[domain.Brand], error) {
	const op = "CatalogUseCase.ListBrands"

	page.Normalize()

	brands, total, err := c.brandRepo.List(ctx, page)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewPage(brands, total, page), nil
}

func (c *CatalogUseCase) DeactivateBrand(ctx context.Context, id int64) error {
	const op = "CatalogUseCase.DeactivateBrand"

	if err := c.brandRepo.Deactivate(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// CATEGORIES

func (c *CatalogUseCase) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	const op = "CatalogUseCase.CreateCategory"

	if strings.TrimSpace(name) == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	category, err := c.categoryRepo.Create(ctx, domain.NewCategory(name))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

func (c *CatalogUseCase) UpdateCategory(ctx context.Context, id int64, name string) (*domain.Category, error) {
	const op = "CatalogUseCase.UpdateCategory"

	if strings.TrimSpace(name) == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	category, err := c.categoryRepo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	category.Name = name

	category, err = c.categoryRepo.Update(ctx, category)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

func (c *CatalogUseCase) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	const op = "CatalogUseCase.GetCategory"

	category, err := c.categoryRepo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

func (c *CatalogUseCase) ListCategories(ctx context.Context, page *PageParams) (*Page[domain.Category], error) {
	const op = "CatalogUseCase.ListCategories"

	page.Normalize()

	categories, total, err := c.categoryRepo.List(ctx, page)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewPage(categories, total, page), nil
}

func (c *CatalogUseCase) DeactivateCategory(ctx context.Context, id int64) error {
	const op = "CatalogUseCase.DeactivateCategory"

	if err := c.categoryRepo.Deactivate(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// WARRANTIES

func (c *CatalogUseCase) CreateWarranty(ctx context.Context, warranty *domain.Warranty) (*domain.Warranty, error) {
	const op = "CatalogUseCase.CreateWarranty"

	if strings.TrimSpace(warranty.Name) == "" || warranty.DurationMonths <= 0 {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	if _, err := c.brandRepo.GetActiveByID(ctx, warranty.BrandID); err != nil {
		return nil, e.Wrap(op, err)
	}

	warranty, err := c.warrantyRepo.Create(ctx, warranty)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return warranty, nil
}

func (c *CatalogUseCase) GetWarranty(ctx context.Context, id int64) (*domain.Warranty, error) {
	const op = "CatalogUseCase.GetWarranty"

	warranty, err := c.warrantyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return warranty, nil
}

func (c *CatalogUseCase) ListWarranties(ctx context.Context, page *PageParams) (*Page[domain.Warranty], error) {
	const op = "CatalogUseCase.ListWarranties"

	page.Normalize()

	warranties, total, err := c.warrantyRepo.List(ctx, page)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewPage(warranties, total, page), nil
}

func (c *CatalogUseCase) DeleteWarranty(ctx context.Context, id int64) error {
	const op = "CatalogUseCase.DeleteWarranty"

	if err := c.warrantyRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// INVENTORY

// UpsertInventory создаёт или обновляет остаток и цены товара.
func (c *CatalogUseCase) UpsertInventory(ctx context.Context, inv *domain.Inventory) (*domain.Inventory, error) {
	const op = "CatalogUseCase.UpsertInventory"

	if inv.Stock < 0 {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}

	if inv.PriceUSD.LessThan(decimal.Zero) || inv.PriceBS.LessThan(decimal.Zero) {
		return nil, e.Wrap(op, e.ErrInvalidPrice)
	}

	if _, err := c.productRepo.GetActiveByID(ctx, inv.ProductID); err != nil {
		return nil, e.Wrap(op, err)
	}

	inv, err := c.inventoryRepo.Upsert(ctx, inv)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return inv, nil
}

func (c *CatalogUseCase) GetInventory(ctx context.Context, productID int64) (*domain.Inventory, error) {
	const op = "CatalogUseCase.GetInventory"

	inv, err := c.inventoryRepo.GetByProductID(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return inv, nil
}
