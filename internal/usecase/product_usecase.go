package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
	"github.com/AVTech-ve/ecommerce-backend/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductUseCase реализует бизнес-логику каталога товаров.
// Запись в реляционное хранилище и upsert в векторный индекс выполняются
// в одной единице работы: сбой синхронизации индекса откатывает транзакцию.
type ProductUseCase struct {
	productRepo   ProductRepository
	brandRepo     BrandRepository
	categoryRepo  CategoryRepository
	warrantyRepo  WarrantyRepository
	dbPool        transaction.Transactional
	embedder      EmbeddingProvider
	embeddingRepo EmbeddingRepository
	imagesInfra   ImagesInfra
	outboxRepo    OutboxRepository
	cacheRepo     CacheRepository
	logger        logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	brandRepo BrandRepository,
	categoryRepo CategoryRepository,
	warrantyRepo WarrantyRepository,
	dbPool transaction.Transactional,
	embedder EmbeddingProvider,
	embeddingRepo EmbeddingRepository,
	imagesInfra ImagesInfra,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:   productRepo,
		brandRepo:     brandRepo,
		categoryRepo:  categoryRepo,
		warrantyRepo:  warrantyRepo,
		dbPool:        dbPool,
		embedder:      embedder,
		embeddingRepo: embeddingRepo,
		imagesInfra:   imagesInfra,
		outboxRepo:    outboxRepo,
		cacheRepo:     cacheRepo,
		logger:        logger,
	}
}

// CreateProduct создаёт товар, синхронизирует векторный индекс и пишет outbox-событие.
func (p *ProductUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (*ProductResponse, error) {
	const op = "ProductUseCase.CreateProduct"

	var err error
	if err = p.validateProduct(req.Name); err != nil {
		return nil, e.Wrap(op, err)
	}

	brand, err := p.brandRepo.GetActiveByID(ctx, req.BrandID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	categoryName, err := p.resolveCategoryName(ctx, req.CategoryID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	warrantyName, err := p.resolveWarrantyName(ctx, req.WarrantyID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var (
		imagesRes *UploadImagesRes
		uploaded  bool
	)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	// Если произошла ошибка, происходит Rollback транзакции и очистка загруженных изображений
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}

			if uploaded && imagesRes != nil {
				p.logger.Warnf(
					"Cleaning up orphaned images after transaction failure. product_name: %s, error: %v",
					req.Name,
					e.Wrap(op, err),
				)

				p.imagesInfra.CleanupImages(imagesRes.ImagesKeys)
			}
		}
	}()
	ctx = tr.ContextWithTx(ctx, tx.Transaction())

	product := domain.NewProduct(uuid.NewString(), req.BrandID, req.CategoryID, req.Name, req.Description)
	product.WarrantyID = req.WarrantyID
	product.Model3DURL = req.Model3DURL
	product.ARURL = req.ARURL
	product.TechnicalSpecifications = req.TechnicalSpecifications

	// Загрузка изображений в MinIO до вставки строки: ключ первого
	// изображения становится image_url товара.
	if len(req.Images) > 0 {
		imagesRes, err = p.imagesInfra.UploadImages(ctx, NewUploadImagesReq(req.Name, req.Images))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		uploaded = true
		product.ImageURL = imagesRes.ImagesKeys[0]
	}

	product, err = p.productRepo.Create(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Синхронизация векторного индекса внутри транзакции:
	// сбой провайдера или индекса откатывает создание товара.
	if err = p.syncProductIndex(ctx, product, brand.Name, categoryName); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = p.writeProductEvent(ctx, ProductCreated, product); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidateCache(ctx, product.ID)

	return p.toResponse(product, brand.Name, categoryName, warrantyName), nil
}

// UpdateProduct обновляет товар и пересчитывает его вектор в той же единице работы.
func (p *ProductUseCase) UpdateProduct(ctx context.Context, req *UpdateProductReq) (*ProductResponse, error) {
	const op = "ProductUseCase.UpdateProduct"

	var err error
	if err = p.validateProduct(req.Name); err != nil {
		return nil, e.Wrap(op, err)
	}

	current, err := p.productRepo.GetActiveByID(ctx, req.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	brand, err := p.brandRepo.GetActiveByID(ctx, req.BrandID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	categoryName, err := p.resolveCategoryName(ctx, req.CategoryID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	warrantyName, err := p.resolveWarrantyName(ctx, req.WarrantyID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = tr.ContextWithTx(ctx, tx.Transaction())

	current.BrandID = req.BrandID
	current.CategoryID = req.CategoryID
	current.WarrantyID = req.WarrantyID
	current.Name = req.Name
	current.Description = req.Description
	current.Model3DURL = req.Model3DURL
	current.ARURL = req.ARURL
	current.TechnicalSpecifications = req.TechnicalSpecifications

	product, err := p.productRepo.Update(ctx, current)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Upsert перезаписывает запись индекса по UUID — last write wins.
	if err = p.syncProductIndex(ctx, product, brand.Name, categoryName); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = p.writeProductEvent(ctx, ProductUpdated, product); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidateCache(ctx, product.ID)

	return p.toResponse(product, brand.Name, categoryName, warrantyName), nil
}

// DeleteProduct мягко удаляет товар и убирает его вектор из индекса,
// чтобы неактивные записи не копились и не просачивались в keyword-поиск.
func (p *ProductUseCase) DeleteProduct(ctx context.Context, id int64) error {
	const op = "ProductUseCase.DeleteProduct"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = tr.ContextWithTx(ctx, tx.Transaction())

	product, err := p.productRepo.Deactivate(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err = p.embeddingRepo.Delete(ctx, []string{product.UUID}); err != nil {
		return e.Wrap(op, err)
	}

	if err = p.writeProductEvent(ctx, ProductDeactivated, product); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	p.invalidateCache(ctx, product.ID)

	return nil
}

// GetProduct возвращает активный товар, используя кэш как look-aside.
func (p *ProductUseCase) GetProduct(ctx context.Context, id int64) (*ProductResponse, error) {
	const op = "ProductUseCase.GetProduct"

	cached, err := p.cacheRepo.GetProducts(ctx, []int64{id})
	if err == nil {
		if product, ok := cached[id]; ok {
			return &product, nil
		}
	}

	product, err := p.getProductFromDB(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Фоновое добавление товара в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := p.cacheRepo.SetProducts(bgCtx, []ProductResponse{*product}); err != nil {
			p.logger.Warnf("Failed to cache product in background: %v", e.Wrap(op, err))
		}
	}()

	return product, nil
}

// ListProducts возвращает страницу активных товаров каталога.
func (p *ProductUseCase) ListProducts(ctx context.Context, req *ListProductsReq) (*Page[ProductResponse], error) {
	const op = "ProductUseCase.ListProducts"

	req.Page.Normalize()

	items, total, err := p.productRepo.List(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewPage(items, total, &req.Page), nil
}

// syncProductIndex выполняет индексацию товара: текст -> вектор -> upsert по UUID.
func (p *ProductUseCase) syncProductIndex(ctx context.Context, product *domain.Product, brandName, categoryName string) error {
	text := product.EmbeddingText()
	if strings.TrimSpace(text) == "" {
		return e.ErrEmptyEmbeddingText
	}

	vector, err := p.embedder.Embed(ctx, text)
	if err != nil {
		return e.Wrap("embed product text", err)
	}

	if len(vector) == 0 {
		return e.ErrVectorEmbeddingEmpty
	}

	payload := domain.NewProductPayload(brandName, categoryName, text, product.TechnicalSpecifications)
	embedding := domain.NewEmbedding(product.UUID, vector, payload)

	return p.embeddingRepo.Upsert(ctx, []domain.Embedding{*embedding})
}

// writeProductEvent пишет outbox-событие изменения товара в текущей транзакции.
func (p *ProductUseCase) writeProductEvent(ctx context.Context, eventType OutboxEventType, product *domain.Product) error {
	eventID := uuid.NewString()
	payload, err := json.Marshal(&ProductEventPayload{
		EventID:     eventID,
		EventType:   eventType,
		ProductID:   product.ID,
		ProductUUID: product.UUID,
		OccurredAt:  time.Now().UTC().UnixNano(),
	})
	if err != nil {
		return err
	}

	_, err = p.outboxRepo.Create(ctx, &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		ProductID: product.ID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	})

	return err
}

func (p *ProductUseCase) getProductFromDB(ctx context.Context, id int64) (*ProductResponse, error) {
	product, err := p.productRepo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}

	brand, err := p.brandRepo.GetActiveByID(ctx, product.BrandID)
	if err != nil {
		return nil, err
	}

	categoryName, err := p.resolveCategoryName(ctx, product.CategoryID)
	if err != nil {
		return nil, err
	}

	warrantyName, err := p.resolveWarrantyName(ctx, product.WarrantyID)
	if err != nil {
		return nil, err
	}

	return p.toResponse(product, brand.Name, categoryName, warrantyName), nil
}

func (p *ProductUseCase) resolveCategoryName(ctx context.Context, categoryID *int64) (string, error) {
	if categoryID == nil {
		return "", nil
	}

	category, err := p.categoryRepo.GetActiveByID(ctx, *categoryID)
	if err != nil {
		return "", err
	}

	return category.Name, nil
}

func (p *ProductUseCase) resolveWarrantyName(ctx context.Context, warrantyID *int64) (string, error) {
	if warrantyID == nil {
		return "", nil
	}

	warranty, err := p.warrantyRepo.GetByID(ctx, *warrantyID)
	if err != nil {
		return "", err
	}

	return warranty.Name, nil
}

// invalidateCache удаляет устаревшие данные товара из кэша, ошибки не фатальны.
func (p *ProductUseCase) invalidateCache(ctx context.Context, id int64) {
	if err := p.cacheRepo.DeleteProducts(ctx, []int64{id}); err != nil {
		p.logger.Warnf("Failed to invalidate product cache: %v", err)
	}
}

func (p *ProductUseCase) toResponse(product *domain.Product, brandName, categoryName, warrantyName string) *ProductResponse {
	return &ProductResponse{
		ID:                      product.ID,
		UUID:                    product.UUID,
		BrandID:                 product.BrandID,
		Brand:                   brandName,
		CategoryID:              product.CategoryID,
		Category:                categoryName,
		Name:                    product.Name,
		Description:             product.Description,
		Active:                  product.Active,
		ImageURL:                product.ImageURL,
		Model3DURL:              product.Model3DURL,
		ARURL:                   product.ARURL,
		TechnicalSpecifications: product.TechnicalSpecifications,
		Warranty:                warrantyName,
		CreatedAt:               product.CreatedAt,
		UpdatedAt:               product.UpdatedAt,
	}
}

// validateProduct проверяет корректность входных данных товара.
func (p *ProductUseCase) validateProduct(name string) error {
	if strings.TrimSpace(name) == "" {
		return e.ErrProductNameRequired
	}

	return nil
}
