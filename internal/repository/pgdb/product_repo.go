package pgdb

import (
	"context"
	"fmt"
	"strings"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/internal/repository/pgdb/converter"
	"github.com/AVTech-ve/ecommerce-backend/internal/usecase"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

const productColumns = `id, uuid, brand_id, category_id, warranty_id, name, description,
		active, image_url, model_3d_url, ar_url, technical_specifications, created_at, updated_at`

// Create вставляет товар и возвращает запись с серверными полями.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	model := p.conv.ToModel(product)

	query := `
		INSERT INTO products (
			uuid, brand_id, category_id, warranty_id, name, description,
			image_url, model_3d_url, ar_url, technical_specifications
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + productColumns + `;
	`

	row := q(ctx, p.pool).QueryRow(ctx, query,
		model.UUID, model.BrandID, model.CategoryID, model.WarrantyID,
		model.Name, model.Description, model.ImageURL, model.Model3DURL,
		model.ARURL, model.TechnicalSpecifications,
	)

	created, err := p.scanProduct(row)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return created, nil
}

// Update обновляет изменяемые поля активного товара.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	model := p.conv.ToModel(product)

	query := `
		UPDATE products SET
			brand_id = $2,
			category_id = $3,
			warranty_id = $4,
			name = $5,
			description = $6,
			image_url = $7,
			model_3d_url = $8,
			ar_url = $9,
			technical_specifications = $10,
			updated_at = NOW()
		WHERE id = $1 AND active = true
		RETURNING ` + productColumns + `;
	`

	row := q(ctx, p.pool).QueryRow(ctx, query,
		model.ID, model.BrandID, model.CategoryID, model.WarrantyID,
		model.Name, model.Description, model.ImageURL, model.Model3DURL,
		model.ARURL, model.TechnicalSpecifications,
	)

	updated, err := p.scanProduct(row)
	if err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return updated, nil
}

// Deactivate мягко удаляет товар и возвращает его последнее состояние.
func (p *ProductRepo) Deactivate(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		UPDATE products
		SET active = false, updated_at = NOW()
		WHERE id = $1 AND active = true
		RETURNING ` + productColumns + `;
	`

	row := q(ctx, p.pool).QueryRow(ctx, query, id)

	product, err := p.scanProduct(row)
	if err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return product, nil
}

// GetActiveByID возвращает активный товар по внутреннему идентификатору.
func (p *ProductRepo) GetActiveByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1 AND active = true;
	`

	row := q(ctx, p.pool).QueryRow(ctx, query, id)

	product, err := p.scanProduct(row)
	if err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return product, nil
}

// List возвращает страницу активных товаров с фильтрами по бренду,
// категории и подстроке в имени.
func (p *ProductRepo) List(ctx context.Context, req *usecase.ListProductsReq) ([]usecase.ProductResponse, int64, error) {
	conditions := []string{"pr.active = true"}
	args := make([]any, 0, 5)

	if req.BrandID != nil {
		args = append(args, *req.BrandID)
		conditions = append(conditions, fmt.Sprintf("pr.brand_id = $%d", len(args)))
	}

	if req.Category != "" {
		args = append(args, req.Category)
		conditions = append(conditions, fmt.Sprintf("cat.name = $%d", len(args)))
	}

	if req.Search != "" {
		args = append(args, "%"+req.Search+"%")
		conditions = append(conditions, fmt.Sprintf("pr.name ILIKE $%d", len(args)))
	}

	args = append(args, req.Page.PageSize, req.Page.Offset())

	query := fmt.Sprintf(`
		SELECT
			pr.id, pr.uuid, pr.brand_id, br.name, pr.category_id, COALESCE(cat.name, ''),
			pr.name, pr.description, pr.active, pr.image_url, pr.model_3d_url, pr.ar_url,
			pr.technical_specifications, w.name, pr.created_at, pr.updated_at,
			COUNT(*) OVER() AS total
		FROM products pr
		JOIN brands br ON pr.brand_id = br.id
		LEFT JOIN categories cat ON pr.category_id = cat.id
		LEFT JOIN warranties w ON pr.warranty_id = w.id
		WHERE %s
		ORDER BY pr.id
		LIMIT $%d OFFSET $%d;
	`, strings.Join(conditions, " AND "), len(args)-1, len(args))

	rows, err := q(ctx, p.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var total int64
	result := make([]usecase.ProductResponse, 0)
	for rows.Next() {
		var pr usecase.ProductResponse
		var warranty *string
		if err := rows.Scan(
			&pr.ID, &pr.UUID, &pr.BrandID, &pr.Brand, &pr.CategoryID, &pr.Category,
			&pr.Name, &pr.Description, &pr.Active, &pr.ImageURL, &pr.Model3DURL, &pr.ARURL,
			&pr.TechnicalSpecifications, &warranty, &pr.CreatedAt, &pr.UpdatedAt, &total,
		); err != nil {
			return nil, 0, e.Wrap(whereami.WhereAmI(), err)
		}

		if warranty != nil {
			pr.Warranty = *warranty
		}

		result = append(result, pr)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, total, nil
}

// GetActiveByUUIDs возвращает гидрированные активные товары по множеству UUID.
// Неактивные и отсутствующие UUID молча выпадают из результата; excludeID,
// если задан, дополнительно исключает товар с данным идентификатором.
func (p *ProductRepo) GetActiveByUUIDs(ctx context.Context, uuids []string, excludeID *int64) ([]usecase.ProductResponse, error) {
	if len(uuids) == 0 {
		return []usecase.ProductResponse{}, nil
	}

	query := `
		SELECT
			pr.id, pr.uuid, pr.brand_id, br.name, pr.category_id, COALESCE(cat.name, ''),
			pr.name, pr.description, pr.active, pr.image_url, pr.model_3d_url, pr.ar_url,
			pr.technical_specifications, w.name, pr.created_at, pr.updated_at
		FROM products pr
		JOIN brands br ON pr.brand_id = br.id
		LEFT JOIN categories cat ON pr.category_id = cat.id
		LEFT JOIN warranties w ON pr.warranty_id = w.id
		WHERE pr.uuid = ANY($1)
		  AND pr.active = true
		  AND ($2::bigint IS NULL OR pr.id <> $2);
	`

	rows, err := q(ctx, p.pool).Query(ctx, query, uuids, excludeID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.ProductResponse, 0, len(uuids))
	for rows.Next() {
		var pr usecase.ProductResponse
		var warranty *string
		if err := rows.Scan(
			&pr.ID, &pr.UUID, &pr.BrandID, &pr.Brand, &pr.CategoryID, &pr.Category,
			&pr.Name, &pr.Description, &pr.Active, &pr.ImageURL, &pr.Model3DURL, &pr.ARURL,
			&pr.TechnicalSpecifications, &warranty, &pr.CreatedAt, &pr.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		if warranty != nil {
			pr.Warranty = *warranty
		}

		result = append(result, pr)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (p *ProductRepo) scanProduct(row interface{ Scan(dest ...any) error }) (*domain.Product, error) {
	var model converter.ProductModel
	if err := row.Scan(
		&model.ID, &model.UUID, &model.BrandID, &model.CategoryID, &model.WarrantyID,
		&model.Name, &model.Description, &model.Active, &model.ImageURL,
		&model.Model3DURL, &model.ARURL, &model.TechnicalSpecifications,
		&model.CreatedAt, &model.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return p.conv.ToEntity(&model), nil
}
