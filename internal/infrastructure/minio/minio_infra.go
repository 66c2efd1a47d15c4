package minio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/AVTech-ve/ecommerce-backend/internal/cfg"
	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/internal/infrastructure"
	"github.com/AVTech-ve/ecommerce-backend/internal/usecase"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/AVTech-ve/ecommerce-backend/pkg/jitter"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"

	"github.com/google/uuid"
)

const (
	cleanupTimeout     = 30 * time.Second
	cleanupMaxAttempts = 3
	cleanupBaseDelay   = time.Second
	cleanupMaxDelay    = 8 * time.Second
)

// MinioInfrastructure управляет загрузкой и очисткой изображений товаров в MinIO.
type MinioInfrastructure struct {
	minioRepo         usecase.ImageRepository
	cfg               *cfg.MinIOCfg
	logger            logger.Logger
	shutdownCtx       context.Context
	wg                sync.WaitGroup
	uploadImagesLimit int
}

func NewMinioInfrastructure(minioRepo usecase.ImageRepository, cfg *cfg.MinIOCfg, logger logger.Logger, shutdownCtx context.Context) *MinioInfrastructure {
	return &MinioInfrastructure{
		minioRepo:         minioRepo,
		cfg:               cfg,
		logger:            logger,
		shutdownCtx:       shutdownCtx,
		uploadImagesLimit: cfg.UploadImagesLimit,
	}
}

// UploadImages загружает изображения товара параллельно с ограничением числа
// одновременных операций. Порядок ключей в результате совпадает с порядком
// входных изображений: ключ первого становится image_url товара. Первая
// ошибка отменяет остальные загрузки и запускает фоновую очистку уже
// загруженных объектов.
func (m *MinioInfrastructure) UploadImages(ctx context.Context, req *usecase.UploadImagesReq) (*usecase.UploadImagesRes, error) {
	const op = "MinioInfrastructure.UploadImages"

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		keys     = make([]string, len(req.Images))
		errCh    = make(chan error, len(req.Images))
		sem      = make(chan struct{}, m.uploadImagesLimit)
		uploadWg sync.WaitGroup
		mu       sync.Mutex
	)

	for i, image := range req.Images {
		uploadWg.Add(1)
		go func() {
			defer uploadWg.Done()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
			defer func() { <-sem }()

			key, err := m.uploadOne(ctx, req.Name, image)
			if err != nil {
				errCh <- err
				cancel() // первая ошибка отменяет остальные загрузки
				return
			}

			mu.Lock()
			keys[i] = key
			mu.Unlock()
		}()
	}

	uploadWg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		// Компенсация: фоновое удаление объектов, успевших загрузиться.
		uploaded := make([]string, 0, len(keys))
		for _, key := range keys {
			if key != "" {
				uploaded = append(uploaded, key)
			}
		}
		m.CleanupImages(uploaded)

		return nil, e.Wrap(op, err)
	}

	return usecase.NewUploadImagesRes(keys), nil
}

func (m *MinioInfrastructure) uploadOne(ctx context.Context, productName string, image usecase.ProductImage) (string, error) {
	imageID := uuid.NewString()
	ext, err := infrastructure.GetExtensionFromMIME(image.MimeType)
	if err != nil {
		return "", fmt.Errorf("invalid mime type %s for %s: %w", image.MimeType, image.Name, err)
	}

	objKey := fmt.Sprintf("%s/%s-%s.%s", productName, image.Name, imageID, ext)
	newImage := domain.NewImage(imageID, m.cfg.BucketName, objKey, image.Data, &image.Size, &image.MimeType)

	key, err := m.minioRepo.Upload(ctx, newImage)
	if err != nil {
		return "", fmt.Errorf("upload %s failed: %w", image.Name, err)
	}

	return key, nil
}

// CleanupImages запускает фоновую очистку указанных ключей MinIO.
func (m *MinioInfrastructure) CleanupImages(keys []string) {
	if len(keys) == 0 {
		return
	}
	m.wg.Add(1)
	go m.cleanupUploadedKeys(keys)
}

// cleanupUploadedKeys удаляет объекты с повторными попытками и экспоненциальной
// задержкой. Прерывается при остановке приложения.
func (m *MinioInfrastructure) cleanupUploadedKeys(keys []string) {
	defer m.wg.Done()
	const op = "MinioInfrastructure.cleanupUploadedKeys"
	m.logger.Infof("%s: Cleaning up %d uploaded keys", op, len(keys))

	ctx, cancel := context.WithTimeout(m.shutdownCtx, cleanupTimeout)
	defer cancel()

	for _, key := range keys {
		for attempt := 0; attempt < cleanupMaxAttempts; attempt++ {
			if err := m.minioRepo.Delete(ctx, key); err == nil {
				break
			}

			select {
			case <-ctx.Done():
				m.logger.Warnf("cleanup interrupted by shutdown, key=%v", key)
				return
			default:
			}

			if attempt < cleanupMaxAttempts-1 {
				delay := jitter.ExponentialBackoff(cleanupBaseDelay, cleanupMaxDelay, attempt, jitter.DefaultJitter)
				select {
				case <-time.After(delay):
				case <-ctx.Done():
					m.logger.Warnf("cleanup interrupted by shutdown during backoff, key=%v", key)
					return
				}
			}
		}
	}
}

// WaitForCleanup ожидает завершения всех фоновых задач очистки с учётом таймаута завершения приложения.
func (m *MinioInfrastructure) WaitForCleanup(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("minio cleanup timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}
