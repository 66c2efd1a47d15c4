package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/AVTech-ve/ecommerce-backend/internal/cfg"
	v1Http "github.com/AVTech-ve/ecommerce-backend/internal/delivery/v1/http"
	"github.com/AVTech-ve/ecommerce-backend/internal/infrastructure/kafka"
	minioInfra "github.com/AVTech-ve/ecommerce-backend/internal/infrastructure/minio"
	"github.com/AVTech-ve/ecommerce-backend/internal/infrastructure/openai"
	s3Repo "github.com/AVTech-ve/ecommerce-backend/internal/repository/minio"
	"github.com/AVTech-ve/ecommerce-backend/internal/repository/pgdb"
	pgdbConv "github.com/AVTech-ve/ecommerce-backend/internal/repository/pgdb/converter/generated"
	qdrantRepo "github.com/AVTech-ve/ecommerce-backend/internal/repository/qdrant"
	"github.com/AVTech-ve/ecommerce-backend/internal/repository/redis"
	redisConv "github.com/AVTech-ve/ecommerce-backend/internal/repository/redis/converter/generated"
	"github.com/AVTech-ve/ecommerce-backend/internal/usecase"
	"github.com/AVTech-ve/ecommerce-backend/pkg/clients"
	"github.com/AVTech-ve/ecommerce-backend/pkg/closer"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
	"github.com/AVTech-ve/ecommerce-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	clientInitTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
	topicInitTimeout  = 10 * time.Second
)

// App собирает зависимости приложения и управляет их жизненным циклом.
// Порядок закрытия обратен порядку инициализации (LIFO через closer).
type App struct {
	cfg    *config.Config
	logger logger.Logger

	httpSrv      *v1Http.Server
	outboxWorker *kafka.OutboxWorker
	closer       *closer.Closer

	workerCancel context.CancelFunc
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(0)

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add("postgres pool", func(_ context.Context) error {
		db.Close()
		return nil
	})

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), clientInitTimeout)
	defer minioCancel()
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	qdrantClient, err := clients.NewQdrantClient(cfg.Qdrant)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add("qdrant client", func(_ context.Context) error {
		return qdrantClient.Client.Close()
	})

	qdrantCtx, qdrantCancel := context.WithTimeout(context.Background(), clientInitTimeout)
	defer qdrantCancel()
	if err := clients.EnsureCollection(qdrantCtx, qdrantClient); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), clientInitTimeout)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add("redis client", func(_ context.Context) error {
		return redisClient.Client.Close()
	})

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := producer.EnsureTopic(topicInitTimeout); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add("kafka producer", func(_ context.Context) error {
		return producer.Close()
	})

	// Репозитории
	prConv := &pgdbConv.ProductConverterImpl{}
	brandConv := &pgdbConv.BrandConverterImpl{}
	catConv := &pgdbConv.CategoryConverterImpl{}
	outboxConv := &pgdbConv.OutboxEventConverterImpl{}
	redisProdConv := &redisConv.ProductConverterImpl{}

	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	brandRepo := pgdb.NewBrandRepo(db.Pool, brandConv)
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, catConv)
	warrantyRepo := pgdb.NewWarrantyRepo(db.Pool)
	inventoryRepo := pgdb.NewInventoryRepo(db.Pool)
	userRepo := pgdb.NewUserRepo(db.Pool)
	cartRepo := pgdb.NewCartRepo(db.Pool)
	orderRepo := pgdb.NewOrderRepo(db.Pool)
	paymentRepo := pgdb.NewPaymentRepo(db.Pool)
	deliveryRepo := pgdb.NewDeliveryRepo(db.Pool)
	feedbackRepo := pgdb.NewFeedbackRepo(db.Pool)
	promotionRepo := pgdb.NewPromotionRepo(db.Pool)
	chatRepo := pgdb.NewChatRepo(db.Pool)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)
	embRepo := qdrantRepo.NewEmbeddingRepo(qdrantClient.Client, cfg.Qdrant)
	cacheRepo := redis.NewCacheRepo(redisClient, redisProdConv, cfg.Redis, log)

	// Инфраструктура
	workerCtx, workerCancel := context.WithCancel(context.Background())

	embedder := openai.NewEmbeddingService(cfg.OpenAI, log)
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, log, workerCtx)
	cl.Add("image cleanup", func(ctx context.Context) error {
		return imagesInfra.WaitForCleanup(ctx)
	})

	outboxWorker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)
	cl.Add("outbox worker", func(_ context.Context) error {
		outboxWorker.Stop()
		return nil
	})

	// Usecases
	productUC := usecase.NewProductUC(
		productRepo,
		brandRepo,
		categoryRepo,
		warrantyRepo,
		db.Pool,
		embedder,
		embRepo,
		imagesInfra,
		outboxRepo,
		cacheRepo,
		log,
	)
	recommendationUC := usecase.NewRecommendationUC(productRepo, embedder, embRepo, log)
	authUC := usecase.NewAuthUC(userRepo, cfg.Auth, log)
	catalogUC := usecase.NewCatalogUC(brandRepo, categoryRepo, warrantyRepo, inventoryRepo, productRepo, log)
	orderUC := usecase.NewOrderUC(cartRepo, orderRepo, productRepo, inventoryRepo, db.Pool, log)
	fulfillmentUC := usecase.NewFulfillmentUC(orderRepo, paymentRepo, deliveryRepo, feedbackRepo, db.Pool, log)
	promotionUC := usecase.NewPromotionUC(promotionRepo, productRepo, log)
	chatbotUC := usecase.NewChatbotUC(chatRepo, log)

	// HTTP
	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(v1Http.Usecases{
		Product:        productUC,
		Recommendation: recommendationUC,
		Auth:           authUC,
		Catalog:        catalogUC,
		Order:          orderUC,
		Fulfillment:    fulfillmentUC,
		Promotion:      promotionUC,
		Chatbot:        chatbotUC,
	})

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add("http server", func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	return &App{
		cfg:          cfg,
		logger:       log,
		httpSrv:      httpSrv,
		outboxWorker: outboxWorker,
		closer:       cl,
		workerCancel: workerCancel,
	}, nil
}

// Run запускает outbox-worker и HTTP-сервер и блокируется до сигнала
// завершения или фатальной ошибки сервера.
func (a *App) Run() error {
	workerCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.outboxWorker.Start(workerCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	cancel()
	a.workerCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
		if appErr == nil {
			appErr = err
		}
	} else {
		a.logger.Infof("Application shutdown complete")
	}

	return appErr
}

func initPGDB(log logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(log); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
