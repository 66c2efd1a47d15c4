package http

import (
	_ "github.com/AVTech-ve/ecommerce-backend/docs" // Импорт сгенерированных файлов
	"github.com/AVTech-ve/ecommerce-backend/internal/usecase"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

// Usecases — зависимости всех HTTP-обработчиков.
type Usecases struct {
	Product        usecase.ProductUC
	Recommendation usecase.RecommendationUC
	Auth           usecase.AuthUC
	Catalog        usecase.CatalogUC
	Order          usecase.OrderUC
	Fulfillment    usecase.FulfillmentUC
	Promotion      usecase.PromotionUC
	Chatbot        usecase.ChatbotUC
}

func (r *Router) Init(uc Usecases) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	auth := NewAuthMiddleware(uc.Auth, r.logger)

	prHandler := NewProductHandler(uc.Product, r.logger)
	recHandler := NewRecommendationHandler(uc.Recommendation, r.logger)
	authHandler := NewAuthHandler(uc.Auth, r.logger)
	catHandler := NewCatalogHandler(uc.Catalog, r.logger)
	orderHandler := NewOrderHandler(uc.Order, r.logger)
	fulHandler := NewFulfillmentHandler(uc.Fulfillment, r.logger)
	promoHandler := NewPromotionHandler(uc.Promotion, r.logger)
	chatHandler := NewChatbotHandler(uc.Chatbot, r.logger)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerAuthRoutes(v1, authHandler, auth)
		registerProductRoutes(v1, prHandler, recHandler, catHandler, auth)
		registerCatalogRoutes(v1, catHandler, auth)
		registerOrderRoutes(v1, orderHandler, fulHandler, auth)
		registerPromotionRoutes(v1, promoHandler, auth)
		registerChatbotRoutes(v1, chatHandler, auth)
	})
}

func registerAuthRoutes(router chi.Router, h *AuthHandler, auth *AuthMiddleware) {
	router.Route("/auth", func(a chi.Router) {
		a.Post("/register", h.register)
		a.Post("/login", h.login)
		a.Post("/refresh", h.refresh)
	})

	router.Route("/users", func(u chi.Router) {
		u.Use(auth.Authenticate)
		u.Get("/me", h.me)

		u.Group(func(admin chi.Router) {
			admin.Use(auth.RequireAdmin)
			admin.Get("/", h.listUsers)
			admin.Get("/{id}", h.getUser)
			admin.Delete("/{id}", h.deactivateUser)
		})
	})
}

func registerProductRoutes(router chi.Router, pr *ProductHandler, rec *RecommendationHandler, cat *CatalogHandler, auth *AuthMiddleware) {
	router.Route("/products", func(p chi.Router) {
		p.Get("/", pr.listProducts)
		p.Get("/{id}", pr.getProduct)
		p.Get("/{id}/recommendations", rec.recommendByProduct)
		p.Get("/{id}/inventory", cat.getInventory)

		p.Group(func(admin chi.Router) {
			admin.Use(auth.Authenticate, auth.RequireAdmin)
			admin.Post("/", pr.createProduct)
			admin.Put("/{id}", pr.updateProduct)
			admin.Delete("/{id}", pr.deleteProduct)
			admin.Put("/{id}/inventory", cat.upsertInventory)
		})
	})

	router.Post("/recommendations/search", rec.recommendByText)
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler, auth *AuthMiddleware) {
	router.Route("/brands", func(b chi.Router) {
		b.Get("/", h.listBrands)
		b.Get("/{id}", h.getBrand)

		b.Group(func(admin chi.Router) {
			admin.Use(auth.Authenticate, auth.RequireAdmin)
			admin.Post("/", h.createBrand)
			admin.Put("/{id}", h.updateBrand)
			admin.Delete("/{id}", h.deactivateBrand)
		})
	})

	router.Route("/categories", func(c chi.Router) {
		c.Get("/", h.listCategories)
		c.Get("/{id}", h.getCategory)

		c.Group(func(admin chi.Router) {
			admin.Use(auth.Authenticate, auth.RequireAdmin)
			admin.Post("/", h.createCategory)
			admin.Put("/{id}", h.updateCategory)
			admin.Delete("/{id}", h.deactivateCategory)
		})
	})

	router.Route("/warranties", func(wr chi.Router) {
		wr.Get("/", h.listWarranties)
		wr.Get("/{id}", h.getWarranty)

		wr.Group(func(admin chi.Router) {
			admin.Use(auth.Authenticate, auth.RequireAdmin)
			admin.Post("/", h.createWarranty)
			admin.Delete("/{id}", h.deleteWarranty)
		})
	})
}

func registerOrderRoutes(router chi.Router, orders *OrderHandler, ful *FulfillmentHandler, auth *AuthMiddleware) {
	router.Route("/cart", func(c chi.Router) {
		c.Use(auth.Authenticate)
		c.Get("/", orders.getCart)
		c.Post("/items", orders.addCartItem)
		c.Delete("/items/{productID}", orders.removeCartItem)
	})

	router.Route("/orders", func(o chi.Router) {
		o.Use(auth.Authenticate)
		o.Get("/", orders.listOrders)
		o.Post("/checkout", orders.checkout)
		o.Get("/{id}", orders.getOrder)

		o.Post("/{id}/payment", ful.createPayment)
		o.Get("/{id}/payment", ful.getPayment)
		o.Post("/{id}/delivery", ful.createDelivery)
		o.Get("/{id}/delivery", ful.getDelivery)
		o.Post("/{id}/feedback", ful.createFeedback)
		o.Get("/{id}/feedback", ful.listFeedback)
		o.Delete("/{id}/feedback/{feedbackID}", ful.deleteFeedback)

		o.Group(func(admin chi.Router) {
			admin.Use(auth.RequireAdmin)
			admin.Patch("/{id}/status", orders.updateOrderStatus)
			admin.Patch("/{id}/delivery/status", ful.updateDeliveryStatus)
		})
	})
}

func registerPromotionRoutes(router chi.Router, h *PromotionHandler, auth *AuthMiddleware) {
	router.Route("/promotions", func(p chi.Router) {
		p.Get("/", h.listPromotions)
		p.Get("/{id}", h.getPromotion)
		p.Get("/{id}/products", h.listProducts)

		p.Group(func(admin chi.Router) {
			admin.Use(auth.Authenticate, auth.RequireAdmin)
			admin.Post("/", h.createPromotion)
			admin.Put("/{id}", h.updatePromotion)
			admin.Delete("/{id}", h.deactivatePromotion)
			admin.Post("/{id}/products/{productID}", h.addProduct)
			admin.Delete("/{id}/products/{productID}", h.removeProduct)
		})
	})
}

func registerChatbotRoutes(router chi.Router, h *ChatbotHandler, auth *AuthMiddleware) {
	router.Route("/chat/sessions", func(c chi.Router) {
		c.Use(auth.OptionalAuth)
		c.Post("/", h.startSession)
		c.Post("/{token}/messages", h.appendMessage)
		c.Get("/{token}/messages", h.listMessages)
		c.Delete("/{token}", h.closeSession)
	})
}
