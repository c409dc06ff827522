// Package routes wires repositories, services and handlers together and
// mounts them on the fiber router. All collaborators are constructed here
// and injected; no package holds global state.
package routes

import (
	"time"

	"creditcall/internal/config"
	"creditcall/internal/handlers"
	"creditcall/internal/middleware"
	"creditcall/internal/repositories"
	"creditcall/internal/repositories/cache"
	"creditcall/internal/services/auth"
	"creditcall/internal/services/calls"
	"creditcall/internal/services/checkout"
	"creditcall/internal/services/creators"
	"creditcall/internal/services/ledger"
	"creditcall/internal/services/provisioning"
	"creditcall/internal/services/settlement"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/stripe/stripe-go/v72/client"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB, cacheSvc *cache.Service, stripeClient *client.API) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	businessRepo := repositories.NewBusinessRepository(db)
	creatorRepo := repositories.NewCreatorRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	clientWalletRepo := repositories.NewClientWalletRepository(db)
	callRepo := repositories.NewCallRepository(db)
	eventRepo := repositories.NewWebhookEventRepository(db)

	// Services
	authService := auth.NewService(userRepo, config.GetEnv("JWT_SECRET", "creditcall"))
	ledgerStats := ledger.NewStatsCollector()
	ledgerService := ledger.NewService(walletRepo, clientWalletRepo, cacheSvc, ledgerStats)
	creatorsService := creators.NewService(creatorRepo, walletRepo, ledgerService, cacheSvc)
	callsService := calls.NewService(creatorsService, callRepo, ledgerService)
	provisioningService := provisioning.NewService(userRepo, businessRepo, creatorRepo, walletRepo)

	gateway := settlement.NewStripeGateway(
		stripeClient,
		config.GetEnv("STRIPE_WEBHOOK_SECRET", ""),
		config.GetDurationEnv("STRIPE_TIMEOUT", 10*time.Second),
	)
	settlementService := settlement.NewService(gateway, businessRepo, ledgerService, eventRepo)

	checkoutService := checkout.NewService(stripeClient, businessRepo, checkout.Config{
		SuccessURL: config.GetEnv("CHECKOUT_SUCCESS_URL", "https://example.com/success"),
		CancelURL:  config.GetEnv("CHECKOUT_CANCEL_URL", "https://example.com/cancel"),
	})

	// Handlers
	webhookHandler := handlers.NewWebhookHandler(settlementService)
	callsHandler := handlers.NewCallsHandler(callsService, creatorsService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	creatorsHandler := handlers.NewCreatorsHandler(creatorsService)
	adminHandler := handlers.NewAdminHandler(provisioningService, businessRepo, ledgerStats)
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler(db)

	app.Get("/health", healthHandler.Check)

	api := app.Group("/api")

	api.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}), authHandler.Login)

	webhookLimiter := limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	})

	// Payment-processor webhook; authenticated by its own signature.
	api.Post("/webhooks/stripe", webhookLimiter, webhookHandler.HandleStripeWebhook)

	// Downstream call-platform webhooks behind a shared secret.
	webhookSecret := config.GetEnv("INTERNAL_WEBHOOK_SECRET", "")
	internal := api.Group("/webhooks", webhookLimiter, middleware.RequireWebhookSecret(webhookSecret))
	internal.Post("/call-ended", callsHandler.HandleCallEnded)
	internal.Post("/payment-completed", callsHandler.HandlePaymentCompleted)
	internal.Post("/summary-update", callsHandler.HandleSummaryUpdate)

	// Public checkout and creator reads.
	api.Post("/checkout/sessions", checkoutHandler.CreateSession)
	api.Get("/creators/:handle", creatorsHandler.GetCreatorData)

	// God-admin provisioning.
	authMiddleware := middleware.NewAuthMiddleware(authService)
	admin := api.Group("/admin", authMiddleware.Handler, middleware.RequireGodAdmin)
	admin.Post("/businesses", adminHandler.OnboardBusiness)
	admin.Post("/businesses/:id/stripe-account", adminHandler.SetStripeAccount)
	admin.Post("/invites", adminHandler.InviteUser)
	admin.Get("/ledger-stats", adminHandler.LedgerStats)
}
