package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/letsorder/internal/audit"
	"github.com/BruksfildServices01/letsorder/internal/auth"
	"github.com/BruksfildServices01/letsorder/internal/config"
	"github.com/BruksfildServices01/letsorder/internal/domain/access"
	"github.com/BruksfildServices01/letsorder/internal/handlers"
	"github.com/BruksfildServices01/letsorder/internal/httperr"
	infraRepo "github.com/BruksfildServices01/letsorder/internal/infra/repository"
	"github.com/BruksfildServices01/letsorder/internal/middleware"
	"github.com/BruksfildServices01/letsorder/internal/ratelimit"
	ucAccount "github.com/BruksfildServices01/letsorder/internal/usecase/account"
	ucInvite "github.com/BruksfildServices01/letsorder/internal/usecase/invite"
	ucMenu "github.com/BruksfildServices01/letsorder/internal/usecase/menu"
	ucOrder "github.com/BruksfildServices01/letsorder/internal/usecase/order"
	ucRestaurant "github.com/BruksfildServices01/letsorder/internal/usecase/restaurant"
	ucTable "github.com/BruksfildServices01/letsorder/internal/usecase/table"
	"github.com/BruksfildServices01/letsorder/internal/validators"
)

// Deps are the collaborators main builds from config. Nil fields get
// in-process defaults.
type Deps struct {
	Limiter ratelimit.Limiter
	Hasher  *auth.Hasher
	Audit   *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, deps Deps) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigin))
	r.NoRoute(func(c *gin.Context) {
		httperr.NotFound(c, "route_not_found", "Route not found")
	})

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	accessRepo := infraRepo.NewAccessGormRepository(db)
	accountRepo := infraRepo.NewAccountGormRepository(db)
	restaurantRepo := infraRepo.NewRestaurantGormRepository(db)
	inviteRepo := infraRepo.NewInviteGormRepository(db)
	orderRepo := infraRepo.NewOrderGormRepository(db)
	tableRepo := infraRepo.NewTableGormRepository(db)
	menuRepo := infraRepo.NewMenuGormRepository(db)

	authz := access.NewAuthorizer(accessRepo)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)

	hasher := deps.Hasher
	if hasher == nil {
		hasher = auth.NewHasher(auth.DefaultHashParams)
	}

	limiter := deps.Limiter
	if limiter == nil {
		limiter = ratelimit.NewMemory(cfg.RateLimitMax, cfg.RateLimitWindow)
	}

	auditDispatcher := deps.Audit

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucAccount.NewRegister(accountRepo, hasher, tokens)
	if cfg.VerifyEmailDomain {
		registerUC.CheckDomain = validators.IsEmailDomainValid
	}
	loginUC := ucAccount.NewLogin(accountRepo, hasher, tokens)
	getMeUC := ucAccount.NewGetMe(accountRepo)

	issueInviteUC := ucInvite.NewIssue(inviteRepo, authz, auditDispatcher, cfg.InviteTTL)
	redeemInviteUC := ucInvite.NewRedeem(inviteRepo, hasher, tokens, auditDispatcher)

	placeOrderUC := ucOrder.NewPlaceOrder(orderRepo, auditDispatcher)
	getOrderUC := ucOrder.NewGetOrder(orderRepo)
	listOrdersUC := ucOrder.NewListOrders(orderRepo, authz, cfg.Timezone)
	updateStatusUC := ucOrder.NewUpdateStatus(orderRepo, authz, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC)
	meHandler := handlers.NewMeHandler(getMeUC)

	restaurantHandler := handlers.NewRestaurantHandler(
		ucRestaurant.NewCreate(restaurantRepo, auditDispatcher),
		ucRestaurant.NewListMine(restaurantRepo),
		ucRestaurant.NewGet(restaurantRepo, authz),
		ucRestaurant.NewUpdate(restaurantRepo, authz, auditDispatcher),
		ucRestaurant.NewDelete(restaurantRepo, authz),
	)

	managerHandler := handlers.NewManagerHandler(
		ucRestaurant.NewListManagers(restaurantRepo, authz),
		ucRestaurant.NewRemoveManager(restaurantRepo, authz, auditDispatcher),
		ucRestaurant.NewUpdateManagerPermissions(restaurantRepo, authz, auditDispatcher),
		issueInviteUC,
		redeemInviteUC,
	)

	orderHandler := handlers.NewOrderHandler(placeOrderUC, getOrderUC, listOrdersUC, updateStatusUC)
	tableHandler := handlers.NewTableHandler(ucTable.NewService(tableRepo, authz, auditDispatcher, cfg.PublicBaseURL))
	menuHandler := handlers.NewMenuHandler(ucMenu.NewService(menuRepo, authz, auditDispatcher))
	auditLogsHandler := handlers.NewAuditLogsHandler(db, authz)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/auth/register", middleware.RateLimit(limiter, "register"), authHandler.Register)
	r.POST("/auth/login", middleware.RateLimit(limiter, "login"), authHandler.Login)

	r.POST(
		"/restaurants/:id/managers/join/:token",
		middleware.RateLimit(limiter, "join"),
		managerHandler.Join,
	)

	r.POST("/orders", middleware.RateLimit(limiter, "orders"), orderHandler.Place)
	r.GET("/orders/:id", orderHandler.Get)
	r.GET("/menu/:table_code", menuHandler.PublicMenu)

	// ======================================================
	// AUTHENTICATED API
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(tokens))
	{
		api.GET("/me", meHandler.GetMe)

		api.POST("/restaurants", restaurantHandler.Create)
		api.GET("/restaurants", restaurantHandler.List)

		rest := api.Group("/restaurants/:id")
		{
			rest.GET("", restaurantHandler.Get)
			rest.PUT("", restaurantHandler.Update)
			rest.DELETE("", restaurantHandler.Delete)

			// ------------------------------
			// MANAGERS
			// ------------------------------
			rest.GET("/managers", managerHandler.List)
			rest.POST("/managers/invite", managerHandler.Invite)
			rest.DELETE("/managers/:user_id", managerHandler.Remove)
			rest.PUT("/managers/:user_id", managerHandler.UpdatePermissions)

			// ------------------------------
			// TABLES
			// ------------------------------
			rest.POST("/tables", tableHandler.Create)
			rest.GET("/tables", tableHandler.List)
			rest.PUT("/tables/:table_id", tableHandler.Update)
			rest.DELETE("/tables/:table_id", tableHandler.Delete)
			rest.POST("/tables/:table_id/refresh-code", tableHandler.RefreshCode)
			rest.GET("/tables/:table_id/qr-url", tableHandler.QRURL)
			rest.GET("/tables/:table_id/orders", orderHandler.ListTable)

			// ------------------------------
			// MENU
			// ------------------------------
			rest.POST("/menu/sections", menuHandler.CreateSection)
			rest.GET("/menu/sections", menuHandler.ListSections)
			rest.PUT("/menu/sections/:section_id", menuHandler.UpdateSection)
			rest.DELETE("/menu/sections/:section_id", menuHandler.DeleteSection)
			rest.PUT("/menu/reorder", menuHandler.ReorderSections)
			rest.PUT("/menu/sections/:section_id/items/reorder", menuHandler.ReorderItems)
			rest.POST("/menu/sections/:section_id/items", menuHandler.CreateItem)
			rest.PUT("/menu/items/:item_id", menuHandler.UpdateItem)
			rest.PATCH("/menu/items/:item_id/availability", menuHandler.SetAvailability)
			rest.DELETE("/menu/items/:item_id", menuHandler.DeleteItem)

			// ------------------------------
			// ORDERS
			// ------------------------------
			rest.GET("/orders", orderHandler.ListRestaurant)
			rest.GET("/orders/today", orderHandler.ListToday)
			rest.PATCH("/orders/:order_id/status", orderHandler.UpdateStatus)

			rest.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
