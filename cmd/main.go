package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"festiloc/internal/caching"
	"festiloc/internal/handlers"
	"festiloc/internal/jobs/background"
	"festiloc/internal/middleware"
	"festiloc/internal/repositories"
	"festiloc/internal/services"
	"festiloc/pkg/database"
)

type requestValidator struct {
	validator *validator.Validate
}

func (rv *requestValidator) Validate(i interface{}) error {
	if err := rv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Database connection
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}
	pool, err := database.NewPool(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Redis configuration
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		if db, err := strconv.Atoi(raw); err == nil {
			redisDB = db
		}
	}

	// MinIO configuration
	minioEndpoint := os.Getenv("MINIO_ENDPOINT")
	if minioEndpoint == "" {
		minioEndpoint = "localhost:9000"
	}
	minioAccessKey := os.Getenv("MINIO_ACCESS_KEY")
	if minioAccessKey == "" {
		minioAccessKey = "minioadmin"
	}
	minioSecretKey := os.Getenv("MINIO_SECRET_KEY")
	if minioSecretKey == "" {
		minioSecretKey = "minioadmin"
	}
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	storage, err := services.NewMinioStorage(minioEndpoint, minioAccessKey, minioSecretKey, useSSL)
	if err != nil {
		log.Fatalf("Failed to initialize storage service: %v", err)
	}

	// Repositories
	productRepo := repositories.NewProductRepo(pool)
	categoryRepo := repositories.NewCategoryRepo(pool)
	pageRepo := repositories.NewPageRepo(pool)
	announcementRepo := repositories.NewAnnouncementRepo(pool)
	customerRepo := repositories.NewCustomerRepo(pool)
	quoteRepo := repositories.NewQuoteRepo(pool)

	// Cache service
	cacheSvc := caching.NewRedisCacheService(redisAddr, redisPassword, redisDB)

	// Services
	catalogSvc := services.NewCatalogService(productRepo, categoryRepo, storage, cacheSvc)
	cartSvc := services.NewCartService(cacheSvc)
	compareSvc := services.NewCompareService(productRepo, cacheSvc)
	quoteSvc := services.NewQuoteService(quoteRepo, customerRepo, cartSvc)
	contentSvc := services.NewContentService(pageRepo, announcementRepo)
	customerSvc := services.NewCustomerService(customerRepo)

	// Handlers
	catalogHandlers := handlers.NewCatalogHandlers(catalogSvc)
	productAdminHandlers := handlers.NewProductAdminHandlers(catalogSvc)
	categoryHandlers := handlers.NewCategoryHandlers(categoryRepo, catalogSvc)
	cartHandlers := handlers.NewCartHandlers(cartSvc)
	compareHandlers := handlers.NewCompareHandlers(compareSvc)
	quoteHandlers := handlers.NewQuoteHandlers(quoteSvc)
	contentHandlers := handlers.NewContentHandlers(contentSvc)
	customerHandlers := handlers.NewCustomerHandlers(customerSvc)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc)

	// Background jobs
	scheduler := background.NewJobScheduler(catalogSvc, contentSvc)
	if err := scheduler.Start(); err != nil {
		log.Printf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Stop()

	// Echo instance
	e := echo.New()
	e.Validator = &requestValidator{validator: validator.New()}

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Pre(echoMiddleware.RemoveTrailingSlash())

	versionMiddleware := middleware.NewVersionMiddleware()
	e.Use(versionMiddleware.ValidateVersion())

	sessionMiddleware := middleware.NewSessionMiddleware()

	// Health endpoints
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)
	e.GET("/health/live", healthHandlers.LivenessCheck)

	v1 := e.Group("/v1")
	v1.Use(versionMiddleware.VersionHeader("v1"))
	v1.Use(sessionMiddleware.Resolve())

	// Catalog routes
	v1.GET("/categories", catalogHandlers.CategoryTree)
	v1.GET("/products", catalogHandlers.ListProducts)
	v1.GET("/products/:slug", catalogHandlers.GetProduct)
	v1.GET("/categories/:category/products", catalogHandlers.ListByCategory)
	v1.GET("/categories/:category/:subcategory/products", catalogHandlers.ListByCategory)
	v1.GET("/categories/:category/:subcategory/:subsubcategory/products", catalogHandlers.ListByCategory)
	v1.GET("/search", catalogHandlers.SearchProducts)
	v1.GET("/images/*", catalogHandlers.ProductImageURL)

	// Content routes
	v1.GET("/pages/:slug", contentHandlers.GetPage)
	v1.GET("/announcements", contentHandlers.ActiveAnnouncements)

	// Cart routes
	v1.GET("/cart", cartHandlers.GetCart)
	v1.GET("/cart/summary", cartHandlers.CartSummary)
	v1.POST("/cart/items", cartHandlers.AddItem)
	v1.PUT("/cart/items/:product_id", cartHandlers.UpdateItem)
	v1.DELETE("/cart/items/:product_id", cartHandlers.RemoveItem)
	v1.DELETE("/cart", cartHandlers.ClearCart)

	// Comparison routes
	v1.GET("/compare", compareHandlers.GetComparison)
	v1.POST("/compare/:product_id", compareHandlers.AddProduct)
	v1.DELETE("/compare/:product_id", compareHandlers.RemoveProduct)
	v1.DELETE("/compare", compareHandlers.ClearComparison)

	// Quote submission
	v1.POST("/quotes", quoteHandlers.SubmitQuote)

	// Back-office routes
	admin := v1.Group("/admin")

	admin.POST("/products", productAdminHandlers.CreateProduct)
	admin.PUT("/products/:id", productAdminHandlers.UpdateProduct)
	admin.DELETE("/products/:id", productAdminHandlers.DeleteProduct)
	admin.POST("/products/:id/images", productAdminHandlers.UploadImage)

	admin.POST("/categories", categoryHandlers.CreateCategory)
	admin.PUT("/categories/:id", categoryHandlers.UpdateCategory)
	admin.DELETE("/categories/:id", categoryHandlers.DeleteCategory)
	admin.POST("/subcategories", categoryHandlers.CreateSubcategory)
	admin.PUT("/subcategories/:id", categoryHandlers.UpdateSubcategory)
	admin.DELETE("/subcategories/:id", categoryHandlers.DeleteSubcategory)
	admin.POST("/subsubcategories", categoryHandlers.CreateSubSubcategory)
	admin.PUT("/subsubcategories/:id", categoryHandlers.UpdateSubSubcategory)
	admin.DELETE("/subsubcategories/:id", categoryHandlers.DeleteSubSubcategory)

	admin.GET("/pages", contentHandlers.ListPages)
	admin.POST("/pages", contentHandlers.CreatePage)
	admin.PUT("/pages/:id", contentHandlers.UpdatePage)
	admin.DELETE("/pages/:id", contentHandlers.DeletePage)

	admin.GET("/announcements", contentHandlers.ListAnnouncements)
	admin.POST("/announcements", contentHandlers.CreateAnnouncement)
	admin.PUT("/announcements/:id", contentHandlers.UpdateAnnouncement)
	admin.DELETE("/announcements/:id", contentHandlers.DeleteAnnouncement)

	admin.GET("/customers", customerHandlers.ListCustomers)
	admin.GET("/customers/:id", customerHandlers.GetCustomer)
	admin.POST("/customers", customerHandlers.CreateCustomer)
	admin.PUT("/customers/:id", customerHandlers.UpdateCustomer)
	admin.DELETE("/customers/:id", customerHandlers.DeleteCustomer)

	admin.GET("/quotes", quoteHandlers.ListQuotes)
	admin.GET("/quotes/:id", quoteHandlers.GetQuote)
	admin.PUT("/quotes/:id/status", quoteHandlers.UpdateQuoteStatus)
	admin.DELETE("/quotes/:id", quoteHandlers.DeleteQuote)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Fatal(e.Start(":" + port))
}
