package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/delsur-bakery/delsur-store/checkout"
	appconfig "github.com/delsur-bakery/delsur-store/config"
	"github.com/delsur-bakery/delsur-store/remote"
	"github.com/delsur-bakery/delsur-store/repositories"
	"github.com/delsur-bakery/delsur-store/services"
	"github.com/delsur-bakery/delsur-store/store"
	"github.com/delsur-bakery/delsur-store/utils"
)

func main() {
	log.Println("Starting Del Sur store sync daemon...")

	cfg, err := appconfig.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := appconfig.OpenDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	st := store.New(db)
	if err := st.AutoMigrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	client := remote.NewClient(cfg.RemoteBaseURL)

	var images services.ImageService
	if cfg.AWSS3Bucket != "" {
		uploader, err := services.NewS3Uploader(context.Background(), cfg)
		if err != nil {
			log.Fatalf("Failed to initialize S3 uploader: %v", err)
		}
		images = services.NewUploadService(uploader)
	} else {
		images = services.NewUploadService(services.NewAPIUploader(client))
	}

	categories := repositories.NewCategoryRepository(st, client, images)
	products := repositories.NewProductRepository(st, client, images)
	carts := repositories.NewCartRepository(st, client)
	orders := repositories.NewOrderRepository(st, client)
	users := repositories.NewUserRepository(st, client, utils.NewBcryptHasher())
	checkoutService := checkout.NewService(carts, users, orders)

	router := gin.Default()
	router.Use(cors.Default())

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/database/status", databaseStatus(db))
		v1.POST("/sync/catalog", syncCatalog(categories, products))
		v1.POST("/sync/users", syncUsers(users))
		v1.POST("/checkout", placeOrder(checkoutService))
	}

	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Del Sur store sync daemon is running",
	})
}

// databaseStatus checks database connectivity
func databaseStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to get database instance",
				},
			})
			return
		}

		if err := sqlDB.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_CONNECTION_ERROR",
					"message": "Database connection failed",
				},
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Database connected",
		})
	}
}

// syncCatalog pulls the full remote catalog into the local cache.
func syncCatalog(categories *repositories.CategoryRepository, products *repositories.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if err := categories.Sync(ctx, true); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "CATEGORY_SYNC_ERROR",
					"message": err.Error(),
				},
			})
			return
		}
		if err := products.Sync(ctx); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "PRODUCT_SYNC_ERROR",
					"message": err.Error(),
				},
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Catalog synced",
		})
	}
}

// placeOrder submits the user's current cart as an order.
func placeOrder(service *checkout.Service) gin.HandlerFunc {
	type request struct {
		UserID       int    `json:"userId" binding:"required"`
		DeliveryDate string `json:"deliveryDate"`
	}
	return func(c *gin.Context) {
		var req request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_REQUEST",
					"message": err.Error(),
				},
			})
			return
		}

		order, summary, err := service.PlaceOrder(c.Request.Context(), req.UserID, req.DeliveryDate)
		switch {
		case err == checkout.ErrEmptyCart || err == checkout.ErrMissingDeliveryDate:
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "CHECKOUT_REJECTED",
					"message": err.Error(),
				},
			})
			return
		case err != nil:
			c.JSON(http.StatusBadGateway, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "CHECKOUT_ERROR",
					"message": err.Error(),
				},
			})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"order":   order,
			"pricing": gin.H{
				"subtotal": summary.Subtotal,
				"discount": summary.Discount,
				"total":    summary.Total,
			},
		})
	}
}

// syncUsers pulls the remote accounts into the local cache.
func syncUsers(users *repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := users.Sync(c.Request.Context()); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "USER_SYNC_ERROR",
					"message": err.Error(),
				},
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Users synced",
		})
	}
}
