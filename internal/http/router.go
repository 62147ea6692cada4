package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	catalog := NewCatalogController(cfg.Records, cfg.ExposeErrors)
	members := NewMembersController(cfg.Records, cfg.ExposeErrors)
	circulation := NewCirculationController(cfg.Records, cfg.ExposeErrors)
	reports := NewReportsController(cfg.Reports, cfg.ExposeErrors)
	health := NewHealthController(cfg.DB, cfg.Version)

	router.GET("/health", health.Status)

	api := router.Group("/api")
	{
		api.GET("/genres", catalog.GetAllGenres)
		api.POST("/genres", catalog.CreateGenre)
		api.GET("/authors", catalog.GetAllAuthors)
		api.POST("/authors", catalog.CreateAuthor)
		api.GET("/publishers", catalog.GetAllPublishers)
		api.POST("/publishers", catalog.CreatePublisher)
		api.GET("/categories", catalog.GetAllCategories)
		api.POST("/categories", catalog.CreateCategory)
		api.GET("/books", catalog.GetAllBooks)
		api.POST("/books", catalog.CreateBook)

		api.GET("/members", members.GetAllMembers)
		api.POST("/members", members.CreateMember)
		api.GET("/librarystaff", members.GetAllStaff)
		api.POST("/librarystaff", members.CreateStaff)

		api.GET("/loans", circulation.GetAllLoans)
		api.POST("/loans", circulation.CreateLoan)
		api.GET("/fines", circulation.GetAllFines)
		api.POST("/fines", circulation.CreateFine)
		api.GET("/reservations", circulation.GetAllReservations)
		api.POST("/reservations", circulation.CreateReservation)

		api.GET("/stats", reports.GetStats)
		api.GET("/reports/overdue", reports.GetOverdueReport)
		api.GET("/reports/popular", reports.GetPopularBooks)
	}

	return router
}
