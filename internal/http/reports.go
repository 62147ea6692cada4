package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/libman/internal/database/reports"
	"github.com/mrlokans/libman/internal/entities"
)

// ReportStore defines the aggregation queries behind the reporting
// endpoints.
type ReportStore interface {
	DashboardStats() (*reports.DashboardStats, error)
	OverdueLoans(asOf string) ([]reports.OverdueLoan, error)
	PopularBooks(limit int) ([]reports.PopularBook, error)
}

type ReportsController struct {
	store        ReportStore
	exposeErrors bool
	now          func() time.Time
}

func NewReportsController(store ReportStore, exposeErrors bool) *ReportsController {
	return &ReportsController{store: store, exposeErrors: exposeErrors, now: time.Now}
}

// GetStats returns the dashboard aggregate
// GET /api/stats
func (rc *ReportsController) GetStats(c *gin.Context) {
	stats, err := rc.store.DashboardStats()
	if err != nil {
		respondInternalError(c, err, "dashboard stats", rc.exposeErrors)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetOverdueReport returns active loans past the grace period, most
// overdue first
// GET /api/reports/overdue
func (rc *ReportsController) GetOverdueReport(c *gin.Context) {
	rows, err := rc.store.OverdueLoans(rc.now().Format(entities.DateLayout))
	if err != nil {
		respondInternalError(c, err, "overdue report", rc.exposeErrors)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetPopularBooks returns the top borrowed titles with a 1-based rank
// GET /api/reports/popular
func (rc *ReportsController) GetPopularBooks(c *gin.Context) {
	rows, err := rc.store.PopularBooks(reports.TopBooksLimit)
	if err != nil {
		respondInternalError(c, err, "popularity ranking", rc.exposeErrors)
		return
	}
	c.JSON(http.StatusOK, rows)
}
