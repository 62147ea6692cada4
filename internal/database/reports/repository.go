// Package reports computes read-only derived views over the library data.
// Nothing here is persisted or cached; every call recomputes from the store.
package reports

import (
	"gorm.io/gorm"

	"github.com/mrlokans/libman/internal/entities"
)

const (
	// GraceDays is how long an active loan may run before it counts as
	// overdue. The boundary is exclusive: a loan exactly GraceDays old is
	// not overdue yet.
	GraceDays = 14

	// TopBooksLimit caps the popularity ranking.
	TopBooksLimit = 10

	// monthlyWindow is how many recent calendar months the dashboard shows.
	monthlyWindow = 12
)

// Repository runs the aggregation queries.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new reports repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type GenreCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type MonthlyLoanCount struct {
	Month     string `json:"month"`
	LoanCount int    `json:"loan_count"`
}

// DashboardStats is the aggregate served at /api/stats.
type DashboardStats struct {
	TotalBooks    int64              `json:"totalBooks"`
	TotalMembers  int64              `json:"totalMembers"`
	ActiveLoans   int64              `json:"activeLoans"`
	PendingFines  float64            `json:"pendingFines"`
	BooksByGenre  []GenreCount       `json:"booksByGenre"`
	BooksByStatus []StatusCount      `json:"booksByStatus"`
	MonthlyLoans  []MonthlyLoanCount `json:"monthlyLoans"`
}

// OverdueLoan is one row of the overdue report.
type OverdueLoan struct {
	LoanID      uint   `json:"loanid"`
	Title       string `json:"title"`
	MemberName  string `json:"member_name"`
	Email       string `json:"email"`
	IssueDate   string `json:"issuedate"`
	DaysOverdue int    `json:"days_overdue"`
}

// PopularBook is one row of the popularity ranking.
type PopularBook struct {
	Rank      int    `json:"rank"`
	Title     string `json:"title"`
	LoanCount int    `json:"loan_count"`
}

// DashboardStats computes the dashboard aggregate. Genres with no books are
// listed with count 0; the pending fine sum is 0 when there are none.
func (r *Repository) DashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{
		BooksByGenre:  []GenreCount{},
		BooksByStatus: []StatusCount{},
		MonthlyLoans:  []MonthlyLoanCount{},
	}

	if err := r.db.Model(&entities.Book{}).Count(&stats.TotalBooks).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&entities.Member{}).Count(&stats.TotalMembers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&entities.Loan{}).
		Where("status = ?", entities.LoanStatusActive).
		Count(&stats.ActiveLoans).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&entities.Fine{}).
		Where("status = ?", entities.FineStatusPending).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.PendingFines).Error; err != nil {
		return nil, err
	}

	if err := r.db.Table("genres AS g").
		Select("g.name, COUNT(b.id) AS count").
		Joins("LEFT JOIN books b ON b.genre_id = g.id").
		Group("g.id, g.name").
		Order("count DESC, g.name").
		Scan(&stats.BooksByGenre).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&entities.Book{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&stats.BooksByStatus).Error; err != nil {
		return nil, err
	}

	if err := r.db.Table("loans").
		Select("strftime('%Y-%m', issue_date) AS month, COUNT(*) AS loan_count").
		Group("month").
		Order("month DESC").
		Limit(monthlyWindow).
		Scan(&stats.MonthlyLoans).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// OverdueLoans lists active loans issued more than GraceDays before asOf
// (a YYYY-MM-DD date), most overdue first. The joins are INNER on purpose:
// a loan whose book or member row is missing drops out of the report
// silently instead of erroring.
func (r *Repository) OverdueLoans(asOf string) ([]OverdueLoan, error) {
	rows := []OverdueLoan{}
	err := r.db.Table("loans AS l").
		Select("l.id AS loan_id, b.title, m.name AS member_name, m.email, l.issue_date, CAST(julianday(?) - julianday(l.issue_date) AS INTEGER) AS days_overdue", asOf).
		Joins("JOIN books b ON b.id = l.book_id").
		Joins("JOIN members m ON m.id = l.member_id").
		Where("l.status = ?", entities.LoanStatusActive).
		Where("julianday(?) - julianday(l.issue_date) > ?", asOf, GraceDays).
		Order("days_overdue DESC").
		Scan(&rows).Error
	return rows, err
}

// PopularBooks groups all loans by book title and returns the most borrowed
// titles with a 1-based rank. Loans whose book cannot be resolved fall back
// to the "Unknown" bucket.
func (r *Repository) PopularBooks(limit int) ([]PopularBook, error) {
	rows := []PopularBook{}
	err := r.db.Table("loans AS l").
		Select("COALESCE(b.title, 'Unknown') AS title, COUNT(*) AS loan_count").
		Joins("LEFT JOIN books b ON b.id = l.book_id").
		Group("COALESCE(b.title, 'Unknown')").
		Order("loan_count DESC, title").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows, nil
}
