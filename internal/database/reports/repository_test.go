package reports

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/libman/internal/entities"
)

// asOf anchors every date calculation in these tests.
const asOf = "2026-08-31"

// setupTestDB opens a plain connection without foreign-key enforcement so
// orphaned loans can be seeded; the report queries must drop them silently.
func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	t.Helper()

	dbPath := "./test_reports_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Genre{},
		&entities.Author{},
		&entities.Book{},
		&entities.Member{},
		&entities.Loan{},
		&entities.Fine{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}
	return repo, db, cleanup
}

func seedCatalog(t *testing.T, db *gorm.DB) (entities.Author, []entities.Genre) {
	t.Helper()

	author := entities.Author{Name: "A. Writer"}
	require.NoError(t, db.Create(&author).Error)

	genres := []entities.Genre{{Name: "Sci-Fi"}, {Name: "History"}, {Name: "Poetry"}}
	for i := range genres {
		require.NoError(t, db.Create(&genres[i]).Error)
	}
	return author, genres
}

func seedBook(t *testing.T, db *gorm.DB, title string, authorID, genreID uint, status entities.BookStatus) entities.Book {
	t.Helper()

	book := entities.Book{Title: title, AuthorID: authorID, GenreID: genreID, Status: status}
	require.NoError(t, db.Create(&book).Error)
	return book
}

func seedLoan(t *testing.T, db *gorm.DB, bookID, memberID uint, issued string, status entities.LoanStatus) entities.Loan {
	t.Helper()

	loan := entities.Loan{BookID: bookID, MemberID: memberID, IssueDate: issued, Status: status}
	require.NoError(t, db.Create(&loan).Error)
	return loan
}

func TestDashboardStats_EmptyDatabase(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	stats, err := repo.DashboardStats()

	require.NoError(t, err)
	assert.Zero(t, stats.TotalBooks)
	assert.Zero(t, stats.TotalMembers)
	assert.Zero(t, stats.ActiveLoans)
	// No pending fines means zero, not null.
	assert.Zero(t, stats.PendingFines)
	assert.Empty(t, stats.BooksByGenre)
	assert.Empty(t, stats.BooksByStatus)
	assert.Empty(t, stats.MonthlyLoans)
}

func TestDashboardStats_Counts(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	author, genres := seedCatalog(t, db)

	book := seedBook(t, db, "Dune", author.ID, genres[0].ID, entities.BookStatusBorrowed)
	seedBook(t, db, "Sands", author.ID, genres[0].ID, entities.BookStatusAvailable)
	seedBook(t, db, "Rome", author.ID, genres[1].ID, entities.BookStatusAvailable)

	member := entities.Member{Name: "Alice", Email: "alice@example.com", JoinDate: "2026-01-01"}
	require.NoError(t, db.Create(&member).Error)

	seedLoan(t, db, book.ID, member.ID, "2026-08-01", entities.LoanStatusActive)
	seedLoan(t, db, book.ID, member.ID, "2026-07-01", entities.LoanStatusActive)
	seedLoan(t, db, book.ID, member.ID, "2026-06-01", entities.LoanStatusReturned)

	require.NoError(t, db.Create(&entities.Fine{MemberID: member.ID, Amount: 2.5, IssueDate: "2026-08-01", Status: entities.FineStatusPending}).Error)
	require.NoError(t, db.Create(&entities.Fine{MemberID: member.ID, Amount: 4.0, IssueDate: "2026-08-02", Status: entities.FineStatusPending}).Error)
	require.NoError(t, db.Create(&entities.Fine{MemberID: member.ID, Amount: 100, IssueDate: "2026-08-03", Status: entities.FineStatusPaid}).Error)

	stats, err := repo.DashboardStats()

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalBooks)
	assert.Equal(t, int64(1), stats.TotalMembers)
	// Only Active loans count; the returned one is out.
	assert.Equal(t, int64(2), stats.ActiveLoans)
	// Only Pending fines are summed.
	assert.InDelta(t, 6.5, stats.PendingFines, 0.001)
}

func TestDashboardStats_BooksByGenreIncludesEmptyGenres(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	author, genres := seedCatalog(t, db)

	seedBook(t, db, "Dune", author.ID, genres[0].ID, entities.BookStatusAvailable)
	seedBook(t, db, "Sands", author.ID, genres[0].ID, entities.BookStatusAvailable)
	seedBook(t, db, "Rome", author.ID, genres[1].ID, entities.BookStatusAvailable)

	stats, err := repo.DashboardStats()

	require.NoError(t, err)
	require.Len(t, stats.BooksByGenre, 3)
	assert.Equal(t, GenreCount{Name: "Sci-Fi", Count: 2}, stats.BooksByGenre[0])
	assert.Equal(t, GenreCount{Name: "History", Count: 1}, stats.BooksByGenre[1])
	// Poetry has no books but still shows up with a zero count.
	assert.Equal(t, GenreCount{Name: "Poetry", Count: 0}, stats.BooksByGenre[2])
}

func TestDashboardStats_BooksByStatus(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	author, genres := seedCatalog(t, db)

	seedBook(t, db, "Dune", author.ID, genres[0].ID, entities.BookStatusBorrowed)
	seedBook(t, db, "Sands", author.ID, genres[0].ID, entities.BookStatusAvailable)
	seedBook(t, db, "Rome", author.ID, genres[1].ID, entities.BookStatusAvailable)

	stats, err := repo.DashboardStats()

	require.NoError(t, err)
	byStatus := map[string]int{}
	for _, sc := range stats.BooksByStatus {
		byStatus[sc.Status] = sc.Count
	}
	assert.Equal(t, map[string]int{"Available": 2, "Borrowed": 1}, byStatus)
}

func TestDashboardStats_MonthlyLoansWindow(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	// Fourteen distinct months; only the most recent twelve may show.
	months := []string{
		"2025-07", "2025-08", "2025-09", "2025-10", "2025-11", "2025-12",
		"2026-01", "2026-02", "2026-03", "2026-04", "2026-05", "2026-06",
		"2026-07", "2026-08",
	}
	for _, m := range months {
		seedLoan(t, db, 1, 1, m+"-15", entities.LoanStatusActive)
	}
	// A second loan in the newest month.
	seedLoan(t, db, 1, 1, "2026-08-20", entities.LoanStatusActive)

	stats, err := repo.DashboardStats()

	require.NoError(t, err)
	require.Len(t, stats.MonthlyLoans, 12)
	assert.Equal(t, MonthlyLoanCount{Month: "2026-08", LoanCount: 2}, stats.MonthlyLoans[0])
	assert.Equal(t, "2026-07", stats.MonthlyLoans[1].Month)
	// The two oldest months fall outside the window.
	for _, ml := range stats.MonthlyLoans {
		assert.NotEqual(t, "2025-07", ml.Month)
		assert.NotEqual(t, "2025-08", ml.Month)
	}
}

func TestOverdueLoans_BoundaryExclusiveAtFourteenDays(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	author, genres := seedCatalog(t, db)

	book := seedBook(t, db, "Dune", author.ID, genres[0].ID, entities.BookStatusBorrowed)
	member := entities.Member{Name: "Alice", Email: "alice@example.com", JoinDate: "2026-01-01"}
	require.NoError(t, db.Create(&member).Error)

	fifteenDays := seedLoan(t, db, book.ID, member.ID, "2026-08-16", entities.LoanStatusActive)
	seedLoan(t, db, book.ID, member.ID, "2026-08-17", entities.LoanStatusActive) // exactly 14 days

	rows, err := repo.OverdueLoans(asOf)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, fifteenDays.ID, rows[0].LoanID)
	assert.Equal(t, 15, rows[0].DaysOverdue)
	assert.Equal(t, "Dune", rows[0].Title)
	assert.Equal(t, "Alice", rows[0].MemberName)
	assert.Equal(t, "alice@example.com", rows[0].Email)
}

func TestOverdueLoans_OrderedMostOverdueFirst(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	author, genres := seedCatalog(t, db)

	book := seedBook(t, db, "Dune", author.ID, genres[0].ID, entities.BookStatusBorrowed)
	member := entities.Member{Name: "Alice", Email: "alice@example.com", JoinDate: "2026-01-01"}
	require.NoError(t, db.Create(&member).Error)

	seedLoan(t, db, book.ID, member.ID, "2026-08-11", entities.LoanStatusActive) // 20 days
	seedLoan(t, db, book.ID, member.ID, "2026-07-02", entities.LoanStatusActive) // 60 days
	seedLoan(t, db, book.ID, member.ID, "2026-08-16", entities.LoanStatusActive) // 15 days

	rows, err := repo.OverdueLoans(asOf)

	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, 60, rows[0].DaysOverdue)
	assert.Equal(t, 20, rows[1].DaysOverdue)
	assert.Equal(t, 15, rows[2].DaysOverdue)
}

func TestOverdueLoans_ExcludesReturnedAndOrphaned(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	author, genres := seedCatalog(t, db)

	book := seedBook(t, db, "Dune", author.ID, genres[0].ID, entities.BookStatusBorrowed)
	member := entities.Member{Name: "Alice", Email: "alice@example.com", JoinDate: "2026-01-01"}
	require.NoError(t, db.Create(&member).Error)

	// Returned long ago: not overdue regardless of age.
	seedLoan(t, db, book.ID, member.ID, "2026-01-01", entities.LoanStatusReturned)
	// Orphaned references: the inner joins drop these silently.
	seedLoan(t, db, 9999, member.ID, "2026-01-01", entities.LoanStatusActive)
	seedLoan(t, db, book.ID, 9999, "2026-01-01", entities.LoanStatusActive)

	rows, err := repo.OverdueLoans(asOf)

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestPopularBooks_RankingAndFallback(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	author, genres := seedCatalog(t, db)

	dune := seedBook(t, db, "Dune", author.ID, genres[0].ID, entities.BookStatusAvailable)
	rome := seedBook(t, db, "Rome", author.ID, genres[1].ID, entities.BookStatusAvailable)

	for i := 0; i < 3; i++ {
		seedLoan(t, db, dune.ID, 1, "2026-08-01", entities.LoanStatusActive)
	}
	seedLoan(t, db, rome.ID, 1, "2026-08-01", entities.LoanStatusActive)
	// A loan pointing at a missing book lands in the "Unknown" bucket.
	seedLoan(t, db, 9999, 1, "2026-08-01", entities.LoanStatusActive)

	rows, err := repo.PopularBooks(TopBooksLimit)

	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, PopularBook{Rank: 1, Title: "Dune", LoanCount: 3}, rows[0])
	assert.Equal(t, 1, rows[1].LoanCount)
	titles := []string{rows[1].Title, rows[2].Title}
	assert.Contains(t, titles, "Rome")
	assert.Contains(t, titles, "Unknown")
}

func TestPopularBooks_LimitApplied(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	author, genres := seedCatalog(t, db)

	for i := 0; i < 12; i++ {
		book := seedBook(t, db, "Title "+string(rune('A'+i)), author.ID, genres[0].ID, entities.BookStatusAvailable)
		seedLoan(t, db, book.ID, 1, "2026-08-01", entities.LoanStatusActive)
	}

	rows, err := repo.PopularBooks(TopBooksLimit)

	require.NoError(t, err)
	assert.Len(t, rows, TopBooksLimit)
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, 10, rows[9].Rank)
}
