// Package records provides listing and insert operations for every library
// entity. Listings are denormalized with joined display names where the API
// contract requires them; inserts are single parameterized statements that
// surface driver errors untranslated.
package records

import (
	"gorm.io/gorm"

	"github.com/mrlokans/libman/internal/entities"
)

// Repository handles per-entity database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new records repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// BookRow is a book listing row with joined display names. The joins are
// LEFT, so the names are nil when a reference is dangling.
type BookRow struct {
	ID              uint    `json:"bookid"`
	Title           string  `json:"title"`
	AuthorID        uint    `json:"authorid"`
	ISBN            *string `json:"isbn"`
	GenreID         uint    `json:"genreid"`
	PublicationYear *int    `json:"publicationyear"`
	Status          string  `json:"status"`
	AuthorName      *string `json:"author_name"`
	GenreName       *string `json:"genre_name"`
}

// LoanRow is a loan listing row with joined book and member names.
type LoanRow struct {
	ID         uint    `json:"loanid"`
	BookID     uint    `json:"bookid"`
	MemberID   uint    `json:"memberid"`
	IssueDate  string  `json:"issuedate"`
	ReturnDate *string `json:"returndate"`
	Status     string  `json:"status"`
	BookTitle  *string `json:"book_title"`
	MemberName *string `json:"member_name"`
}

// FineRow is a fine listing row with the joined member name.
type FineRow struct {
	ID         uint    `json:"fineid"`
	MemberID   uint    `json:"memberid"`
	Amount     float64 `json:"amount"`
	IssueDate  string  `json:"issuedate"`
	Status     string  `json:"status"`
	MemberName *string `json:"member_name"`
}

// ReservationRow is a reservation listing row with joined names.
type ReservationRow struct {
	ID              uint    `json:"reservationid"`
	BookID          uint    `json:"bookid"`
	MemberID        uint    `json:"memberid"`
	ReservationDate string  `json:"reservationdate"`
	BookTitle       *string `json:"book_title"`
	MemberName      *string `json:"member_name"`
}

// --- Listings ---
// Reference tables come back alphabetical; circulation tables newest first.
// Every listing returns the full set, pagination is not part of the contract.

func (r *Repository) ListGenres() ([]entities.Genre, error) {
	var genres []entities.Genre
	err := r.db.Order("name").Find(&genres).Error
	return genres, err
}

func (r *Repository) ListAuthors() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Order("name").Find(&authors).Error
	return authors, err
}

func (r *Repository) ListPublishers() ([]entities.Publisher, error) {
	var publishers []entities.Publisher
	err := r.db.Order("name").Find(&publishers).Error
	return publishers, err
}

func (r *Repository) ListCategories() ([]entities.Category, error) {
	var categories []entities.Category
	err := r.db.Order("name").Find(&categories).Error
	return categories, err
}

func (r *Repository) ListMembers() ([]entities.Member, error) {
	var members []entities.Member
	err := r.db.Order("name").Find(&members).Error
	return members, err
}

func (r *Repository) ListStaff() ([]entities.LibraryStaff, error) {
	var staff []entities.LibraryStaff
	err := r.db.Order("name").Find(&staff).Error
	return staff, err
}

func (r *Repository) ListBooks() ([]BookRow, error) {
	var rows []BookRow
	err := r.db.Table("books AS b").
		Select("b.id, b.title, b.author_id, b.isbn, b.genre_id, b.publication_year, b.status, a.name AS author_name, g.name AS genre_name").
		Joins("LEFT JOIN authors a ON a.id = b.author_id").
		Joins("LEFT JOIN genres g ON g.id = b.genre_id").
		Order("b.title").
		Scan(&rows).Error
	return rows, err
}

func (r *Repository) ListLoans() ([]LoanRow, error) {
	var rows []LoanRow
	err := r.db.Table("loans AS l").
		Select("l.id, l.book_id, l.member_id, l.issue_date, l.return_date, l.status, b.title AS book_title, m.name AS member_name").
		Joins("LEFT JOIN books b ON b.id = l.book_id").
		Joins("LEFT JOIN members m ON m.id = l.member_id").
		Order("l.issue_date DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *Repository) ListFines() ([]FineRow, error) {
	var rows []FineRow
	err := r.db.Table("fines AS f").
		Select("f.id, f.member_id, f.amount, f.issue_date, f.status, m.name AS member_name").
		Joins("LEFT JOIN members m ON m.id = f.member_id").
		Order("f.issue_date DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *Repository) ListReservations() ([]ReservationRow, error) {
	var rows []ReservationRow
	err := r.db.Table("reservations AS r").
		Select("r.id, r.book_id, r.member_id, r.reservation_date, b.title AS book_title, m.name AS member_name").
		Joins("LEFT JOIN books b ON b.id = r.book_id").
		Joins("LEFT JOIN members m ON m.id = r.member_id").
		Order("r.reservation_date DESC").
		Scan(&rows).Error
	return rows, err
}

// --- Inserts ---
// Each create is a single atomic insert; the server-assigned id is written
// back into the entity.

func (r *Repository) CreateGenre(genre *entities.Genre) error {
	return r.db.Create(genre).Error
}

func (r *Repository) CreateAuthor(author *entities.Author) error {
	return r.db.Create(author).Error
}

func (r *Repository) CreatePublisher(publisher *entities.Publisher) error {
	return r.db.Create(publisher).Error
}

func (r *Repository) CreateCategory(category *entities.Category) error {
	return r.db.Create(category).Error
}

func (r *Repository) CreateBook(book *entities.Book) error {
	return r.db.Create(book).Error
}

func (r *Repository) CreateMember(member *entities.Member) error {
	return r.db.Create(member).Error
}

func (r *Repository) CreateLoan(loan *entities.Loan) error {
	return r.db.Create(loan).Error
}

func (r *Repository) CreateFine(fine *entities.Fine) error {
	return r.db.Create(fine).Error
}

func (r *Repository) CreateReservation(reservation *entities.Reservation) error {
	return r.db.Create(reservation).Error
}

func (r *Repository) CreateStaff(staff *entities.LibraryStaff) error {
	return r.db.Create(staff).Error
}

// --- Existence probes ---
// SQLite foreign-key errors do not say which constraint fired; the record
// service probes the referenced tables after a violation to name the
// dangling reference in its error message.

func (r *Repository) AuthorExists(id uint) (bool, error) {
	return r.exists(&entities.Author{}, id)
}

func (r *Repository) GenreExists(id uint) (bool, error) {
	return r.exists(&entities.Genre{}, id)
}

func (r *Repository) BookExists(id uint) (bool, error) {
	return r.exists(&entities.Book{}, id)
}

func (r *Repository) MemberExists(id uint) (bool, error) {
	return r.exists(&entities.Member{}, id)
}

func (r *Repository) exists(model any, id uint) (bool, error) {
	var count int64
	err := r.db.Model(model).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
