// Package records orchestrates validate-then-persist for every library
// entity and presents listings with their contractual ordering. It is the
// only place where driver errors get translated into domain categories.
package records

import (
	"time"

	"github.com/mrlokans/libman/internal/database/records"
	"github.com/mrlokans/libman/internal/entities"
	"github.com/mrlokans/libman/internal/validation"
)

// Store defines the persistence operations the service needs.
type Store interface {
	ListGenres() ([]entities.Genre, error)
	ListAuthors() ([]entities.Author, error)
	ListPublishers() ([]entities.Publisher, error)
	ListCategories() ([]entities.Category, error)
	ListMembers() ([]entities.Member, error)
	ListStaff() ([]entities.LibraryStaff, error)
	ListBooks() ([]records.BookRow, error)
	ListLoans() ([]records.LoanRow, error)
	ListFines() ([]records.FineRow, error)
	ListReservations() ([]records.ReservationRow, error)

	CreateGenre(*entities.Genre) error
	CreateAuthor(*entities.Author) error
	CreatePublisher(*entities.Publisher) error
	CreateCategory(*entities.Category) error
	CreateBook(*entities.Book) error
	CreateMember(*entities.Member) error
	CreateLoan(*entities.Loan) error
	CreateFine(*entities.Fine) error
	CreateReservation(*entities.Reservation) error
	CreateStaff(*entities.LibraryStaff) error

	AuthorExists(id uint) (bool, error)
	GenreExists(id uint) (bool, error)
	BookExists(id uint) (bool, error)
	MemberExists(id uint) (bool, error)
}

var _ Store = (*records.Repository)(nil)

// Service composes the validation engine with the persistence gateway.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a record service over the given store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// --- Listings ---

func (s *Service) ListGenres() ([]entities.Genre, error)          { return s.store.ListGenres() }
func (s *Service) ListAuthors() ([]entities.Author, error)        { return s.store.ListAuthors() }
func (s *Service) ListPublishers() ([]entities.Publisher, error)  { return s.store.ListPublishers() }
func (s *Service) ListCategories() ([]entities.Category, error)   { return s.store.ListCategories() }
func (s *Service) ListMembers() ([]entities.Member, error)        { return s.store.ListMembers() }
func (s *Service) ListStaff() ([]entities.LibraryStaff, error)    { return s.store.ListStaff() }
func (s *Service) ListBooks() ([]records.BookRow, error)          { return s.store.ListBooks() }
func (s *Service) ListLoans() ([]records.LoanRow, error)          { return s.store.ListLoans() }
func (s *Service) ListFines() ([]records.FineRow, error)          { return s.store.ListFines() }
func (s *Service) ListReservations() ([]records.ReservationRow, error) {
	return s.store.ListReservations()
}

// --- Creates ---
// Every create validates first, then runs a single insert. Nothing is
// retried; the insert either lands or the error is translated and returned.

func (s *Service) CreateGenre(in validation.GenreInput) (*entities.Genre, error) {
	genre, err := validation.Genre(in)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateGenre(genre); err != nil {
		return nil, translateStoreErr(err, nil)
	}
	return genre, nil
}

func (s *Service) CreateAuthor(in validation.AuthorInput) (*entities.Author, error) {
	author, err := validation.Author(in)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateAuthor(author); err != nil {
		return nil, translateStoreErr(err, nil)
	}
	return author, nil
}

func (s *Service) CreatePublisher(in validation.PublisherInput) (*entities.Publisher, error) {
	publisher, err := validation.Publisher(in)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreatePublisher(publisher); err != nil {
		return nil, translateStoreErr(err, nil)
	}
	return publisher, nil
}

func (s *Service) CreateCategory(in validation.CategoryInput) (*entities.Category, error) {
	category, err := validation.Category(in)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateCategory(category); err != nil {
		return nil, translateStoreErr(err, nil)
	}
	return category, nil
}

func (s *Service) CreateBook(in validation.BookInput) (*entities.Book, error) {
	book, err := validation.Book(in, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateBook(book); err != nil {
		return nil, translateStoreErr(err, func() string {
			if ok, err := s.store.AuthorExists(book.AuthorID); err == nil && !ok {
				return "authorid"
			}
			if ok, err := s.store.GenreExists(book.GenreID); err == nil && !ok {
				return "genreid"
			}
			return ""
		})
	}
	return book, nil
}

func (s *Service) CreateMember(in validation.MemberInput) (*entities.Member, error) {
	member, err := validation.Member(in, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateMember(member); err != nil {
		return nil, translateStoreErr(err, nil)
	}
	return member, nil
}

func (s *Service) CreateLoan(in validation.LoanInput) (*entities.Loan, error) {
	loan, err := validation.Loan(in, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateLoan(loan); err != nil {
		return nil, translateStoreErr(err, s.probeBookAndMember(loan.BookID, loan.MemberID))
	}
	return loan, nil
}

func (s *Service) CreateFine(in validation.FineInput) (*entities.Fine, error) {
	fine, err := validation.Fine(in, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateFine(fine); err != nil {
		return nil, translateStoreErr(err, func() string {
			if ok, err := s.store.MemberExists(fine.MemberID); err == nil && !ok {
				return "memberid"
			}
			return ""
		})
	}
	return fine, nil
}

func (s *Service) CreateReservation(in validation.ReservationInput) (*entities.Reservation, error) {
	reservation, err := validation.Reservation(in, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateReservation(reservation); err != nil {
		return nil, translateStoreErr(err, s.probeBookAndMember(reservation.BookID, reservation.MemberID))
	}
	return reservation, nil
}

func (s *Service) CreateStaff(in validation.StaffInput) (*entities.LibraryStaff, error) {
	staff, err := validation.Staff(in)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateStaff(staff); err != nil {
		return nil, translateStoreErr(err, nil)
	}
	return staff, nil
}

func (s *Service) probeBookAndMember(bookID, memberID uint) func() string {
	return func() string {
		if ok, err := s.store.BookExists(bookID); err == nil && !ok {
			return "bookid"
		}
		if ok, err := s.store.MemberExists(memberID); err == nil && !ok {
			return "memberid"
		}
		return ""
	}
}
