package validation

import (
	"strconv"
	"time"

	"github.com/mrlokans/libman/internal/entities"
)

const (
	maxTitleLength = 255
	maxISBNLength  = 13
	minPublishYear = 1000
)

// BookInput carries the raw fields of a book creation request.
type BookInput struct {
	Title           Scalar `json:"title"`
	AuthorID        Scalar `json:"authorid"`
	ISBN            Scalar `json:"isbn"`
	GenreID         Scalar `json:"genreid"`
	PublicationYear Scalar `json:"publicationyear"`
	Status          Scalar `json:"status"`
}

// Book validates and normalizes a book creation request.
//
// Overlong ISBNs are truncated to 13 characters rather than rejected. The
// behavior mirrors an undersized column in the legacy schema and looks like
// a defect, but callers depend on it, so it stays.
func Book(in BookInput, now time.Time) (*entities.Book, error) {
	title := in.Title.String()
	if title == "" {
		return nil, errf("title", "title is required")
	}
	if len(title) > maxTitleLength {
		return nil, errf("title", "title must be at most %d characters", maxTitleLength)
	}

	authorID, verr := intID(in.AuthorID, "authorid")
	if verr != nil {
		return nil, verr
	}
	genreID, verr := intID(in.GenreID, "genreid")
	if verr != nil {
		return nil, verr
	}

	// An absent ISBN stays NULL so the uniqueness index ignores it.
	var isbn *string
	if s := in.ISBN.String(); s != "" {
		if runes := []rune(s); len(runes) > maxISBNLength {
			s = string(runes[:maxISBNLength])
		}
		isbn = &s
	}

	var year *int
	if !in.PublicationYear.empty() {
		maxYear := now.Year() + 1
		y, err := strconv.Atoi(in.PublicationYear.String())
		if err != nil || y < minPublishYear || y > maxYear {
			return nil, errf("publicationyear", "publicationyear must be an integer between %d and %d", minPublishYear, maxYear)
		}
		year = &y
	}

	status := entities.BookStatusAvailable
	if !in.Status.empty() {
		switch s := entities.BookStatus(in.Status.String()); s {
		case entities.BookStatusAvailable, entities.BookStatusBorrowed:
			status = s
		default:
			return nil, errf("status", "status must be Available or Borrowed")
		}
	}

	return &entities.Book{
		Title:           title,
		AuthorID:        authorID,
		ISBN:            isbn,
		GenreID:         genreID,
		PublicationYear: year,
		Status:          status,
	}, nil
}
