package entities

import "time"

type BookStatus string

const (
	BookStatusAvailable BookStatus = "Available"
	BookStatusBorrowed  BookStatus = "Borrowed"
)

// Genre is a reference table row; books point at it via GenreID.
type Genre struct {
	ID        uint      `gorm:"primaryKey" json:"genreid"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Author struct {
	ID        uint      `gorm:"primaryKey" json:"authorid"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
}

type Publisher struct {
	ID        uint      `gorm:"primaryKey" json:"publisherid"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"categoryid"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Book struct {
	ID       uint    `gorm:"primaryKey" json:"bookid"`
	Title    string  `gorm:"size:255;not null;index" json:"title"`
	AuthorID uint    `gorm:"not null;index" json:"authorid"`
	Author   *Author `gorm:"foreignKey:AuthorID" json:"-"`
	// ISBN is capped at 13 characters; longer input is truncated upstream,
	// never rejected.
	ISBN            *string    `gorm:"uniqueIndex;size:13" json:"isbn"`
	GenreID         uint       `gorm:"not null;index" json:"genreid"`
	Genre           *Genre     `gorm:"foreignKey:GenreID" json:"-"`
	PublicationYear *int       `json:"publicationyear"`
	Status          BookStatus `gorm:"size:20;default:Available" json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
}
