package entities

import "time"

type LoanStatus string

const (
	LoanStatusActive   LoanStatus = "Active"
	LoanStatusReturned LoanStatus = "Returned"
)

type FineStatus string

const (
	FineStatusPending FineStatus = "Pending"
	FineStatusPaid    FineStatus = "Paid"
)

type Loan struct {
	ID        uint    `gorm:"primaryKey" json:"loanid"`
	BookID    uint    `gorm:"not null;index" json:"bookid"`
	Book      *Book   `gorm:"foreignKey:BookID" json:"-"`
	MemberID  uint    `gorm:"not null;index" json:"memberid"`
	Member    *Member `gorm:"foreignKey:MemberID" json:"-"`
	IssueDate string  `gorm:"size:10;not null;index" json:"issuedate"`
	// ReturnDate is nil while the loan is open; when set it is strictly
	// after IssueDate.
	ReturnDate *string    `gorm:"size:10" json:"returndate"`
	Status     LoanStatus `gorm:"size:20;default:Active" json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
}

type Fine struct {
	ID        uint       `gorm:"primaryKey" json:"fineid"`
	MemberID  uint       `gorm:"not null;index" json:"memberid"`
	Member    *Member    `gorm:"foreignKey:MemberID" json:"-"`
	Amount    float64    `gorm:"not null;check:amount >= 0" json:"amount"`
	IssueDate string     `gorm:"size:10;not null;index" json:"issuedate"`
	Status    FineStatus `gorm:"size:20;default:Pending" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

type Reservation struct {
	ID              uint      `gorm:"primaryKey" json:"reservationid"`
	BookID          uint      `gorm:"not null;index" json:"bookid"`
	Book            *Book     `gorm:"foreignKey:BookID" json:"-"`
	MemberID        uint      `gorm:"not null;index" json:"memberid"`
	Member          *Member   `gorm:"foreignKey:MemberID" json:"-"`
	ReservationDate string    `gorm:"size:10;not null;index" json:"reservationdate"`
	CreatedAt       time.Time `json:"created_at"`
}
