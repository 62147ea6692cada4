package validation

import (
	"strconv"
	"time"

	"github.com/mrlokans/libman/internal/entities"
)

// LoanInput carries the raw fields of a loan creation request.
type LoanInput struct {
	BookID     Scalar `json:"bookid"`
	MemberID   Scalar `json:"memberid"`
	IssueDate  Scalar `json:"issuedate"`
	ReturnDate Scalar `json:"returndate"`
	Status     Scalar `json:"status"`
}

// Loan validates and normalizes a loan creation request. The return date,
// when present, must fall strictly after the (possibly defaulted) issue
// date; same-day returns are rejected.
func Loan(in LoanInput, now time.Time) (*entities.Loan, error) {
	bookID, verr := intID(in.BookID, "bookid")
	if verr != nil {
		return nil, verr
	}
	memberID, verr := intID(in.MemberID, "memberid")
	if verr != nil {
		return nil, verr
	}

	issueDate, verr := dateOrToday(in.IssueDate, "issuedate", now)
	if verr != nil {
		return nil, verr
	}

	var returnDate *string
	if !in.ReturnDate.empty() {
		rd, verr := date(in.ReturnDate, "returndate")
		if verr != nil {
			return nil, verr
		}
		if rd <= issueDate {
			return nil, errf("returndate", "returndate must be after issuedate")
		}
		returnDate = &rd
	}

	status := entities.LoanStatusActive
	if !in.Status.empty() {
		switch s := entities.LoanStatus(in.Status.String()); s {
		case entities.LoanStatusActive, entities.LoanStatusReturned:
			status = s
		default:
			return nil, errf("status", "status must be Active or Returned")
		}
	}

	return &entities.Loan{
		BookID:     bookID,
		MemberID:   memberID,
		IssueDate:  issueDate,
		ReturnDate: returnDate,
		Status:     status,
	}, nil
}

// FineInput carries the raw fields of a fine creation request.
type FineInput struct {
	MemberID  Scalar `json:"memberid"`
	Amount    Scalar `json:"amount"`
	IssueDate Scalar `json:"issuedate"`
	Status    Scalar `json:"status"`
}

// Fine validates and normalizes a fine creation request.
func Fine(in FineInput, now time.Time) (*entities.Fine, error) {
	memberID, verr := intID(in.MemberID, "memberid")
	if verr != nil {
		return nil, verr
	}

	if in.Amount.empty() {
		return nil, errf("amount", "amount is required")
	}
	amount, err := strconv.ParseFloat(in.Amount.String(), 64)
	if err != nil {
		return nil, errf("amount", "amount must be a number")
	}
	if amount < 0 {
		return nil, errf("amount", "amount must be non-negative")
	}

	issueDate, verr := dateOrToday(in.IssueDate, "issuedate", now)
	if verr != nil {
		return nil, verr
	}

	status := entities.FineStatusPending
	if !in.Status.empty() {
		switch s := entities.FineStatus(in.Status.String()); s {
		case entities.FineStatusPending, entities.FineStatusPaid:
			status = s
		default:
			return nil, errf("status", "status must be Pending or Paid")
		}
	}

	return &entities.Fine{
		MemberID:  memberID,
		Amount:    amount,
		IssueDate: issueDate,
		Status:    status,
	}, nil
}

// ReservationInput carries the raw fields of a reservation creation request.
type ReservationInput struct {
	BookID          Scalar `json:"bookid"`
	MemberID        Scalar `json:"memberid"`
	ReservationDate Scalar `json:"reservationdate"`
}

// Reservation validates and normalizes a reservation creation request.
func Reservation(in ReservationInput, now time.Time) (*entities.Reservation, error) {
	bookID, verr := intID(in.BookID, "bookid")
	if verr != nil {
		return nil, verr
	}
	memberID, verr := intID(in.MemberID, "memberid")
	if verr != nil {
		return nil, verr
	}

	reservationDate, verr := dateOrToday(in.ReservationDate, "reservationdate", now)
	if verr != nil {
		return nil, verr
	}

	return &entities.Reservation{
		BookID:          bookID,
		MemberID:        memberID,
		ReservationDate: reservationDate,
	}, nil
}
