package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/libman/internal/entities"
)

func TestLoan_Valid(t *testing.T) {
	loan, err := Loan(LoanInput{BookID: "1", MemberID: "2"}, testNow)

	require.NoError(t, err)
	assert.Equal(t, uint(1), loan.BookID)
	assert.Equal(t, uint(2), loan.MemberID)
	assert.Equal(t, "2026-08-31", loan.IssueDate)
	assert.Nil(t, loan.ReturnDate)
	assert.Equal(t, entities.LoanStatusActive, loan.Status)
}

func TestLoan_MissingIDs(t *testing.T) {
	_, err := Loan(LoanInput{MemberID: "2"}, testNow)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "bookid", verr.Field)

	_, err = Loan(LoanInput{BookID: "1", MemberID: "two"}, testNow)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "memberid", verr.Field)
}

func TestLoan_ReturnDateOrdering(t *testing.T) {
	tests := []struct {
		name       string
		issueDate  string
		returnDate string
		valid      bool
	}{
		{"return after issue", "2026-08-01", "2026-08-10", true},
		{"return equals issue", "2026-08-01", "2026-08-01", false},
		{"return before issue", "2026-08-10", "2026-08-01", false},
		{"return after defaulted issue", "", "2026-09-15", true},
		{"return before defaulted issue", "", "2026-08-01", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loan, err := Loan(LoanInput{
				BookID:     "1",
				MemberID:   "1",
				IssueDate:  Scalar(tt.issueDate),
				ReturnDate: Scalar(tt.returnDate),
			}, testNow)

			if tt.valid {
				require.NoError(t, err)
				require.NotNil(t, loan.ReturnDate)
				assert.Equal(t, tt.returnDate, *loan.ReturnDate)
			} else {
				var verr *Error
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "returndate", verr.Field)
			}
		})
	}
}

func TestLoan_BadIssueDate(t *testing.T) {
	_, err := Loan(LoanInput{BookID: "1", MemberID: "1", IssueDate: "yesterday"}, testNow)

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "issuedate", verr.Field)
}

func TestFine_Rules(t *testing.T) {
	fine, err := Fine(FineInput{MemberID: "1", Amount: "12.50"}, testNow)
	require.NoError(t, err)
	assert.Equal(t, 12.5, fine.Amount)
	assert.Equal(t, entities.FineStatusPending, fine.Status)
	assert.Equal(t, "2026-08-31", fine.IssueDate)

	// Zero is a legal amount; negatives are not.
	fine, err = Fine(FineInput{MemberID: "1", Amount: "0"}, testNow)
	require.NoError(t, err)
	assert.Zero(t, fine.Amount)

	var verr *Error
	_, err = Fine(FineInput{MemberID: "1", Amount: "-5"}, testNow)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "amount", verr.Field)

	_, err = Fine(FineInput{MemberID: "1"}, testNow)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "amount", verr.Field)

	_, err = Fine(FineInput{Amount: "5"}, testNow)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "memberid", verr.Field)
}

func TestReservation_Rules(t *testing.T) {
	res, err := Reservation(ReservationInput{BookID: "3", MemberID: "4"}, testNow)
	require.NoError(t, err)
	assert.Equal(t, uint(3), res.BookID)
	assert.Equal(t, uint(4), res.MemberID)
	assert.Equal(t, "2026-08-31", res.ReservationDate)

	var verr *Error
	_, err = Reservation(ReservationInput{MemberID: "4"}, testNow)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "bookid", verr.Field)
}
