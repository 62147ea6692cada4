package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dbrecords "github.com/mrlokans/libman/internal/database/records"
	"github.com/mrlokans/libman/internal/entities"
	"github.com/mrlokans/libman/internal/validation"
)

// CirculationService defines the record operations for loans, fines and
// reservations.
type CirculationService interface {
	ListLoans() ([]dbrecords.LoanRow, error)
	CreateLoan(validation.LoanInput) (*entities.Loan, error)
	ListFines() ([]dbrecords.FineRow, error)
	CreateFine(validation.FineInput) (*entities.Fine, error)
	ListReservations() ([]dbrecords.ReservationRow, error)
	CreateReservation(validation.ReservationInput) (*entities.Reservation, error)
}

type CirculationController struct {
	service      CirculationService
	exposeErrors bool
}

func NewCirculationController(service CirculationService, exposeErrors bool) *CirculationController {
	return &CirculationController{service: service, exposeErrors: exposeErrors}
}

// GetAllLoans returns all loans with book and member names, newest first
// GET /api/loans
func (cc *CirculationController) GetAllLoans(c *gin.Context) {
	loans, err := cc.service.ListLoans()
	if err != nil {
		respondInternalError(c, err, "list loans", cc.exposeErrors)
		return
	}
	c.JSON(http.StatusOK, loans)
}

// CreateLoan creates a new loan
// POST /api/loans
func (cc *CirculationController) CreateLoan(c *gin.Context) {
	var in validation.LoanInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	loan, err := cc.service.CreateLoan(in)
	if err != nil {
		respondDomainError(c, err, "create loan", cc.exposeErrors)
		return
	}
	respondCreated(c, "loan created", loan)
}

// GetAllFines returns all fines with member names, newest first
// GET /api/fines
func (cc *CirculationController) GetAllFines(c *gin.Context) {
	fines, err := cc.service.ListFines()
	if err != nil {
		respondInternalError(c, err, "list fines", cc.exposeErrors)
		return
	}
	c.JSON(http.StatusOK, fines)
}

// CreateFine creates a new fine
// POST /api/fines
func (cc *CirculationController) CreateFine(c *gin.Context) {
	var in validation.FineInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	fine, err := cc.service.CreateFine(in)
	if err != nil {
		respondDomainError(c, err, "create fine", cc.exposeErrors)
		return
	}
	respondCreated(c, "fine created", fine)
}

// GetAllReservations returns all reservations with book and member names,
// newest first
// GET /api/reservations
func (cc *CirculationController) GetAllReservations(c *gin.Context) {
	reservations, err := cc.service.ListReservations()
	if err != nil {
		respondInternalError(c, err, "list reservations", cc.exposeErrors)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// CreateReservation creates a new reservation
// POST /api/reservations
func (cc *CirculationController) CreateReservation(c *gin.Context) {
	var in validation.ReservationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	reservation, err := cc.service.CreateReservation(in)
	if err != nil {
		respondDomainError(c, err, "create reservation", cc.exposeErrors)
		return
	}
	respondCreated(c, "reservation created", reservation)
}
