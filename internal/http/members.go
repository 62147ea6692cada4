package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/libman/internal/entities"
	"github.com/mrlokans/libman/internal/validation"
)

// MemberService defines the record operations for members and staff.
type MemberService interface {
	ListMembers() ([]entities.Member, error)
	CreateMember(validation.MemberInput) (*entities.Member, error)
	ListStaff() ([]entities.LibraryStaff, error)
	CreateStaff(validation.StaffInput) (*entities.LibraryStaff, error)
}

type MembersController struct {
	service      MemberService
	exposeErrors bool
}

func NewMembersController(service MemberService, exposeErrors bool) *MembersController {
	return &MembersController{service: service, exposeErrors: exposeErrors}
}

// GetAllMembers returns all members, alphabetical by name
// GET /api/members
func (mc *MembersController) GetAllMembers(c *gin.Context) {
	members, err := mc.service.ListMembers()
	if err != nil {
		respondInternalError(c, err, "list members", mc.exposeErrors)
		return
	}
	c.JSON(http.StatusOK, members)
}

// CreateMember creates a new member
// POST /api/members
func (mc *MembersController) CreateMember(c *gin.Context) {
	var in validation.MemberInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	member, err := mc.service.CreateMember(in)
	if err != nil {
		respondDomainError(c, err, "create member", mc.exposeErrors)
		return
	}
	respondCreated(c, "member created", member)
}

// GetAllStaff returns all library staff, alphabetical by name
// GET /api/librarystaff
func (mc *MembersController) GetAllStaff(c *gin.Context) {
	staff, err := mc.service.ListStaff()
	if err != nil {
		respondInternalError(c, err, "list staff", mc.exposeErrors)
		return
	}
	c.JSON(http.StatusOK, staff)
}

// CreateStaff creates a new staff record
// POST /api/librarystaff
func (mc *MembersController) CreateStaff(c *gin.Context) {
	var in validation.StaffInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	staff, err := mc.service.CreateStaff(in)
	if err != nil {
		respondDomainError(c, err, "create staff", mc.exposeErrors)
		return
	}
	respondCreated(c, "staff member created", staff)
}
