package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dbrecords "github.com/mrlokans/libman/internal/database/records"
	"github.com/mrlokans/libman/internal/entities"
	"github.com/mrlokans/libman/internal/validation"
)

// CatalogService defines the record operations for the catalog tables:
// genres, authors, publishers, categories and books.
type CatalogService interface {
	ListGenres() ([]entities.Genre, error)
	CreateGenre(validation.GenreInput) (*entities.Genre, error)
	ListAuthors() ([]entities.Author, error)
	CreateAuthor(validation.AuthorInput) (*entities.Author, error)
	ListPublishers() ([]entities.Publisher, error)
	CreatePublisher(validation.PublisherInput) (*entities.Publisher, error)
	ListCategories() ([]entities.Category, error)
	CreateCategory(validation.CategoryInput) (*entities.Category, error)
	ListBooks() ([]dbrecords.BookRow, error)
	CreateBook(validation.BookInput) (*entities.Book, error)
}

type CatalogController struct {
	service      CatalogService
	exposeErrors bool
}

func NewCatalogController(service CatalogService, exposeErrors bool) *CatalogController {
	return &CatalogController{service: service, exposeErrors: exposeErrors}
}

// GetAllGenres returns all genres, alphabetical by name
// GET /api/genres
func (cc *CatalogController) GetAllGenres(c *gin.Context) {
	genres, err := cc.service.ListGenres()
	if err != nil {
		respondInternalError(c, err, "list genres", cc.exposeErrors)
		return
	}
	c.JSON(http.StatusOK, genres)
}

// CreateGenre creates a new genre
// POST /api/genres
func (cc *CatalogController) CreateGenre(c *gin.Context) {
	var in validation.GenreInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	genre, err := cc.service.CreateGenre(in)
	if err != nil {
		respondDomainError(c, err, "create genre", cc.exposeErrors)
		return
	}
	respondCreated(c, "genre created", genre)
}

// GetAllAuthors returns all authors, alphabetical by name
// GET /api/authors
func (cc *CatalogController) GetAllAuthors(c *gin.Context) {
	authors, err := cc.service.ListAuthors()
	if err != nil {
		respondInternalError(c, err, "list authors", cc.exposeErrors)
		return
	}
	c.JSON(http.StatusOK, authors)
}

// CreateAuthor creates a new author
// POST /api/authors
func (cc *CatalogController) CreateAuthor(c *gin.Context) {
	var in validation.AuthorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	author, err := cc.service.CreateAuthor(in)
	if err != nil {
		respondDomainError(c, err, "create author", cc.exposeErrors)
		return
	}
	respondCreated(c, "author created", author)
}

// GetAllPublishers returns all publishers, alphabetical by name
// GET /api/publishers
func (cc *CatalogController) GetAllPublishers(c *gin.Context) {
	publishers, err := cc.service.ListPublishers()
	if err != nil {
		respondInternalError(c, err, "list publishers", cc.exposeErrors)
		return
	}
	c.JSON(http.StatusOK, publishers)
}

// CreatePublisher creates a new publisher
// POST /api/publishers
func (cc *CatalogController) CreatePublisher(c *gin.Context) {
	var in validation.PublisherInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	publisher, err := cc.service.CreatePublisher(in)
	if err != nil {
		respondDomainError(c, err, "create publisher", cc.exposeErrors)
		return
	}
	respondCreated(c, "publisher created", publisher)
}

// GetAllCategories returns all categories, alphabetical by name
// GET /api/categories
func (cc *CatalogController) GetAllCategories(c *gin.Context) {
	categories, err := cc.service.ListCategories()
	if err != nil {
		respondInternalError(c, err, "list categories", cc.exposeErrors)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory creates a new category
// POST /api/categories
func (cc *CatalogController) CreateCategory(c *gin.Context) {
	var in validation.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	category, err := cc.service.CreateCategory(in)
	if err != nil {
		respondDomainError(c, err, "create category", cc.exposeErrors)
		return
	}
	respondCreated(c, "category created", category)
}

// GetAllBooks returns all books with author and genre names joined in,
// alphabetical by title
// GET /api/books
func (cc *CatalogController) GetAllBooks(c *gin.Context) {
	books, err := cc.service.ListBooks()
	if err != nil {
		respondInternalError(c, err, "list books", cc.exposeErrors)
		return
	}
	c.JSON(http.StatusOK, books)
}

// CreateBook creates a new book
// POST /api/books
func (cc *CatalogController) CreateBook(c *gin.Context) {
	var in validation.BookInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	book, err := cc.service.CreateBook(in)
	if err != nil {
		respondDomainError(c, err, "create book", cc.exposeErrors)
		return
	}
	respondCreated(c, "book created", book)
}
