package handler

import (
	"net/http"

	"libraryhub/internal/microservices/http-api/dto"
	"libraryhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	base
	svc service.BookService
}

func NewBookHandler(svc service.BookService, opts Options) *BookHandler {
	return &BookHandler{base: newBase(opts), svc: svc}
}

func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/", h.Create)
	rg.GET("/:book_id", h.Get)
}

func (h *BookHandler) Create(c *gin.Context) {
	var in dto.CreateBookRequest
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	book, err := h.svc.Create(ctx, in.Title, in.FirstAuthor, in.ISBN)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromBookModel(*book))
}

func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "book_id")
	if !ok {
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	book, err := h.svc.GetByID(ctx, id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromBookModel(*book))
}
