package handler

import (
	"net/http"

	"libraryhub/internal/microservices/http-api/dto"
	"libraryhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type BorrowHandler struct {
	base
	svc service.BorrowService
}

func NewBorrowHandler(svc service.BorrowService, opts Options) *BorrowHandler {
	return &BorrowHandler{base: newBase(opts), svc: svc}
}

func (h *BorrowHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/", h.Create)
	rg.GET("/:user_id", h.List)
}

// Create borrows a book for a user
func (h *BorrowHandler) Create(c *gin.Context) {
	var req dto.CreateBorrowRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	record, err := h.svc.Borrow(ctx, req.UserID, req.BookID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromBorrowModel(*record))
}

// List returns the user's borrow list as a JSON array
func (h *BorrowHandler) List(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	records, err := h.svc.ListByUser(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromBorrowModels(records))
}
