// Package httpapi assembles the library HTTP API: users, books and borrow lists.
package httpapi

import (
	"log/slog"
	"time"

	"libraryhub/internal/microservices/http-api/handler"
	"libraryhub/internal/microservices/http-api/middleware"
	"libraryhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	Users   service.UserService
	Books   service.BookService
	Borrows service.BorrowService
	Ping    handler.PingFunc
	Logger  *slog.Logger

	// zero means the handler default of 5s
	RequestTimeout time.Duration

	// nil disables rate limiting
	RateLimiter *middleware.IPRateLimiter
}

// NewRouter registers every route on a fresh gin engine.
//
//	POST /users/               GET /users/:user_id
//	POST /books/               GET /books/:book_id
//	POST /borrowlist/          GET /borrowlist/:user_id
//	GET  /check-conn
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.RateLimiter != nil {
		r.Use(middleware.RateLimit(deps.RateLimiter))
	}

	r.GET("/check-conn", handler.NewHealthHandler(deps.Ping).Check)

	opts := handler.Options{Logger: deps.Logger, RequestTimeout: deps.RequestTimeout}
	handler.NewUserHandler(deps.Users, opts).RegisterRoutes(r.Group("/users"))
	handler.NewBookHandler(deps.Books, opts).RegisterRoutes(r.Group("/books"))
	handler.NewBorrowHandler(deps.Borrows, opts).RegisterRoutes(r.Group("/borrowlist"))

	return r
}
