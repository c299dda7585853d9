package client_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"libraryhub/cmd/cli/command/client"
	httpapi "libraryhub/internal/microservices/http-api"
	"libraryhub/internal/microservices/http-api/dto"
	"libraryhub/internal/microservices/http-api/repository"
	"libraryhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLibraryServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(httpapi.NewRouter(httpapi.Dependencies{
		Users:   service.NewUserService(store.Users(), logger),
		Books:   service.NewBookService(store.Books(), logger),
		Borrows: service.NewBorrowService(store.Borrows(), store.Users(), store.Books(), nil, logger),
		Ping:    store.Ping,
		Logger:  logger,
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPClient_BorrowFlow(t *testing.T) {
	srv := newLibraryServer(t)
	c := client.NewHTTPClient(srv.URL + "/")
	ctx := context.Background()

	require.NoError(t, c.Ping(ctx))

	user, err := c.CreateUser(ctx, dto.CreateUserRequest{Username: "testuser", FullName: "Test User"})
	require.NoError(t, err)
	assert.Equal(t, "testuser", user.Username)
	assert.Equal(t, "Test User", user.FullName)

	book, err := c.CreateBook(ctx, dto.CreateBookRequest{Title: "Test Book", FirstAuthor: "Test Author", ISBN: "1234567890"})
	require.NoError(t, err)
	assert.Equal(t, "Test Author", book.FirstAuthor)

	gotUser, err := c.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, gotUser.ID)

	gotBook, err := c.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "1234567890", gotBook.ISBN)

	empty, err := c.ListBorrows(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)

	record, err := c.Borrow(ctx, user.ID, book.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, record.UserID)
	assert.Equal(t, book.ID, record.BookID)

	list, err := c.ListBorrows(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, record.ID, list[0].ID)
}

func TestHTTPClient_APIErrors(t *testing.T) {
	srv := newLibraryServer(t)
	c := client.NewHTTPClient(srv.URL)
	ctx := context.Background()

	_, err := c.GetUser(ctx, 404)
	require.Error(t, err)
	assert.True(t, client.IsNotFound(err))

	_, err = c.Borrow(ctx, 1, 1)
	assert.True(t, client.IsNotFound(err))

	_, err = c.CreateUser(ctx, dto.CreateUserRequest{Username: "dup", FullName: "One"})
	require.NoError(t, err)
	_, err = c.CreateUser(ctx, dto.CreateUserRequest{Username: "dup", FullName: "Two"})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Message)
	assert.False(t, client.IsNotFound(err))
}

func TestHTTPClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	err := client.NewHTTPClient(srv.URL).Ping(context.Background())
	assert.Error(t, err)
	assert.False(t, client.IsNotFound(err))
}
