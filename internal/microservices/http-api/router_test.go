package httpapi_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	httpapi "libraryhub/internal/microservices/http-api"
	"libraryhub/internal/microservices/http-api/dto"
	"libraryhub/internal/microservices/http-api/repository"
	"libraryhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAPI builds the full router over a fresh in-memory store.
func newTestAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	logger := slogDiscard()
	return httpapi.NewRouter(httpapi.Dependencies{
		Users:   service.NewUserService(store.Users(), logger),
		Books:   service.NewBookService(store.Books(), logger),
		Borrows: service.NewBorrowService(store.Borrows(), store.Users(), store.Books(), nil, logger),
		Ping:    store.Ping,
		Logger:  logger,
	})
}

func do(t *testing.T, r http.Handler, method, path string, params url.Values) *httptest.ResponseRecorder {
	t.Helper()
	target := path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	req, err := http.NewRequest(method, target, nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, body io.Reader) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(body).Decode(&v))
	return v
}

func createUser(t *testing.T, r http.Handler, username, fullname string) dto.UserResponse {
	w := do(t, r, http.MethodPost, "/users/", url.Values{"username": {username}, "fullname": {fullname}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[dto.UserResponse](t, w.Body)
}

func createBook(t *testing.T, r http.Handler, title, author, isbn string) dto.BookResponse {
	w := do(t, r, http.MethodPost, "/books/", url.Values{"title": {title}, "firstauthor": {author}, "isbn": {isbn}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[dto.BookResponse](t, w.Body)
}

func borrow(t *testing.T, r http.Handler, userID, bookID int64) *httptest.ResponseRecorder {
	return do(t, r, http.MethodPost, "/borrowlist/", url.Values{
		"user_id": {strconv.FormatInt(userID, 10)},
		"book_id": {strconv.FormatInt(bookID, 10)},
	})
}

func TestCreateUser(t *testing.T) {
	r := newTestAPI(t)

	w := do(t, r, http.MethodPost, "/users/", url.Values{"username": {"testuser"}, "fullname": {"Test User"}})
	require.Equal(t, http.StatusOK, w.Code)

	data := decode[map[string]any](t, w.Body)
	assert.Equal(t, "testuser", data["username"])
	assert.Equal(t, "Test User", data["fullname"])
	assert.Contains(t, data, "id")
}

func TestCreateUser_UniqueIDs(t *testing.T) {
	r := newTestAPI(t)

	a := createUser(t, r, "a", "A")
	b := createUser(t, r, "b", "B")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestCreateBook(t *testing.T) {
	r := newTestAPI(t)

	w := do(t, r, http.MethodPost, "/books/", url.Values{"title": {"Test Book"}, "firstauthor": {"Test Author"}, "isbn": {"1234567890"}})
	require.Equal(t, http.StatusOK, w.Code)

	data := decode[map[string]any](t, w.Body)
	assert.Equal(t, "Test Book", data["title"])
	assert.Equal(t, "Test Author", data["firstauthor"])
	assert.Equal(t, "1234567890", data["isbn"])
	assert.Contains(t, data, "id")
}

func TestBorrowBook(t *testing.T) {
	r := newTestAPI(t)
	user := createUser(t, r, "borrower", "Book Borrower")
	book := createBook(t, r, "Test Book", "Test Author", "1234567890")

	w := borrow(t, r, user.ID, book.ID)
	require.Equal(t, http.StatusOK, w.Code)

	data := decode[dto.BorrowResponse](t, w.Body)
	assert.Equal(t, user.ID, data.UserID)
	assert.Equal(t, book.ID, data.BookID)
	assert.NotZero(t, data.ID)
}

func TestViewUserBorrowList(t *testing.T) {
	r := newTestAPI(t)
	user := createUser(t, r, "viewer", "List Viewer")
	book := createBook(t, r, "Another Test Book", "Another Author", "0987654321")
	require.Equal(t, http.StatusOK, borrow(t, r, user.ID, book.ID).Code)

	w := do(t, r, http.MethodGet, "/borrowlist/"+strconv.FormatInt(user.ID, 10), nil)
	require.Equal(t, http.StatusOK, w.Code)

	list := decode[[]dto.BorrowResponse](t, w.Body)
	require.Len(t, list, 1)
	assert.Equal(t, user.ID, list[0].UserID)
	assert.Equal(t, book.ID, list[0].BookID)
}

func TestBorrowList_EmptyForUserWithoutBorrows(t *testing.T) {
	r := newTestAPI(t)
	user := createUser(t, r, "idle", "Never Borrowed")

	w := do(t, r, http.MethodGet, "/borrowlist/"+strconv.FormatInt(user.ID, 10), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestBorrowList_TwoBooksInCreationOrder(t *testing.T) {
	r := newTestAPI(t)
	user := createUser(t, r, "reader", "Avid Reader")
	first := createBook(t, r, "First", "A", "111")
	second := createBook(t, r, "Second", "B", "222")

	require.Equal(t, http.StatusOK, borrow(t, r, user.ID, second.ID).Code)
	require.Equal(t, http.StatusOK, borrow(t, r, user.ID, first.ID).Code)

	w := do(t, r, http.MethodGet, "/borrowlist/"+strconv.FormatInt(user.ID, 10), nil)
	list := decode[[]dto.BorrowResponse](t, w.Body)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].BookID)
	assert.Equal(t, first.ID, list[1].BookID)
}

func TestBorrow_SameBookByTwoUsers(t *testing.T) {
	r := newTestAPI(t)
	u1 := createUser(t, r, "one", "One")
	u2 := createUser(t, r, "two", "Two")
	book := createBook(t, r, "Shared", "Author", "333")

	assert.Equal(t, http.StatusOK, borrow(t, r, u1.ID, book.ID).Code)
	assert.Equal(t, http.StatusOK, borrow(t, r, u2.ID, book.ID).Code)
}

func TestBorrow_UnknownReferences(t *testing.T) {
	r := newTestAPI(t)
	user := createUser(t, r, "u", "U")
	book := createBook(t, r, "B", "A", "1")

	assert.Equal(t, http.StatusNotFound, borrow(t, r, user.ID+100, book.ID).Code)
	assert.Equal(t, http.StatusNotFound, borrow(t, r, user.ID, book.ID+100).Code)
}

func TestCreateUser_Duplicate(t *testing.T) {
	r := newTestAPI(t)
	createUser(t, r, "dup", "First")

	w := do(t, r, http.MethodPost, "/users/", url.Values{"username": {"dup"}, "fullname": {"Second"}})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestMissingParameters(t *testing.T) {
	r := newTestAPI(t)

	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/users/", url.Values{"fullname": {"x"}}).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/books/", url.Values{"isbn": {"x"}}).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/borrowlist/", url.Values{"user_id": {"abc"}, "book_id": {"1"}}).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/borrowlist/abc", nil).Code)
}

func TestCreate_EmptyOptionalFields(t *testing.T) {
	r := newTestAPI(t)

	w := do(t, r, http.MethodPost, "/users/", url.Values{"username": {"u1"}, "fullname": {""}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	user := decode[dto.UserResponse](t, w.Body)
	assert.Equal(t, "u1", user.Username)
	assert.Empty(t, user.FullName)

	w = do(t, r, http.MethodPost, "/books/", url.Values{"title": {"T"}, "firstauthor": {""}, "isbn": {""}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	book := decode[dto.BookResponse](t, w.Body)
	assert.Equal(t, "T", book.Title)
	assert.Empty(t, book.FirstAuthor)
	assert.Empty(t, book.ISBN)

	w = do(t, r, http.MethodPost, "/books/", url.Values{"title": {"No Author"}})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetUserAndBook(t *testing.T) {
	r := newTestAPI(t)
	user := createUser(t, r, "lookup", "Look Up")
	book := createBook(t, r, "Found", "Author", "444")

	w := do(t, r, http.MethodGet, "/users/"+strconv.FormatInt(user.ID, 10), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "lookup", decode[dto.UserResponse](t, w.Body).Username)

	w = do(t, r, http.MethodGet, "/books/"+strconv.FormatInt(book.ID, 10), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Found", decode[dto.BookResponse](t, w.Body).Title)

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/users/999", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/books/999", nil).Code)
}

func TestCheckConn(t *testing.T) {
	r := newTestAPI(t)

	w := do(t, r, http.MethodGet, "/check-conn", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
