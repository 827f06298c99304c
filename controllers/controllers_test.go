package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RoyPushkar-kun/Library-Management-System/config"
	"github.com/RoyPushkar-kun/Library-Management-System/controllers"
	"github.com/RoyPushkar-kun/Library-Management-System/fines"
	"github.com/RoyPushkar-kun/Library-Management-System/library"
	"github.com/RoyPushkar-kun/Library-Management-System/routes"
	"github.com/RoyPushkar-kun/Library-Management-System/storage/memory"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.New()
	catalog := library.NewCatalog(store)
	directory := library.NewDirectory(store)
	calc := fines.NewCalculator(decimal.RequireFromString("1.0"))
	srv := &controllers.Srv{
		Catalog:   catalog,
		Directory: directory,
		Ledger:    library.NewLedger(catalog, directory, store, calc),
		Reports:   library.NewReportEngine(store, store, store),
		Cfg:       config.Config{LoanDays: 14},
	}

	r := gin.New()
	routes.RegisterRoutes(r, srv)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func TestBookLifecycleOverHTTP(t *testing.T) {
	r := newRouter(t)

	w, book := doJSON(t, r, http.MethodPost, "/api/books", gin.H{
		"title": "Clean Code", "author": "Robert C. Martin", "isbn": "9780132350884", "totalCopies": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	bookID := book["id"].(string)
	assert.Equal(t, float64(2), book["availableCopies"])

	// duplicate isbn is a conflict
	w, _ = doJSON(t, r, http.MethodPost, "/api/books", gin.H{"title": "Other", "isbn": "9780132350884"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, book = doJSON(t, r, http.MethodPut, "/api/books/"+bookID+"/copies", gin.H{"totalCopies": 1})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), book["totalCopies"])
	assert.Equal(t, float64(1), book["availableCopies"])

	w, _ = doJSON(t, r, http.MethodDelete, "/api/books/"+bookID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/books/"+bookID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIssueAndReturnOverHTTP(t *testing.T) {
	r := newRouter(t)

	w, book := doJSON(t, r, http.MethodPost, "/api/books", gin.H{"title": "A", "totalCopies": 1})
	require.Equal(t, http.StatusCreated, w.Code)
	w, user := doJSON(t, r, http.MethodPost, "/api/users", gin.H{"name": "Alice"})
	require.Equal(t, http.StatusCreated, w.Code)

	bookID := book["id"].(string)
	userID := user["id"].(string)

	w, issue := doJSON(t, r, http.MethodPost, "/api/issues", gin.H{"userId": userID, "bookId": bookID})
	require.Equal(t, http.StatusCreated, w.Code)
	issueID := issue["id"].(string)

	// the only copy is out
	w, _ = doJSON(t, r, http.MethodPost, "/api/issues", gin.H{"userId": userID, "bookId": bookID})
	assert.Equal(t, http.StatusConflict, w.Code)

	// deleting the book while the issue is open is blocked
	w, _ = doJSON(t, r, http.MethodDelete, "/api/books/"+bookID, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, ret := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/issues/%s/return", issueID), gin.H{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", ret["finePaid"])

	w, _ = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/issues/%s/return", issueID), gin.H{})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestReturnValidationOverHTTP(t *testing.T) {
	r := newRouter(t)

	w, book := doJSON(t, r, http.MethodPost, "/api/books", gin.H{"title": "A"})
	require.Equal(t, http.StatusCreated, w.Code)
	w, user := doJSON(t, r, http.MethodPost, "/api/users", gin.H{"name": "Alice"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, issue := doJSON(t, r, http.MethodPost, "/api/issues", gin.H{
		"userId": user["id"], "bookId": book["id"],
	})
	require.Equal(t, http.StatusCreated, w.Code)
	issueID := issue["id"].(string)

	w, _ = doJSON(t, r, http.MethodPost, "/api/issues/"+issueID+"/return", gin.H{"returnDate": "03/06/2025"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/issues/"+issueID+"/return", gin.H{"finePaid": "-2"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// the issue is still open after the rejected attempts
	w, _ = doJSON(t, r, http.MethodPost, "/api/issues/"+issueID+"/return", gin.H{})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInactiveUserCannotBorrow(t *testing.T) {
	r := newRouter(t)

	w, book := doJSON(t, r, http.MethodPost, "/api/books", gin.H{"title": "A"})
	require.Equal(t, http.StatusCreated, w.Code)
	w, user := doJSON(t, r, http.MethodPost, "/api/users", gin.H{"name": "Alice"})
	require.Equal(t, http.StatusCreated, w.Code)
	userID := user["id"].(string)

	w, _ = doJSON(t, r, http.MethodPut, "/api/users/"+userID+"/active", gin.H{"isActive": false})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/issues", gin.H{"userId": userID, "bookId": book["id"]})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReportSummaryOverHTTP(t *testing.T) {
	r := newRouter(t)

	w, book := doJSON(t, r, http.MethodPost, "/api/books", gin.H{"title": "A", "totalCopies": 2})
	require.Equal(t, http.StatusCreated, w.Code)
	w, user := doJSON(t, r, http.MethodPost, "/api/users", gin.H{"name": "Alice"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/issues", gin.H{"userId": user["id"], "bookId": book["id"]})
	require.Equal(t, http.StatusCreated, w.Code)

	w, summary := doJSON(t, r, http.MethodGet, "/api/reports/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), summary["books"])
	assert.Equal(t, float64(1), summary["users"])
	assert.Equal(t, float64(1), summary["openIssues"])
}
