// controllers/books_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RoyPushkar-kun/Library-Management-System/app"
	"github.com/RoyPushkar-kun/Library-Management-System/library"
)

type BookController struct{ *Srv }

func NewBookController(s *Srv) *BookController { return &BookController{Srv: s} }

func (bc *BookController) CreateBook(c *gin.Context) {
	var in struct {
		Title       string `json:"title" binding:"required"`
		Author      string `json:"author"`
		ISBN        string `json:"isbn"`
		TotalCopies int    `json:"totalCopies"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if in.TotalCopies == 0 {
		in.TotalCopies = 1
	}
	b, err := bc.Catalog.AddBook(c.Request.Context(), library.AddBookInput{
		Title:       in.Title,
		Author:      in.Author,
		ISBN:        in.ISBN,
		TotalCopies: in.TotalCopies,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (bc *BookController) ListBooks(c *gin.Context) {
	books, err := bc.Catalog.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"books": books})
}

func (bc *BookController) GetBook(c *gin.Context) {
	b, err := bc.Catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ResizeBook adjusts how many copies of a title circulate.
func (bc *BookController) ResizeBook(c *gin.Context) {
	var in struct {
		TotalCopies *int `json:"totalCopies" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	b, err := bc.Catalog.Resize(c.Request.Context(), c.Param("id"), *in.TotalCopies)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (bc *BookController) DeleteBook(c *gin.Context) {
	if err := bc.Catalog.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}
