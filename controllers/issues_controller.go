// controllers/issues_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/RoyPushkar-kun/Library-Management-System/app"
	"github.com/RoyPushkar-kun/Library-Management-System/library"
)

type IssueController struct{ *Srv }

func NewIssueController(s *Srv) *IssueController { return &IssueController{Srv: s} }

func (ic *IssueController) IssueBook(c *gin.Context) {
	var in struct {
		UserID   string `json:"userId" binding:"required"`
		BookID   string `json:"bookId" binding:"required"`
		LoanDays int    `json:"loanDays"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if in.LoanDays == 0 {
		in.LoanDays = ic.Cfg.LoanDays
	}
	issue, err := ic.Ledger.IssueBook(c.Request.Context(), in.UserID, in.BookID, in.LoanDays)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, issue)
}

func (ic *IssueController) ListIssues(c *gin.Context) {
	issues, err := ic.Ledger.List(c.Request.Context(), library.IssueFilter{
		UserID: c.Query("userId"),
		BookID: c.Query("bookId"),
		Status: c.Query("status"), // open|returned
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"issues": issues})
}

func (ic *IssueController) GetIssue(c *gin.Context) {
	issue, err := ic.Ledger.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, issue)
}

// ReturnBook closes an issue. returnDate and finePaid are optional: a
// blank date means "now", a blank fine means the computed amount.
func (ic *IssueController) ReturnBook(c *gin.Context) {
	var in struct {
		ReturnDate string `json:"returnDate"`
		FinePaid   string `json:"finePaid"`
	}
	// body is optional: a bare return takes the current time and auto fine
	_ = c.ShouldBindJSON(&in)

	var opts library.ReturnOptions
	if in.ReturnDate != "" {
		t, err := library.ParseDate("returnDate", in.ReturnDate)
		if err != nil {
			respondErr(c, err)
			return
		}
		opts.ReturnDate = &t
	}
	if in.FinePaid != "" {
		f, err := decimal.NewFromString(in.FinePaid)
		if err != nil {
			respondErr(c, &library.InvalidInputError{Field: "finePaid", Reason: "expected a decimal amount"})
			return
		}
		opts.Fine = &f
	}

	issue, err := ic.Ledger.ReturnBook(c.Request.Context(), c.Param("id"), opts)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"issue": issue, "finePaid": issue.FinePaid})
}
