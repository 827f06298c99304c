package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/RoyPushkar-kun/Library-Management-System/controllers"
)

func RegisterRoutes(r *gin.Engine, s *controllers.Srv) {
	bookCtl := controllers.NewBookController(s)
	userCtl := controllers.NewUserController(s)
	issueCtl := controllers.NewIssueController(s)
	reportCtl := controllers.NewReportController(s)

	books := r.Group("/api/books")
	{
		books.POST("", bookCtl.CreateBook)
		books.GET("", bookCtl.ListBooks)
		books.GET("/:id", bookCtl.GetBook)
		books.PUT("/:id/copies", bookCtl.ResizeBook)
		books.DELETE("/:id", bookCtl.DeleteBook)
	}

	users := r.Group("/api/users")
	{
		users.POST("", userCtl.CreateUser)
		users.GET("", userCtl.ListUsers)
		users.GET("/:id", userCtl.GetUser)
		users.PUT("/:id", userCtl.UpdateUser)
		users.PUT("/:id/active", userCtl.SetActive)
		users.DELETE("/:id", userCtl.DeleteUser)
	}

	issues := r.Group("/api/issues")
	{
		issues.POST("", issueCtl.IssueBook)
		issues.GET("", issueCtl.ListIssues) // ?status=open|returned&userId=&bookId=
		issues.GET("/:id", issueCtl.GetIssue)
		issues.POST("/:id/return", issueCtl.ReturnBook)
	}

	reports := r.Group("/api/reports")
	{
		reports.GET("/summary", reportCtl.Summary)
	}
}
