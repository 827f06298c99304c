// controllers/users_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RoyPushkar-kun/Library-Management-System/app"
	"github.com/RoyPushkar-kun/Library-Management-System/library"
)

type UserController struct{ *Srv }

func NewUserController(s *Srv) *UserController { return &UserController{Srv: s} }

func (uc *UserController) CreateUser(c *gin.Context) {
	var in struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	u, err := uc.Directory.AddUser(c.Request.Context(), library.AddUserInput{Name: in.Name, Email: in.Email})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.Directory.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"users": users})
}

func (uc *UserController) GetUser(c *gin.Context) {
	u, err := uc.Directory.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	var in struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	u, err := uc.Directory.Update(c.Request.Context(), c.Param("id"), library.UpdateUserInput{Name: in.Name, Email: in.Email})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (uc *UserController) SetActive(c *gin.Context) {
	var in struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if err := uc.Directory.SetActive(c.Request.Context(), c.Param("id"), *in.IsActive); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	if err := uc.Directory.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}
