package controllers

import (
	"net/http"

	"foodorder/pkg/resp"
	"foodorder/services"
	"foodorder/utils"

	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	Username  string `form:"username" json:"username"`
	Password  string `form:"password" json:"password"`
	FirstName string `form:"first_name" json:"firstName"`
	LastName  string `form:"last_name" json:"lastName"`
}

type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

type AccountController struct {
	Service *services.AccountService
}

func NewAccountController(s *services.AccountService) *AccountController {
	return &AccountController{Service: s}
}

// POST /account/create
func (a *AccountController) Create(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	acct, err := a.Service.Signup(req.Username, req.Password, req.FirstName, req.LastName)
	if err != nil {
		resp.Flash(c, resp.StatusOf(err), "error", err.Error(), "/account/create", nil)
		return
	}
	token, _, err := a.Service.Login(acct.Username, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Flash(c, http.StatusCreated, "info", "Account created.", "/account", gin.H{"token": token, "account": acct})
}

// POST /account/login
func (a *AccountController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, acct, err := a.Service.Login(req.Username, req.Password)
	if err != nil {
		resp.Flash(c, resp.StatusOf(err), "error", err.Error(), "/account/login", nil)
		return
	}
	resp.Flash(c, http.StatusOK, "", "", "/", gin.H{"token": token, "account": acct})
}

// GET /account
func (a *AccountController) Me(c *gin.Context) {
	acct, err := a.Service.Get(utils.CurrentUsername(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, acct)
}

// POST /account
func (a *AccountController) Update(c *gin.Context) {
	var req services.AccountUpdate
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	acct, err := a.Service.Update(utils.CurrentUsername(c), req)
	if err != nil {
		resp.Flash(c, resp.StatusOf(err), "error", err.Error(), "/account", nil)
		return
	}
	resp.Flash(c, http.StatusOK, "info", "Account updated.", "/account", acct)
}
