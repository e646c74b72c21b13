package controllers

import (
	"net/http"

	"hotel-reservation-api/services"
	"hotel-reservation-api/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AdminSvc *services.AdminService
}

func NewAuthController(svc *services.AdminService) *AuthController {
	return &AuthController{AdminSvc: svc}
}

type loginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login (POST /api/admin/login)
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONValidationError(c, http.StatusBadRequest, "Invalid request payload.", err.Error())
		return
	}

	result, err := ac.AdminSvc.Login(payload.Username, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Login successful.", result)
}

// CreateAdmin (POST /api/admin/users) — privileged provisioning.
func (ac *AuthController) CreateAdmin(c *gin.Context) {
	var input services.CreateAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONValidationError(c, http.StatusBadRequest, "Invalid request payload.", err.Error())
		return
	}

	admin, err := ac.AdminSvc.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "Admin created.", admin)
}

// GetAdmins (GET /api/admin/users)
func (ac *AuthController) GetAdmins(c *gin.Context) {
	admins, err := ac.AdminSvc.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Admins retrieved.", admins)
}
