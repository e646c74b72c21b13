package controllers

import (
	"net/http"

	"hotel-reservation-api/models"
	"hotel-reservation-api/services"
	"hotel-reservation-api/utils"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	ContactSvc *services.ContactService
}

func NewContactController(svc *services.ContactService) *ContactController {
	return &ContactController{ContactSvc: svc}
}

type contactStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type contactResponseRequest struct {
	Message string `json:"message" binding:"required"`
}

// CreateContact (POST /api/contacts) — public inbound submission.
func (cc *ContactController) CreateContact(c *gin.Context) {
	var input services.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONValidationError(c, http.StatusBadRequest, "Invalid request payload.", err.Error())
		return
	}

	contact, err := cc.ContactSvc.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "Inquiry received.", contact)
}

// GetContacts (GET /api/contacts?status=&priority=)
func (cc *ContactController) GetContacts(c *gin.Context) {
	filters := services.ContactFilters{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	}
	if filters.Status != "" && !models.IsValidContactStatus(filters.Status) {
		utils.JSONError(c, http.StatusBadRequest, "Unknown status filter.")
		return
	}

	contacts, err := cc.ContactSvc.List(filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Contacts retrieved.", contacts)
}

// UpdateContactStatus (PATCH /api/contacts/:id/status)
func (cc *ContactController) UpdateContactStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req contactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONValidationError(c, http.StatusBadRequest, "Invalid request payload.", err.Error())
		return
	}

	contact, err := cc.ContactSvc.UpdateStatus(id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Contact status updated.", contact)
}

// RespondToContact (POST /api/contacts/:id/response)
func (cc *ContactController) RespondToContact(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req contactResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONValidationError(c, http.StatusBadRequest, "Invalid request payload.", err.Error())
		return
	}

	responder, _ := c.Get("username")
	respondedBy, _ := responder.(string)

	contact, err := cc.ContactSvc.Respond(id, req.Message, respondedBy)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Response recorded.", contact)
}

// DeleteContact (DELETE /api/contacts/:id)
func (cc *ContactController) DeleteContact(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := cc.ContactSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Contact deleted.", nil)
}
