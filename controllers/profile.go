package controllers

import (
	"net/http"

	"omex-backend/store"
	"omex-backend/utils"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Store *store.Store
}

func NewProfileController(s *store.Store) *ProfileController {
	return &ProfileController{Store: s}
}

func (p *ProfileController) GetProfile(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}

	user, err := p.Store.GetUser(userID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":                 user.Email,
		"businessName":          user.BusinessName,
		"phone":                 user.Phone,
		"currency":              user.Currency,
		"lowStockAlerts":        user.LowStockAlerts,
		"whatsAppNotifications": user.WhatsAppNotifications,
		"smsNotifications":      user.SMSNotifications,
	})
}

func (p *ProfileController) UpdateProfile(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}

	var patch store.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	user, err := p.Store.UpdateUser(userID, patch)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated",
		"user": gin.H{
			"businessName": user.BusinessName,
			"phone":        user.Phone,
			"currency":     user.Currency,
		},
	})
}
