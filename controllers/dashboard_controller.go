package controllers

import (
	"net/http"

	"github.com/IMxMaYur/health-copilot/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	svc *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{svc: svc}
}

// Overview always answers 200; each card reports its own failure inline so
// one card's error never blanks the other.
func (dc *DashboardController) Overview(c *gin.Context) {
	userID := c.GetUint("userID")
	c.JSON(http.StatusOK, dc.svc.Overview(c.Request.Context(), userID))
}
