package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/IMxMaYur/health-copilot/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RecordController serves both record kinds; the service's kind descriptor
// carries everything type-specific.
type RecordController[R any] struct {
	svc *services.RecordService[R]
}

func NewRecordController[R any](svc *services.RecordService[R]) *RecordController[R] {
	return &RecordController[R]{svc: svc}
}

func (rc *RecordController[R]) List(c *gin.Context) {
	userID := c.GetUint("userID")

	var filter services.ListFilter
	filter.Date = c.Query("date")
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		filter.Limit = n
	}

	records, err := rc.svc.List(c.Request.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, services.ErrInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}

func (rc *RecordController[R]) Create(c *gin.Context) {
	userID := c.GetUint("userID")

	var payload R
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := rc.svc.Create(c.Request.Context(), userID, &payload)
	if err != nil {
		if errors.Is(err, services.ErrInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, row)
}

func (rc *RecordController[R]) Update(c *gin.Context) {
	userID := c.GetUint("userID")
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var payload R
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := rc.svc.Update(c.Request.Context(), userID, id, &payload)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, row)
}

func (rc *RecordController[R]) Delete(c *gin.Context) {
	userID := c.GetUint("userID")
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := rc.svc.Delete(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
