package controller

import (
	"net/http"

	"likebike_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB   *gorm.DB
	Mode string
}

func NewHealthController(db *gorm.DB, mode string) *HealthController {
	return &HealthController{DB: db, Mode: mode}
}

// HealthCheck reports service status. In demo mode there is no database, so
// only the mode is reported.
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	if c.DB == nil {
		util.Success(ctx, gin.H{"status": "ok", "mode": c.Mode})
		return
	}

	sqlDB, err := c.DB.DB()
	if err != nil {
		util.InternalServerError(ctx)
		return
	}
	if err := sqlDB.Ping(); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"mode":   c.Mode,
		"components": gin.H{
			"database": "up",
		},
	})
}
