package controller

import (
	"errors"

	"likebike_backend/internal/service"
	"likebike_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BikeLogController struct {
	BikeLogService *service.BikeLogService
}

func NewBikeLogController(bikeLogService *service.BikeLogService) *BikeLogController {
	return &BikeLogController{BikeLogService: bikeLogService}
}

func (c *BikeLogController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	logs, err := c.BikeLogService.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, logs)
}

// Create accepts a multipart submission with a bike photo and a safety gear
// photo plus an optional description. The log is created pending; points are
// only awarded on admin verification.
func (c *BikeLogController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	bikePhoto, _ := ctx.FormFile("bike_photo")
	safetyPhoto, _ := ctx.FormFile("safety_gear_photo")
	description := ctx.PostForm("description")

	log, err := c.BikeLogService.Submit(ctx.Request.Context(), claims.UserID, description, bikePhoto, safetyPhoto)
	if errors.Is(err, util.ErrPhotoRequired) {
		util.BadRequest(ctx, "bike_photo and safety_gear_photo are required")
		return
	} else if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, log)
}

func (c *BikeLogController) TodayCount(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	count, err := c.BikeLogService.TodayCount(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, count)
}
