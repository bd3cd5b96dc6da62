package controller

import (
	"encoding/json"
	"errors"
	"mime/multipart"

	"likebike_backend/internal/model"
	"likebike_backend/internal/service"
	"likebike_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

func (c *CourseController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courses, err := c.CourseService.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// Create accepts a multipart submission: a "places" field holding the JSON
// place sequence, an optional "photo" for the course and per-place photo
// files whose form field names are referenced from each place's photo field.
func (c *CourseController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var places []model.PlaceInput
	if raw := ctx.PostForm("places"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &places); err != nil {
			util.BadRequest(ctx, "invalid places payload")
			return
		}
	}

	mainPhoto, _ := ctx.FormFile("photo")

	photos := map[string]*multipart.FileHeader{}
	if form, err := ctx.MultipartForm(); err == nil {
		for field, headers := range form.File {
			if len(headers) > 0 {
				photos[field] = headers[0]
			}
		}
	}

	course, err := c.CourseService.Submit(ctx.Request.Context(), claims.UserID, places, mainPhoto, photos)
	if errors.Is(err, util.ErrPlacesRequired) {
		util.BadRequest(ctx, "at least one place is required")
		return
	} else if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, course)
}

func (c *CourseController) WeekCount(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	count, err := c.CourseService.WeekCount(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, count)
}
