package controller

import (
	"likebike_backend/internal/service"
	"likebike_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NewsController struct {
	NewsService *service.NewsService
}

func NewNewsController(newsService *service.NewsService) *NewsController {
	return &NewsController{NewsService: newsService}
}

func (c *NewsController) List(ctx *gin.Context) {
	items, err := c.NewsService.List(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}
