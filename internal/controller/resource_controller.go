package controller

import (
	"edu_hub_backend/internal/model"
	"edu_hub_backend/internal/service"
	"edu_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResourceController struct {
	Catalog *service.CatalogService
}

func NewResourceController(catalog *service.CatalogService) *ResourceController {
	return &ResourceController{Catalog: catalog}
}

// swagger:model CreateResourceRequest
type CreateResourceRequest struct {
	CourseID    uint   `json:"courseId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Kind        string `json:"kind" binding:"required"`
	URL         string `json:"url" binding:"required"`
	Description string `json:"description"`
}

// Create godoc
// @Summary 添加课程资源
// @Description 只能往自己的课程里添加；kind 取 document/presentation/video/link
// @Tags 资源
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateResourceRequest true "资源信息"
// @Success 201 {object} model.Resource
// @Failure 400 {object} util.ErrorResponse
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /resources [post]
func (c *ResourceController) Create(ctx *gin.Context) {
	account := util.GetAccountFromContext(ctx)
	if account == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resource, err := c.Catalog.CreateResource(account, req.CourseID, req.Title, model.ResourceKind(req.Kind), req.URL, req.Description)
	if err != nil {
		util.WriteError(ctx, err)
		return
	}
	util.Created(ctx, resource)
}

// Delete godoc
// @Summary 删除资源
// @Description 仅限上传者本人
// @Tags 资源
// @Security ApiKeyAuth
// @Param   id path int true "资源 ID"
// @Success 204
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /resources/{id} [delete]
func (c *ResourceController) Delete(ctx *gin.Context) {
	account := util.GetAccountFromContext(ctx)
	if account == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := parseID(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid resource id")
		return
	}

	if err := c.Catalog.DeleteResource(account, id); err != nil {
		util.WriteError(ctx, err)
		return
	}
	util.NoContent(ctx)
}
