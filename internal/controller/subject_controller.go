package controller

import (
	"strconv"

	"edu_hub_backend/internal/model"
	"edu_hub_backend/internal/service"
	"edu_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubjectController struct {
	Catalog  *service.CatalogService
	Feedback *service.FeedbackService
}

func NewSubjectController(catalog *service.CatalogService, feedback *service.FeedbackService) *SubjectController {
	return &SubjectController{Catalog: catalog, Feedback: feedback}
}

// swagger:model CreateSubjectRequest
type CreateSubjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ExternalURL string `json:"externalUrl"`
}

// subjectDetail 课程详情页一次拉全：资源、评价、均分
type subjectDetail struct {
	*model.Subject
	Resources     []model.Resource `json:"resources"`
	Feedbacks     []model.Feedback `json:"feedbacks"`
	AverageRating string           `json:"averageRating"`
}

// List godoc
// @Summary 课程目录
// @Description 公开接口，按名称排序
// @Tags 课程
// @Produce  json
// @Success 200 {array} model.Subject
// @Router /courses [get]
func (c *SubjectController) List(ctx *gin.Context) {
	subjects, err := c.Catalog.ListSubjects()
	if err != nil {
		util.WriteError(ctx, err)
		return
	}
	util.Success(ctx, subjects)
}

// Get godoc
// @Summary 课程详情
// @Description 课程及其资源、评价和平均评分
// @Tags 课程
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课程 ID"
// @Success 200 {object} subjectDetail
// @Failure 404 {object} util.ErrorResponse
// @Router /courses/{id} [get]
func (c *SubjectController) Get(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	subject, resources, err := c.Catalog.GetSubject(id)
	if err != nil {
		util.WriteError(ctx, err)
		return
	}

	feedbacks, err := c.Feedback.List(id)
	if err != nil {
		util.WriteError(ctx, err)
		return
	}
	average, err := c.Feedback.Average(id)
	if err != nil {
		util.WriteError(ctx, err)
		return
	}

	util.Success(ctx, subjectDetail{
		Subject:       subject,
		Resources:     resources,
		Feedbacks:     feedbacks,
		AverageRating: average,
	})
}

// Create godoc
// @Summary 创建课程
// @Tags 课程
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateSubjectRequest true "课程信息"
// @Success 201 {object} model.Subject
// @Failure 400 {object} util.ErrorResponse
// @Failure 403 {object} util.ErrorResponse
// @Router /courses [post]
func (c *SubjectController) Create(ctx *gin.Context) {
	account := util.GetAccountFromContext(ctx)
	if account == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subject, err := c.Catalog.CreateSubject(account, req.Name, req.Description, req.ExternalURL)
	if err != nil {
		util.WriteError(ctx, err)
		return
	}
	util.Created(ctx, subject)
}

// Delete godoc
// @Summary 删除课程
// @Description 仅限属主教师；课程下的资源与评价一并删除
// @Tags 课程
// @Security ApiKeyAuth
// @Param   id path int true "课程 ID"
// @Success 204
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /courses/{id} [delete]
func (c *SubjectController) Delete(ctx *gin.Context) {
	account := util.GetAccountFromContext(ctx)
	if account == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := parseID(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	if err := c.Catalog.DeleteSubject(account, id); err != nil {
		util.WriteError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	return uint(id), err
}
