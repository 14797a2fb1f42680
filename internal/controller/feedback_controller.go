package controller

import (
	"strconv"

	"edu_hub_backend/internal/service"
	"edu_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	Feedback *service.FeedbackService
}

func NewFeedbackController(feedback *service.FeedbackService) *FeedbackController {
	return &FeedbackController{Feedback: feedback}
}

// swagger:model SubmitFeedbackRequest
type SubmitFeedbackRequest struct {
	CourseID uint   `json:"courseId" binding:"required"`
	Rating   int    `json:"rating" binding:"required"`
	Comment  string `json:"comment"`
}

// List godoc
// @Summary 评价列表
// @Description 可按 courseId 过滤，最新在前
// @Tags 评价
// @Produce  json
// @Security ApiKeyAuth
// @Param   courseId query int false "课程 ID"
// @Success 200 {array} model.Feedback
// @Router /feedback [get]
func (c *FeedbackController) List(ctx *gin.Context) {
	var subjectID uint
	if raw := ctx.Query("courseId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			util.BadRequest(ctx, "invalid courseId")
			return
		}
		subjectID = uint(id)
	}

	feedbacks, err := c.Feedback.List(subjectID)
	if err != nil {
		util.WriteError(ctx, err)
		return
	}
	util.Success(ctx, feedbacks)
}

// Create godoc
// @Summary 提交评价
// @Description 学生给课程打 1-5 分，评语可选；同一课程允许重复评价
// @Tags 评价
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body SubmitFeedbackRequest true "评价内容"
// @Success 201 {object} model.Feedback
// @Failure 400 {object} util.ErrorResponse
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /feedback [post]
func (c *FeedbackController) Create(ctx *gin.Context) {
	account := util.GetAccountFromContext(ctx)
	if account == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	fb, err := c.Feedback.Submit(account, req.CourseID, req.Rating, req.Comment)
	if err != nil {
		util.WriteError(ctx, err)
		return
	}
	util.Created(ctx, fb)
}
