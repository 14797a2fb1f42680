package controller

import (
	"strconv"

	"edu_hub_backend/internal/service"
	"edu_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MessageController struct {
	Messages *service.MessageService
	Hub      *service.NotifyHub
}

func NewMessageController(messages *service.MessageService, hub *service.NotifyHub) *MessageController {
	return &MessageController{Messages: messages, Hub: hub}
}

// SendMessageRequest 收件人按 id 或邮箱寻址，二选一
// swagger:model SendMessageRequest
type SendMessageRequest struct {
	ToID    uint   `json:"toId"`
	ToEmail string `json:"toEmail"`
	Content string `json:"content" binding:"required"`
}

// List godoc
// @Summary 消息列表
// @Description 不带参数返回我参与的全部消息（最新在前）；带 with 返回与对方的双向历史（升序）
// @Tags 消息
// @Produce  json
// @Security ApiKeyAuth
// @Param   with query int false "对方用户 ID"
// @Success 200 {array} model.Message
// @Failure 404 {object} util.ErrorResponse
// @Router /messages [get]
func (c *MessageController) List(ctx *gin.Context) {
	account := util.GetAccountFromContext(ctx)
	if account == nil {
		util.Unauthorized(ctx)
		return
	}

	if raw := ctx.Query("with"); raw != "" {
		peerID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			util.BadRequest(ctx, "invalid peer id")
			return
		}
		messages, err := c.Messages.History(account, uint(peerID))
		if err != nil {
			util.WriteError(ctx, err)
			return
		}
		util.Success(ctx, messages)
		return
	}

	messages, err := c.Messages.ListForUser(account)
	if err != nil {
		util.WriteError(ctx, err)
		return
	}
	util.Success(ctx, messages)
}

// Send godoc
// @Summary 发送消息
// @Description 给另一个账号发私信，落库后向会话主题推送通知
// @Tags 消息
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body SendMessageRequest true "消息内容"
// @Success 201 {object} model.Message
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /messages [post]
func (c *MessageController) Send(ctx *gin.Context) {
	account := util.GetAccountFromContext(ctx)
	if account == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	msg, err := c.Messages.Send(account, req.ToID, req.ToEmail, req.Content)
	if err != nil {
		util.WriteError(ctx, err)
		return
	}
	util.Created(ctx, msg)
}

// HandleWS godoc
// @Summary 会话实时通知
// @Description 订阅与某个对方的会话主题；收到事件后客户端应重新拉取历史
// @Tags 消息
// @Security ApiKeyAuth
// @Param   with query int true "对方用户 ID"
// @Param   token query string true "JWT 令牌"
// @Success 101 {string} string "Switching Protocols"
// @Router /messages/ws [get]
func (c *MessageController) HandleWS(ctx *gin.Context) {
	account := util.GetAccountFromContext(ctx)
	if account == nil {
		util.Unauthorized(ctx)
		return
	}

	peerID, err := strconv.ParseUint(ctx.Query("with"), 10, 64)
	if err != nil || peerID == 0 {
		util.BadRequest(ctx, "invalid peer id")
		return
	}

	service.ServeConversationWS(c.Hub, ctx.Writer, ctx.Request, account.ID, uint(peerID))
}
