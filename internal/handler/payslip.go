package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
)

func (h *Handler) SendPayslip(w http.ResponseWriter, r *http.Request) {
	period := r.Context().Value(PayPeriodCtx).(*payPeriodData)

	var req struct {
		To string `json:"to" validate:"omitempty,email"`
	}

	if r.ContentLength != 0 {
		if err := h.readJSON(r, &req); err != nil {
			h.badRequest(w, r, err)
			return
		}
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if h.mailChannel == nil {
		h.errorResponse(w, r, "未启用邮件队列，无法发送工资单")
		return
	}

	to := req.To
	if to == "" {
		to = h.config.Email.PayslipRecipient
	}
	if to == "" {
		h.errorResponse(w, r, "未指定工资单收件人")
		return
	}

	// 同一周期的工资单在限制时间内只发送一次
	if h.redisClient != nil && h.config.Redis.PayslipThrottle > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.Redis.ConnectTimeout)*time.Second)
		defer cancel()

		key := fmt.Sprintf("%spayslip_%s_%s", h.config.Redis.KeyPrefix, period.Summary.Period.Key, to)
		ok, err := h.redisClient.SetNX(ctx, key, time.Now().Unix(), time.Duration(h.config.Redis.PayslipThrottle)*time.Second).Result()
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		if !ok {
			h.errorResponse(w, r, "工资单发送过于频繁，请稍后再试")
			return
		}
	}

	// 准备邮件
	mailMessage := domain.MailMessage{
		Type: domain.MailTypePayslip,
		To:   to,
		Data: domain.PayslipMailData{
			Summary:     period.Summary,
			Entries:     period.Entries,
			GeneratedAt: time.Now(),
		},
	}

	// 序列化邮件
	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 发送邮件到消息队列中
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	messageID := uuid.NewString()
	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		h.config.RabbitMQ.Queue,
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			MessageId:   messageID,
			Timestamp:   time.Now(),
			Body:        mailData,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "工资单已加入发送队列", map[string]string{"messageId": messageID})
}
