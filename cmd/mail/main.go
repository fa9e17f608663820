package main

import (
	"context"
	"encoding/json"
	"html/template"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/config"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/logger"
	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// queuedMail 的 Data 先保留原始 JSON，按邮件类型再解码
type queuedMail struct {
	Type string          `json:"type"`
	To   string          `json:"to"`
	Data json.RawMessage `json:"data"`
}

func main() {
	/**********************************************
	 * 读取配置文件
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		// 此时还没有按配置创建的 logger
		bootstrap, _ := zap.NewProduction()
		bootstrap.Error("无法读取配置文件", zap.Error(err))
		os.Exit(1)
	}

	/**********************************************
	 * 创建 logger
	 **********************************************/
	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		bootstrap, _ := zap.NewProduction()
		bootstrap.Error("无法创建 logger", zap.Error(err))
		os.Exit(1)
	}
	defer log.Sync()

	if err := cfg.ValidateMailer(); err != nil {
		log.Error("邮件配置不完整", zap.Error(err))
		return
	}

	/**********************************************
	 * 加载邮件模板
	 **********************************************/
	payslipTmpl, err := template.ParseFiles("./templates/payslip_email.html")
	if err != nil {
		log.Error("无法解析邮件模板", zap.Error(err))
		return
	}

	/**********************************************
	 * 创建邮件客户端
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		log.Error("无法创建邮件客户端", zap.Error(err))
		return
	}
	defer client.Close()

	// 验证邮件客户端是否连接成功
	clientDialCtx, dialCancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer dialCancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		log.Error("无法连接到邮件服务器", zap.Error(err))
		return
	}

	/**********************************************
	 * 连接 RabbitMQ
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		log.Error("无法连接到 RabbitMQ", zap.Error(err))
		return
	}
	defer conn.Close()

	// 创建通道
	ch, err := conn.Channel()
	if err != nil {
		log.Error("无法创建通道", zap.Error(err))
		return
	}
	defer ch.Close()

	// 声明队列
	q, err := ch.QueueDeclare(
		cfg.RabbitMQ.Queue, // 队列名称
		true,               // 是否持久化
		false,              // 是否自动删除，设置为 false 可以避免没有消费者的时候自动删除队列
		false,              // 是否独占，即是否允许多个消费者访问这个队列
		false,              // 是否不等待，设置为 false，即等待 RabbitMQ 确认队列是否创建成功
		nil,                // 额外参数
	)
	if err != nil {
		log.Error("无法声明队列", zap.Error(err))
		return
	}

	// 监听 CTRL+C
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// 消费消息
	msgs, err := ch.Consume(
		q.Name, // 队列
		"",     // 消费者标识，设置为空字符串，表示由 RabbitMQ 自动分配
		false,  // 是否自动确认消息
		false,  // 是否独占队列
		false,  // 是否禁止消费者接受自己发送的消息，必须设置为 false，因为 RabbitMQ 不支持这个参数
		false,  // 是否不等待，等待 RabbitMQ 响应
		nil,    // 额外参数
	)
	if err != nil {
		log.Error("无法消费消息", zap.Error(err))
		os.Exit(1)
	}

	// 用于关闭 goroutine 的上下文
	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					log.Warn("消息通道已关闭")
					return
				}
				log.Info("收到消息", zap.String("messageId", msg.MessageId))

				// 对邮件信息反序列化
				mailMessage := queuedMail{}
				if err := json.Unmarshal(msg.Body, &mailMessage); err != nil {
					log.Error("邮件信息反序列化失败", zap.Error(err))
					_ = msg.Nack(false, false)
					continue
				}

				// 构建邮件
				m := mail.NewMsg()
				if err := m.From(cfg.Email.SMTP.Username); err != nil {
					log.Error("无法设置邮件发件人", zap.Error(err))
					_ = msg.Nack(false, false)
					continue
				}
				if err := m.To(mailMessage.To); err != nil {
					log.Error("无法设置邮件收件人", zap.Error(err))
					_ = msg.Nack(false, false)
					continue
				}

				// 根据邮件类型解析数据
				switch mailMessage.Type {
				case domain.MailTypePayslip:
					data := domain.PayslipMailData{}
					if err := json.Unmarshal(mailMessage.Data, &data); err != nil {
						log.Error("工资单数据反序列化失败", zap.Error(err))
						_ = msg.Nack(false, false)
						continue
					}
					if err := m.SetBodyHTMLTemplate(payslipTmpl, data); err != nil {
						log.Error("无法设置邮件正文", zap.Error(err))
						_ = msg.Nack(false, false)
						continue
					}
					m.Subject("DTR 工资单 - " + data.Summary.Period.Label)
				default:
					log.Error("不支持的邮件类型", zap.String("type", mailMessage.Type))
					_ = msg.Nack(false, false)
					continue
				}

				// 发送邮件
				if err := client.DialAndSend(m); err != nil {
					log.Error("邮件发送失败", zap.Error(err))
					_ = msg.Nack(false, true) // 将消息重新入队
					continue
				}

				// 确认消息
				_ = msg.Ack(false)
				log.Info("工资单已发送", zap.String("to", mailMessage.To))
			}
		}
	}()

	// 等待 CTRL+C 信号
	log.Info("等待消息...（按 CTRL+C 退出）", zap.String("queue", q.Name))
	<-sigChan

	// 优雅退出
	log.Info("正在关闭 mail worker...")
	cancel()
	wg.Wait() // 等待所有 goroutine 完成
	log.Info("mail worker 已成功关闭")
}
