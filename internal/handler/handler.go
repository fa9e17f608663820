package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/config"
	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/timecard"
	"go.uber.org/zap"
)

// MailPublisher 由 *amqp.Channel 实现
type MailPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	service     *timecard.Service
	translator  ut.Translator
	log         *zap.Logger
	mailChannel MailPublisher
	redisClient *redis.Client

	Mux *chi.Mux
}

// NewHandler 中 mailCh 和 rdb 可以为 nil，此时不提供发送工资单和发送频率限制
func NewHandler(cfg *config.Config, service *timecard.Service, logger *zap.Logger, mailCh MailPublisher, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		service:     service,
		translator:  trans,
		log:         logger,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.requestID)
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Get("/healthz", h.Healthz)

	h.Mux.Route("/entries", func(r chi.Router) {
		r.Get("/", h.GetAllEntries)
		r.Post("/", h.SaveEntry)
		r.Post("/bulk-delete", h.BulkDeleteEntries)
		r.Route("/{date}", func(r chi.Router) {
			r.Use(h.entryDate)
			r.Get("/", h.GetEntry)
			r.Delete("/", h.DeleteEntry)
		})
	})

	h.Mux.Route("/periods", func(r chi.Router) {
		r.Get("/", h.GetPeriods)
		r.Route("/{key}", func(r chi.Router) {
			r.Use(h.payPeriod)
			r.Get("/summary", h.GetPeriodSummary)
			r.Get("/export.csv", h.ExportPeriodCSV)
			r.Get("/export.xlsx", h.ExportPeriodXLSX)
			r.Post("/payslip", h.SendPayslip)
		})
	})

	h.Mux.Route("/settings", func(r chi.Router) {
		r.Get("/", h.GetSettings)
		r.Put("/", h.UpdateSettings)
	})

	h.Mux.Route("/holidays", func(r chi.Router) {
		r.Get("/", h.GetAllHolidays)
		r.Post("/", h.SaveHoliday)
		r.Post("/import", h.ImportHolidays)
		r.Delete("/{date}", h.DeleteCustomHoliday)
	})

	h.Mux.Post("/reset", h.Reset)
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "服务正常", map[string]string{"environment": h.config.Environment})
}
