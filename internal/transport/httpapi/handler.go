package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ois/internal/domain"
	"github.com/vladislavdragonenkov/ois/internal/service/intake"
)

// maxInvoiceSize ограничивает размер multipart-формы вместе с документом.
const maxInvoiceSize = 10 << 20

// Handler переводит HTTP-запросы в вызовы сервиса приёма заказов.
type Handler struct {
	svc    *intake.Service
	logger *log.Entry
}

// NewHandler создаёт HTTP-обработчик поверх сервиса.
func NewHandler(svc *intake.Service, logger *log.Entry) *Handler {
	if logger == nil {
		logger = log.New().WithField("component", "httpapi")
	}
	return &Handler{svc: svc, logger: logger}
}

// Register подключает маршруты к роутеру.
func (h *Handler) Register(r chi.Router) {
	r.Post("/orders", h.CreateOrder)
	r.Get("/orders", h.ListOrders)
	r.Get("/orders/{orderID}", h.GetOrder)
	r.Get("/orders/{orderID}/invoice", h.GetInvoice)
}

// CreateOrder принимает multipart/form-data: текстовые поля customerName,
// orderAmount, orderDate и необязательный файл invoiceFile.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxInvoiceSize); err != nil {
		httpError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	customerName := r.FormValue("customerName")
	amountText := r.FormValue("orderAmount")
	dateText := r.FormValue("orderDate")

	invoice, err := readInvoiceFile(r)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.svc.CreateOrder(customerName, amountText, dateText, invoice)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// ListOrders возвращает все заказы.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListOrders()
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetOrder возвращает заказ по идентификатору.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")
	if strings.TrimSpace(orderID) == "" {
		httpError(w, http.StatusBadRequest, "orderID is empty")
		return
	}

	order, err := h.svc.GetOrder(orderID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// GetInvoice отдаёт документ заказа как вложение.
func (h *Handler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")
	if strings.TrimSpace(orderID) == "" {
		httpError(w, http.StatusBadRequest, "orderID is empty")
		return
	}

	data, err := h.svc.GetInvoice(orderID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "invoice-"+orderID+".pdf"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// readInvoiceFile читает необязательный файл из поля invoiceFile.
// Отсутствие поля — не ошибка.
func readInvoiceFile(r *http.Request) (*intake.InvoiceUpload, error) {
	file, header, err := r.FormFile("invoiceFile")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("read invoice file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read invoice file: %w", err)
	}

	return &intake.InvoiceUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		httpError(w, http.StatusBadRequest, err.Error())
	case domain.IsNotFound(err):
		httpError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.WithError(err).Error("request failed")
		httpError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
