package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/phenrril/crmcell/internal/usecase"
)

type Server struct {
	mux       *http.ServeMux
	customers *usecase.CustomerUC
	products  *usecase.ProductUC
	orders    *usecase.OrderUC
	reports   *usecase.ReportUC

	restockThreshold int
	restockAmount    int
}

func New(c *usecase.CustomerUC, p *usecase.ProductUC, o *usecase.OrderUC, rep *usecase.ReportUC) http.Handler {
	s := &Server{
		mux:              http.NewServeMux(),
		customers:        c,
		products:         p,
		orders:           o,
		reports:          rep,
		restockThreshold: envInt("LOW_STOCK_THRESHOLD", 10),
		restockAmount:    envInt("RESTOCK_AMOUNT", 10),
	}
	s.routes()
	return Chain(s.mux,
		RequestID,
		Recovery,
		Logging,
	)
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /api/health", s.apiHealth)

	s.mux.HandleFunc("GET /api/customers", s.apiCustomers)
	s.mux.HandleFunc("POST /api/customers", s.apiCreateCustomer)
	s.mux.HandleFunc("POST /api/customers/bulk", s.apiBulkCreateCustomers)
	s.mux.HandleFunc("POST /api/customers/import", s.apiImportCustomers)

	s.mux.HandleFunc("GET /api/products", s.apiProducts)
	s.mux.HandleFunc("POST /api/products", s.apiCreateProduct)
	s.mux.HandleFunc("POST /api/products/restock", s.apiRestock)

	s.mux.HandleFunc("GET /api/orders", s.apiOrders)
	s.mux.HandleFunc("POST /api/orders", s.apiCreateOrder)

	s.mux.HandleFunc("GET /api/report", s.apiReport)
}

func (s *Server) apiHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) apiCustomers(w http.ResponseWriter, r *http.Request) {
	list, err := s.customers.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list customers")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) apiCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var in usecase.CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := s.customers.Create(r.Context(), in)
	if err != nil {
		log.Error().Err(err).Msg("create customer")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, resultStatus(res.OK), res)
}

type bulkCustomersRequest struct {
	Customers []usecase.CustomerInput `json:"customers"`
}

func (s *Server) apiBulkCreateCustomers(w http.ResponseWriter, r *http.Request) {
	var req bulkCustomersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := s.customers.BulkCreate(r.Context(), req.Customers)
	if err != nil {
		log.Error().Err(err).Msg("bulk create customers")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// apiImportCustomers feeds the rows of an uploaded spreadsheet through the
// same bulk-create path. Columns: name, email, phone.
func (s *Server) apiImportCustomers(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "multipart form expected")
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil || len(data) == 0 {
		writeError(w, http.StatusBadRequest, "empty file")
		return
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid xlsx file")
		return
	}
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid xlsx file")
		return
	}

	inputs := make([]usecase.CustomerInput, 0, len(rows))
	for i, row := range rows {
		if i == 0 && len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "name") {
			continue
		}
		inputs = append(inputs, usecase.CustomerInput{
			Name:  cell(row, 0),
			Email: cell(row, 1),
			Phone: cell(row, 2),
		})
	}

	res, err := s.customers.BulkCreate(r.Context(), inputs)
	if err != nil {
		log.Error().Err(err).Msg("import customers")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func (s *Server) apiProducts(w http.ResponseWriter, r *http.Request) {
	list, err := s.products.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list products")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) apiCreateProduct(w http.ResponseWriter, r *http.Request) {
	var in usecase.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := s.products.Create(r.Context(), in)
	if err != nil {
		log.Error().Err(err).Msg("create product")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, resultStatus(res.OK), res)
}

type restockRequest struct {
	Threshold *int `json:"threshold"`
	Amount    *int `json:"amount"`
}

func (s *Server) apiRestock(w http.ResponseWriter, r *http.Request) {
	threshold := s.restockThreshold
	amount := s.restockAmount
	if r.Body != nil && r.ContentLength != 0 {
		var req restockRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Threshold != nil {
			threshold = *req.Threshold
		}
		if req.Amount != nil {
			amount = *req.Amount
		}
	}
	res, err := s.products.RestockLowStock(r.Context(), threshold, amount)
	if err != nil {
		log.Error().Err(err).Msg("restock products")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) apiOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if raw := r.URL.Query().Get("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "since must be RFC3339")
			return
		}
		list, err := s.orders.ListSince(ctx, since)
		if err != nil {
			log.Error().Err(err).Msg("list orders since")
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, list)
		return
	}
	list, err := s.orders.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("list orders")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

type createOrderRequest struct {
	CustomerID string     `json:"customer_id"`
	ProductIDs []string   `json:"product_ids"`
	OrderDate  *time.Time `json:"order_date"`
}

func (s *Server) apiCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		writeJSON(w, http.StatusOK, usecase.OrderResult{OK: false, Message: "Invalid customer ID."})
		return
	}
	productIDs := make([]uuid.UUID, 0, len(req.ProductIDs))
	for _, raw := range req.ProductIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeJSON(w, http.StatusOK, usecase.OrderResult{OK: false, Message: "One or more product IDs are invalid."})
			return
		}
		productIDs = append(productIDs, id)
	}

	res, err := s.orders.Create(r.Context(), usecase.OrderInput{
		CustomerID: customerID,
		ProductIDs: productIDs,
		OrderDate:  req.OrderDate,
	})
	if err != nil {
		log.Error().Err(err).Msg("create order")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, resultStatus(res.OK), res)
}

func (s *Server) apiReport(w http.ResponseWriter, r *http.Request) {
	rep, err := s.reports.Summary(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("report")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// resultStatus maps a mutation outcome to a transport code: created on
// success, 200 with the structured failure otherwise so callers never have
// to special-case validation problems.
func resultStatus(ok bool) int {
	if ok {
		return http.StatusCreated
	}
	return http.StatusOK
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
