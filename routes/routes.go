package routes

import (
	"net/http"
	"strings"

	"distrisur/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func handle(pattern string, fn http.HandlerFunc) {
	http.Handle(pattern, withCORS(http.HandlerFunc(handlers.RecoverWrapper(fn))))
}

func SetupRoutes(
	userHandler *handlers.UserHandler,
	customerHandler *handlers.CustomerHandler,
	driverHandler *handlers.DriverHandler,
	productHandler *handlers.ProductHandler,
	accountHandler *handlers.TransferAccountHandler,
	shipmentHandler *handlers.ShipmentHandler,
	invoiceHandler *handlers.InvoiceHandler,
	paymentHandler *handlers.PaymentHandler,
	companyHandler *handlers.CompanyHandler,
	pdfHandler *handlers.PDFHandler,
) {
	// User routes
	handle("/signup", userHandler.Signup)
	handle("/login", userHandler.Login)

	handle("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Customer routes
	handle("/api/customers", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			customerHandler.List(w, r)
		case http.MethodPost:
			customerHandler.Create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	handle("/api/customers/", func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/api/customers/"):]
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			customerHandler.Get(w, r, id)
		case http.MethodPut:
			customerHandler.Update(w, r, id)
		case http.MethodDelete:
			customerHandler.Delete(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Driver routes
	handle("/api/drivers", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			driverHandler.List(w, r)
		case http.MethodPost:
			driverHandler.Create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	handle("/api/drivers/", func(w http.ResponseWriter, r *http.Request) {
		rest := r.URL.Path[len("/api/drivers/"):]
		if rest == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if id, ok := strings.CutSuffix(rest, "/toggle-status"); ok {
			if r.Method != http.MethodPatch {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			driverHandler.ToggleStatus(w, r, id)
			return
		}
		switch r.Method {
		case http.MethodGet:
			driverHandler.Get(w, r, rest)
		case http.MethodPut:
			driverHandler.Update(w, r, rest)
		case http.MethodDelete:
			driverHandler.Delete(w, r, rest)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Product routes
	handle("/api/products", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			productHandler.List(w, r)
		case http.MethodPost:
			productHandler.Create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	handle("/api/products/", func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/api/products/"):]
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			productHandler.Get(w, r, id)
		case http.MethodPut:
			productHandler.Update(w, r, id)
		case http.MethodDelete:
			productHandler.Delete(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Transfer account routes
	handle("/api/accounts-for-transfer", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			accountHandler.List(w, r)
		case http.MethodPost:
			accountHandler.Create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	handle("/api/accounts-for-transfer/", func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/api/accounts-for-transfer/"):]
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodPut:
			accountHandler.Update(w, r, id)
		case http.MethodDelete:
			accountHandler.Delete(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Shipment routes
	handle("/api/shipments", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			shipmentHandler.List(w, r)
		case http.MethodPost:
			shipmentHandler.Create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	handle("/api/shipments/", func(w http.ResponseWriter, r *http.Request) {
		rest := r.URL.Path[len("/api/shipments/"):]
		if rest == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if id, ok := strings.CutSuffix(rest, "/status"); ok {
			if r.Method != http.MethodPatch {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			shipmentHandler.UpdateStatus(w, r, id)
			return
		}
		switch r.Method {
		case http.MethodGet:
			shipmentHandler.Get(w, r, rest)
		case http.MethodPut:
			shipmentHandler.Update(w, r, rest)
		case http.MethodDelete:
			shipmentHandler.Delete(w, r, rest)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Invoice routes
	handle("/api/invoices", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			invoiceHandler.List(w, r)
		case http.MethodPost:
			invoiceHandler.Create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	handle("/api/invoices/pdf", pdfHandler.InvoicePDF)
	handle("/api/invoices/", func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/api/invoices/"):]
		if id == "" || id == "pdf" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			invoiceHandler.Get(w, r, id)
		case http.MethodPut:
			invoiceHandler.Update(w, r, id)
		case http.MethodDelete:
			invoiceHandler.Delete(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Payment routes
	handle("/api/payments", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			paymentHandler.List(w, r)
		case http.MethodPost:
			paymentHandler.Create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	handle("/api/payments/", func(w http.ResponseWriter, r *http.Request) {
		rest := r.URL.Path[len("/api/payments/"):]
		if rest == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if id, ok := strings.CutPrefix(rest, "invoice/"); ok {
			if r.Method != http.MethodGet {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			paymentHandler.ByInvoice(w, r, id)
			return
		}
		switch r.Method {
		case http.MethodGet:
			paymentHandler.Get(w, r, rest)
		case http.MethodPut:
			paymentHandler.Update(w, r, rest)
		case http.MethodDelete:
			paymentHandler.Delete(w, r, rest)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Company info routes
	handle("/api/company", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			companyHandler.Save(w, r)
		case http.MethodGet:
			companyHandler.Get(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
}
