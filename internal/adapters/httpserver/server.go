// Package httpserver exposes the storefront API: catalog reads, file
// uploads, and the two email endpoints the order and contact forms depend
// on. The backend is stateless per request; the uploads directory is the
// only durable artifact.
package httpserver

import (
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/harichselvamc/merakiartist/internal/catalog"
	"github.com/harichselvamc/merakiartist/internal/domain"
)

const maxUploadBytes = 25 << 20

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Server struct {
	catalog       *catalog.Catalog
	storage       domain.FileStorage
	mail          domain.MailSender
	uploadsDir    string
	allowedOrigin string
}

func New(cat *catalog.Catalog, storage domain.FileStorage, mailer domain.MailSender, uploadsDir, allowedOrigin string) http.Handler {
	s := &Server{catalog: cat, storage: storage, mail: mailer, uploadsDir: uploadsDir, allowedOrigin: allowedOrigin}
	return s.routes()
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{s.allowedOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/upload", s.handleUpload)
		r.Post("/send-order-confirmation", s.handleSendOrderConfirmation)
		r.Post("/contact", s.handleContact)
		r.Get("/products", s.handleProducts)
		r.Get("/products/{id}", s.handleProductByID)
		r.Get("/offers", s.handleOffers)
	})

	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.uploadsDir))))

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

// handleUpload accepts exactly one multipart "file" field, stores it and
// returns the path and absolute URL it is retrievable under. No server-side
// content-type validation; the form's drop filter is the only gate.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "No file uploaded"})
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "No file uploaded"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil || len(data) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "No file uploaded"})
		return
	}

	path, url, err := s.storage.SaveFile(r.Context(), header.Filename, data)
	if err != nil {
		log.Error().Err(err).Str("file", header.Filename).Msg("store upload")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to store file"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "filePath": path, "fileUrl": url})
}

func (s *Server) handleSendOrderConfirmation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderDetails domain.OrderConfirmation `json:"orderDetails"`
		domain.Customer
		PaymentScreenshotURL string `json:"paymentScreenshotUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid request body"})
		return
	}

	if err := s.mail.SendOrderEmails(r.Context(), req.OrderDetails, req.Customer, req.PaymentScreenshotURL); err != nil {
		log.Error().Err(err).Str("order", req.OrderDetails.OrderID).Msg("order emails")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "Email sending failed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Emails sent"})
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var msg domain.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid request body"})
		return
	}
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)
	if msg.Name == "" || msg.Email == "" || msg.Subject == "" || msg.Message == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "All fields are required"})
		return
	}
	if !emailRe.MatchString(msg.Email) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid email address"})
		return
	}

	if err := s.mail.SendContactEmail(r.Context(), msg); err != nil {
		log.Error().Err(err).Msg("contact email")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to send message"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Message sent"})
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	qv := r.URL.Query()
	list := s.catalog.All()
	if cat := qv.Get("category"); cat != "" {
		list = s.catalog.ByCategory(domain.Category(cat))
	}
	if qv.Get("featured") == "1" || qv.Get("featured") == "true" {
		filtered := []domain.Product{}
		for _, p := range list {
			if p.Featured {
				filtered = append(filtered, p)
			}
		}
		list = filtered
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleProductByID(w http.ResponseWriter, r *http.Request) {
	p, ok := s.catalog.ByID(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "Product not found"})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleOffers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Offers())
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
