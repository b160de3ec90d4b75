// Package server exposes the extraction and validation engines over
// HTTP.
package server

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rezonia/invoice-qc/internal/config"
	"github.com/rezonia/invoice-qc/internal/extract"
	"github.com/rezonia/invoice-qc/internal/model"
	"github.com/rezonia/invoice-qc/internal/pdftext"
	"github.com/rezonia/invoice-qc/internal/validate"
)

// Server represents the HTTP API server
type Server struct {
	config    *config.Config
	router    *gin.Engine
	extractor *extract.Extractor
	logger    zerolog.Logger
}

// NewServer creates a new API server
func NewServer(cfg *config.Config, logger zerolog.Logger) *Server {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		config:    cfg,
		router:    router,
		extractor: extract.New(),
		logger:    logger,
	}

	router.Use(s.requestLogger())
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/extract", s.handleExtract)
		v1.POST("/validate", s.handleValidate)
		v1.POST("/run", s.handleRun)
		v1.POST("/info", s.handleInfo)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

// requestLogger tags every request with an ID and logs its outcome.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		s.logger.Info().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// handleExtract extracts one invoice from a raw text body. The
// optional X-Source-File header becomes the invoice's source
// identifier.
func (s *Server) handleExtract(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return
	}

	invoice := s.extractor.ExtractText(string(body), c.GetHeader("X-Source-File"))
	c.JSON(http.StatusOK, ExtractResponse{Invoice: invoice})
}

// handleValidate validates a JSON array of invoices. Malformed JSON is
// a structural fault and yields 400; a batch where every invoice fails
// its rules is still a 200 with a full report.
func (s *Server) handleValidate(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return
	}

	invoices, err := model.DecodeInvoices("request", body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid invoice batch",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, validate.ValidateInvoices(invoices))
}

// handleRun accepts multipart PDF uploads under "files", extracts each
// one and validates the batch in upload order. Unreadable PDFs count
// as empty text, not failures.
func (s *Server) handleRun(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "expected multipart form upload"})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no files uploaded"})
		return
	}

	docs := make([]extract.Document, 0, len(files))
	for _, fh := range files {
		if fh.Size > s.config.MaxUploadSize {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
				Error:   "file too large",
				Details: fh.Filename,
			})
			return
		}

		text := s.readUpload(fh.Filename, func() (io.ReadCloser, error) { return fh.Open() })
		docs = append(docs, extract.Document{Text: text, SourceID: fh.Filename})
	}

	invoices := s.extractor.ExtractAll(docs)
	c.JSON(http.StatusOK, RunResponse{
		ExtractedInvoices: invoices,
		Validation:        validate.ValidateInvoices(invoices),
	})
}

// readUpload converts one uploaded PDF to text, degrading to empty
// text on any failure.
func (s *Server) readUpload(name string, open func() (io.ReadCloser, error)) string {
	f, err := open()
	if err != nil {
		s.logger.Warn().Str("file", name).Err(err).Msg("failed to open upload")
		return ""
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		s.logger.Warn().Str("file", name).Err(err).Msg("failed to read upload")
		return ""
	}

	text, err := pdftext.FromBytes(name, data)
	if err != nil {
		s.logger.Warn().Str("file", name).Err(err).Msg("text extraction failed")
		return ""
	}
	return text
}

func (s *Server) handleInfo(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return
	}

	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "empty request body"})
		return
	}

	format := "text"
	var info pdftext.Info
	if pdftext.IsPDF(body) {
		format = "pdf"
		info = pdftext.Inspect(body)
	}

	c.JSON(http.StatusOK, InfoResponse{
		Format: format,
		Size:   len(body),
		PDF:    info,
	})
}
