// Package server exposes the response matrix analysis over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/cwbudde/algo-orm/dataset"
	"github.com/cwbudde/algo-orm/measure/orm"
)

// MaxUploadSize bounds the in-memory part of a multipart upload.
const MaxUploadSize = 32 << 20

// run is one loaded table together with its analysis.
type run struct {
	table   *dataset.Table
	result  *orm.Result
	warning *dataset.QualityWarning
}

// Server holds the current run. A successful analysis replaces the run
// wholesale; a failed one leaves it untouched.
type Server struct {
	mu       sync.RWMutex
	current  *run
	analyzer *orm.Analyzer
	opts     []orm.Option
}

// New creates a Server whose runs use opts.
func New(opts ...orm.Option) *Server {
	return &Server{
		analyzer: orm.NewAnalyzer(opts...),
		opts:     opts,
	}
}

// Router returns the HTTP handler. Requests from allowedOrigins pass CORS.
func (s *Server) Router(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	s.RegisterRoutes(r)
	return r
}

// RegisterRoutes mounts the API on r.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", s.health)
	r.Post("/api/analyze", s.analyze)
	r.Get("/api/result", s.result)
	r.Get("/api/spectrum", s.spectrum)
	r.Get("/api/devices", s.devices)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	w.Write([]byte("OK"))
}

// analyze expects a multipart form with the sample table in file field
// "data" and newline separated device names in "correctors" and "bpms".
func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}
	file, _, err := r.FormFile("data")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing data file")
		return
	}
	defer file.Close()

	tbl, warn, err := dataset.Read(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	correctors, err := dataset.ReadDeviceList(strings.NewReader(r.FormValue("correctors")))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	bpms, err := dataset.ReadDeviceList(strings.NewReader(r.FormValue("bpms")))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.analyzer.Run(tbl, correctors, bpms)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, orm.ErrInvalidInput) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, err.Error())
		return
	}

	s.mu.Lock()
	s.current = &run{table: tbl, result: res, warning: warn}
	s.mu.Unlock()

	log.Printf("analyzed %d samples: %d correctors, %d horizontal, %d vertical BPMs",
		res.Samples, len(res.Devices.Actuators), len(res.Devices.Horizontal), len(res.Devices.Vertical))
	writeJSON(w, http.StatusOK, encodeAnalysis(res, warn))
}

func (s *Server) result(w http.ResponseWriter, _ *http.Request) {
	cur := s.snapshot()
	if cur == nil {
		writeError(w, http.StatusNotFound, "no analysis loaded")
		return
	}
	writeJSON(w, http.StatusOK, encodeAnalysis(cur.result, cur.warning))
}

// devices returns time-domain statistics of every resolved device.
func (s *Server) devices(w http.ResponseWriter, _ *http.Request) {
	cur := s.snapshot()
	if cur == nil {
		writeError(w, http.StatusNotFound, "no analysis loaded")
		return
	}
	writeJSON(w, http.StatusOK, encodeDevices(cur.table, cur.result.Devices))
}

// spectrum returns the one-sided spectrum of a column of the current table.
// The device may be given by raw name or by column name.
func (s *Server) spectrum(w http.ResponseWriter, r *http.Request) {
	cur := s.snapshot()
	if cur == nil {
		writeError(w, http.StatusNotFound, "no analysis loaded")
		return
	}
	device := strings.TrimSpace(r.URL.Query().Get("device"))
	if device == "" {
		writeError(w, http.StatusBadRequest, "missing device parameter")
		return
	}

	name := device
	samples, ok := cur.table.Column(name)
	if !ok {
		name = orm.ColumnName(device, s.opts...)
		samples, ok = cur.table.Column(name)
	}
	if !ok {
		writeError(w, http.StatusNotFound, "unknown device "+device)
		return
	}

	freqs, amps, err := orm.DisplaySpectrum(samples)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, spectrumJSON{
		Device:      name,
		Frequencies: numbers(freqs),
		Amplitudes:  numbers(amps),
	})
}

func (s *Server) snapshot() *run {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
