// Package server exposes the calculators over an HTTP JSON API.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/iwvelando/finlit/internal/config"
	"github.com/iwvelando/finlit/internal/scenario"
	"github.com/iwvelando/finlit/pkg/budget"
	"github.com/iwvelando/finlit/pkg/constants"
	"github.com/iwvelando/finlit/pkg/output"
	"github.com/iwvelando/finlit/pkg/rules"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger        *zap.Logger
	table         *rules.Table
	runner        *scenario.Runner
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler serving the country and report API.
// A nil classifier uses the built-in keyword rules.
func NewHandler(logger *zap.Logger, table *rules.Table, classifier *budget.Classifier, maxUploadSize int64, version string) (http.Handler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	runner, err := scenario.NewRunner(logger, table, classifier)
	if err != nil {
		return nil, err
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:        logger,
		table:         table,
		runner:        runner,
		maxUploadSize: maxUploadSize,
		version:       trimmedVersion,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/countries", h.handleCountries)
		r.Get("/countries/{key}", h.handleCountry)
		r.Post("/report", h.handleReport)
		r.Get("/version", h.handleVersion)
	})

	return r, nil
}

// logRequests logs every request at debug level once it completes.
func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("request served",
			zap.String("op", "server.logRequests"),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

type countryResponse struct {
	Key   string             `json:"key"`
	Known bool               `json:"known"`
	Rules rules.CountryRules `json:"rules"`
}

type countriesResponse struct {
	Countries map[string]rules.CountryRules `json:"countries"`
}

type reportRequest struct {
	Scenarios       []config.Scenario `yaml:"scenarios"`
	config.Scenario `yaml:",inline"`
}

type reportResponse struct {
	Reports  []scenario.Report `json:"reports"`
	CSV      string            `json:"csv"`
	Warnings []string          `json:"warnings,omitempty"`
	Duration string            `json:"duration"`
}

func (h *handler) handleCountries(w http.ResponseWriter, r *http.Request) {
	if key := strings.TrimSpace(r.URL.Query().Get("country")); key != "" {
		h.writeCountry(w, key)
		return
	}

	resp := countriesResponse{Countries: make(map[string]rules.CountryRules)}
	for _, key := range h.table.Keys() {
		resp.Countries[key] = h.table.Lookup(key)
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleCountry(w http.ResponseWriter, r *http.Request) {
	h.writeCountry(w, chi.URLParam(r, "key"))
}

// writeCountry reports the rules applied for key. Unknown keys get the
// global rules with Known unset.
func (h *handler) writeCountry(w http.ResponseWriter, key string) {
	h.writeJSON(w, http.StatusOK, countryResponse{
		Key:   strings.ToLower(strings.TrimSpace(key)),
		Known: h.table.Has(key),
		Rules: h.table.Lookup(key),
	})
}

// handleReport accepts a single scenario or {"scenarios": [...]} as JSON (or
// YAML) using the configuration file's keys. Every submitted scenario is
// computed, whether or not it is marked active.
func (h *handler) handleReport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleReport"

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to read request: %v", err), op)
		return
	}

	scenarios, err := decodeScenarios(body)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	reports := make([]scenario.Report, 0, len(scenarios))
	for _, sc := range scenarios {
		reports = append(reports, h.runner.Report(sc))
	}

	csvData, err := output.CsvString(reports)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to render CSV: %v", err), op)
		return
	}

	conf := config.Configuration{Scenarios: scenarios}
	for i := range conf.Scenarios {
		conf.Scenarios[i].Active = true
	}

	h.writeJSON(w, http.StatusOK, reportResponse{
		Reports:  reports,
		CSV:      csvData,
		Warnings: conf.ValidateConfiguration(h.table),
		Duration: time.Since(start).String(),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func decodeScenarios(body []byte) ([]config.Scenario, error) {
	if strings.TrimSpace(string(body)) == "" {
		return nil, errors.New("request body is empty")
	}

	var req reportRequest
	if err := yaml.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("failed to decode scenarios: %v", err)
	}
	if len(req.Scenarios) > 0 {
		return req.Scenarios, nil
	}
	if req.Scenario.Name == "" && req.Scenario.MonthlyIncome == 0 && req.Scenario.MonthlyExpenses == 0 {
		return nil, errors.New("no scenarios in request")
	}
	return []config.Scenario{req.Scenario}, nil
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
		buf.Reset()
		status = http.StatusInternalServerError
		_ = json.NewEncoder(&buf).Encode(map[string]string{"error": "failed to encode response"})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn("failed to write response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
