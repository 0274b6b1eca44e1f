package server

import (
	"encoding/json"
	stderrors "errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/histoscene/pkg/buildinfo"
	"github.com/matzehuels/histoscene/pkg/chart"
	"github.com/matzehuels/histoscene/pkg/errors"
	"github.com/matzehuels/histoscene/pkg/pipeline"
	"github.com/matzehuels/histoscene/pkg/render/histogram/geometry"
)

// Response headers describing a render.
const (
	HeaderCache    = "X-Cache"
	HeaderSpecHash = "X-Spec-Hash"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"build":  buildinfo.Current(),
	})
}

func (s *Server) handleDemoList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"demos": chart.DemoNames()})
}

func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	spec, err := chart.Demo(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.render(w, r, spec)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, s.maxBody)
	spec, err := chart.Decode(body, bodyFormat(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.render(w, r, spec)
}

// bodyFormat picks the decoder from the Content-Type header.
func bodyFormat(r *http.Request) string {
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mt {
	case "application/toml", "text/toml", "application/x-toml":
		return chart.FormatTOML
	}
	return chart.FormatJSON
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, spec chart.ChartSpec) {
	opts, err := s.options(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	format := opts.Formats[0]

	res, err := s.runner.Execute(r.Context(), spec, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", pipeline.ContentType(format))
	w.Header().Set(HeaderSpecHash, res.SpecHash)
	if res.CacheInfo.RenderHit {
		w.Header().Set(HeaderCache, "hit")
	} else {
		w.Header().Set(HeaderCache, "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

// options overlays query parameters on the server defaults. A request
// renders exactly one format.
func (s *Server) options(r *http.Request) (pipeline.Options, error) {
	opts := s.defaults
	opts.Formats = []string{pipeline.FormatSVG}
	opts.Logger = s.logger
	q := r.URL.Query()

	if f := q.Get("format"); f != "" {
		if err := pipeline.ValidateFormat(f); err != nil {
			return opts, err
		}
		opts.Formats = []string{f}
	}
	if t := q.Get("ticks"); t != "" {
		mode, err := geometry.ParseTickMode(t)
		if err != nil {
			return opts, err
		}
		opts.Ticks = mode
	}
	for name, dst := range map[string]*bool{"marks": &opts.Marks, "legend": &opts.Legend} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid %s: %q (must be a boolean)", name, v)
		}
		*dst = b
	}
	if v := q.Get("scale"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid scale: %q", v)
		}
		opts.Scale = f
	}
	return opts, nil
}

type errorBody struct {
	Code      errors.Code `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}

// statusFor maps error codes to HTTP statuses.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidInput, errors.ErrCodeUnsupported:
		return http.StatusBadRequest
	case errors.ErrCodeInvalidSpec, errors.ErrCodeInvalidLayout:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	body := errorBody{
		Code:      errors.GetCode(err),
		Message:   errors.UserMessage(err),
		RequestID: RequestID(r.Context()),
	}
	switch {
	case status == http.StatusRequestEntityTooLarge:
		body.Code = errors.ErrCodeInvalidInput
		body.Message = "request body too large"
	case status == http.StatusInternalServerError:
		s.logger.Error("render failed", "err", err, "request_id", body.RequestID)
		body.Code = errors.ErrCodeInternal
		body.Message = "internal error"
	}
	writeJSON(w, status, map[string]errorBody{"error": body})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
