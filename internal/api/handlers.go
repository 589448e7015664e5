package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/matzehuels/spanlayout/pkg/buildinfo"
	"github.com/matzehuels/spanlayout/pkg/errors"
	"github.com/matzehuels/spanlayout/pkg/pipeline"
	"github.com/matzehuels/spanlayout/pkg/render/sysgraph"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

type errorBody struct {
	Error struct {
		Code    errors.Code    `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details,omitempty"`
	} `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string         `json:"status"`
		Build  buildinfo.Info `json:"build"`
	}{"ok", buildinfo.Get()})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	opts, ok := s.decode(w, r)
	if !ok {
		return
	}
	res, err := s.runner.Solve(r.Context(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts, ok := s.decode(w, r)
	if !ok {
		return
	}
	res, err := s.runner.Layout(r.Context(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleRender returns the artifact of the first requested format.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, ok := s.decode(w, r)
	if !ok {
		return
	}
	opts.SetDefaults()
	opts.Formats = opts.Formats[:1]
	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	format := opts.Formats[0]
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Layout-Cache", fmt.Sprint(res.CacheInfo.LayoutHit))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

// handleGraph draws the equation/unknown incidence graph. ?format=svg
// renders through Graphviz; the default is DOT source.
func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	opts, ok := s.decode(w, r)
	if !ok {
		return
	}
	system, err := pipeline.ParseSystem(opts.Constraints)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	res, err := s.runner.Solve(r.Context(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	dot := sysgraph.ToDOT(system, sysgraph.Options{Solution: &res.Solution, Values: true})

	switch format := r.URL.Query().Get("format"); format {
	case "", "dot":
		w.Header().Set("Content-Type", "text/vnd.graphviz")
		_, _ = w.Write([]byte(dot))
	case pipeline.FormatSVG:
		svg, err := sysgraph.RenderSVG(dot)
		if err != nil {
			s.fail(w, r, errors.Wrap(errors.ErrCodeInternal, err, "render graph"))
			return
		}
		w.Header().Set("Content-Type", contentTypes[pipeline.FormatSVG])
		_, _ = w.Write(svg)
	default:
		s.fail(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid graph format: %q (must be dot or svg)", format))
	}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) (pipeline.Options, bool) {
	var opts pipeline.Options
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		s.fail(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return opts, false
	}
	opts.Logger = s.logger.With("id", RequestID(r.Context()))
	return opts, true
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestID(r.Context()), "err", err)
	}
	var body errorBody
	body.Error.Code = errors.GetCode(err)
	if body.Error.Code == "" {
		body.Error.Code = errors.ErrCodeInternal
	}
	body.Error.Message = errors.UserMessage(err)
	body.Error.Details = errors.Details(err)
	body.RequestID = RequestID(r.Context())
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
