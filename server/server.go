// Package server implements the packing-list upload web service: an
// embedded single-page form plus a small JSON API for uploading order
// files, polling job status, and downloading the rendered outputs.
package server

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"mime/multipart"
	"path"
	"strings"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/KennedyTaragon/Packing-List-Generator/formats"
	"github.com/KennedyTaragon/Packing-List-Generator/web"
)

// maxUploadBytes caps uploaded order files. DAT files are a few hundred
// KB at most; anything bigger is not an order file.
const maxUploadBytes = 16 << 20

// Server wires the job store, the format registry, and the embedded UI
// behind a fasthttp handler.
type Server struct {
	version string
	jobs    *jobStore
	static  fs.FS
	log     *slog.Logger
}

// New builds a Server. version is embedded in /api/info responses.
func New(version string, log *slog.Logger) (*Server, error) {
	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("loading embedded static files: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		version: version,
		jobs:    newJobStore(),
		static:  static,
		log:     log,
	}, nil
}

// ListenAndServe blocks serving HTTP on addr.
func (s *Server) ListenAndServe(addr string) error {
	srv := &fasthttp.Server{
		Handler:            s.Handle,
		MaxRequestBodySize: maxUploadBytes,
		Name:               "packgen/" + s.version,
	}
	return srv.ListenAndServe(addr)
}

// Handle routes a single request.
func (s *Server) Handle(ctx *fasthttp.RequestCtx) {
	p := string(ctx.Path())
	switch {
	case p == "/api/info":
		s.handleInfo(ctx)
	case p == "/api/upload":
		s.handleUpload(ctx)
	case p == "/api/jobs":
		s.handleJobs(ctx)
	case strings.HasPrefix(p, "/api/jobs/"):
		s.handleJob(ctx, strings.TrimPrefix(p, "/api/jobs/"))
	case strings.HasPrefix(p, "/api/download/"):
		s.handleDownload(ctx, strings.TrimPrefix(p, "/api/download/"))
	default:
		s.handleStatic(ctx, p)
	}
}

// handleInfo reports service identity; also the healthcheck target.
func (s *Server) handleInfo(ctx *fasthttp.RequestCtx) {
	var names []string
	for _, c := range formats.All() {
		names = append(names, c.Name())
	}
	writeJSON(ctx, fasthttp.StatusOK, map[string]interface{}{
		"service": "packing-list-generator",
		"version": s.version,
		"formats": names,
	})
}

// handleUpload accepts one multipart order file, processes it to
// completion on the request goroutine, and returns the finished job.
// Processing is synchronous: order files are small and expansion is
// pure CPU, so there is nothing to gain from a worker pool here.
func (s *Server) handleUpload(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "POST required")
		return
	}
	header, err := ctx.FormFile("file")
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "missing file field")
		return
	}
	data, err := readUpload(header)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "reading upload: "+err.Error())
		return
	}

	job := s.jobs.create(formats.SanitizeFilename(header.Filename))
	s.jobs.setProcessing(job)
	s.log.Info("processing upload", "job", job.ID, "file", job.Filename, "bytes", len(data))

	conv := formats.Detect(job.Filename, data)
	if conv == nil {
		err := fmt.Errorf("unsupported file format: %s", job.Filename)
		s.jobs.fail(job, err)
		s.log.Warn("upload rejected", "job", job.ID, "err", err)
		writeJSON(ctx, fasthttp.StatusUnprocessableEntity, job)
		return
	}

	outputs, summary, err := conv.Convert(job.Filename, data)
	if err != nil {
		s.jobs.fail(job, err)
		s.log.Error("conversion failed", "job", job.ID, "err", err)
		writeJSON(ctx, fasthttp.StatusUnprocessableEntity, job)
		return
	}

	s.jobs.complete(job, summary, outputs)
	s.log.Info("upload processed", "job", job.ID,
		"orders", summary.TotalOrders, "books", summary.TotalBooks,
		"branches", summary.Branches, "warnings", len(summary.Warnings))
	writeJSON(ctx, fasthttp.StatusOK, job)
}

// handleJobs lists recent jobs, newest first.
func (s *Server) handleJobs(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, s.jobs.recent(20))
}

// handleJob returns a single job by id.
func (s *Server) handleJob(ctx *fasthttp.RequestCtx, id string) {
	job := s.jobs.get(id)
	if job == nil {
		writeError(ctx, fasthttp.StatusNotFound, "unknown job")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, job)
}

// handleDownload streams a rendered artifact of a completed job. The
// category query parameter selects among packlist, report, and summary;
// it defaults to the packing-list workbook.
func (s *Server) handleDownload(ctx *fasthttp.RequestCtx, id string) {
	job := s.jobs.get(id)
	if job == nil {
		writeError(ctx, fasthttp.StatusNotFound, "unknown job")
		return
	}
	if job.Status != StatusCompleted {
		writeError(ctx, fasthttp.StatusConflict, "job is "+job.Status)
		return
	}
	category := string(ctx.QueryArgs().Peek("category"))
	if category == "" {
		category = "packlist"
	}
	out := job.output(category)
	if out == nil {
		writeError(ctx, fasthttp.StatusNotFound, "no such output")
		return
	}
	ctx.Response.Header.Set("Content-Disposition",
		`attachment; filename="`+formats.SanitizeFilename(out.Name)+`"`)
	ctx.SetContentType(contentTypeFor(out.Name))
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(out.Data)
}

// handleStatic serves the embedded upload UI.
func (s *Server) handleStatic(ctx *fasthttp.RequestCtx, p string) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "GET required")
		return
	}
	name := strings.TrimPrefix(path.Clean(p), "/")
	if name == "" || name == "." {
		name = "index.html"
	}
	data, err := fs.ReadFile(s.static, name)
	if err != nil {
		writeError(ctx, fasthttp.StatusNotFound, "not found")
		return
	}
	ctx.SetContentType(contentTypeFor(name))
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(data)
}

// readUpload reads one multipart file fully into memory.
func readUpload(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxUploadBytes))
}

// contentTypeFor maps output names to MIME types.
func contentTypeFor(name string) string {
	switch {
	case strings.HasSuffix(name, ".xlsx"):
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case strings.HasSuffix(name, ".csv"):
		return "text/csv; charset=utf-8"
	case strings.HasSuffix(name, ".html"):
		return "text/html; charset=utf-8"
	case strings.HasSuffix(name, ".css"):
		return "text/css; charset=utf-8"
	case strings.HasSuffix(name, ".js"):
		return "application/javascript"
	case strings.HasSuffix(name, ".txt"):
		return "text/plain; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

// writeJSON encodes v as the JSON response body.
func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	ctx.SetContentType("application/json; charset=utf-8")
	ctx.SetStatusCode(status)
	body, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetBodyString(`{"error":"encoding response"}`)
		return
	}
	ctx.SetBody(body)
}

// writeError sends a JSON error payload.
func writeError(ctx *fasthttp.RequestCtx, status int, msg string) {
	writeJSON(ctx, status, map[string]interface{}{
		"status": status,
		"error":  msg,
	})
}
