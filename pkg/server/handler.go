package server

import (
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	clientdist "github.com/veltaweb/velta/client/dist"
	"github.com/veltaweb/velta/internal/errors"
	"github.com/veltaweb/velta/pkg/assets"
	"github.com/veltaweb/velta/pkg/i18n"
	"github.com/veltaweb/velta/pkg/jsx"
	"github.com/veltaweb/velta/pkg/render"
	"github.com/veltaweb/velta/pkg/router"
)

// Handler serves registered pages, static assets, and the live
// channel. It implements http.Handler.
type Handler struct {
	cfg     Config
	log     *slog.Logger
	metrics *metrics
	tracer  trace.Tracer
	live    *liveHub
	mux     *chi.Mux

	// doc is cfg.Document with asset references resolved once at
	// construction; the resolver does not change per request.
	doc render.Document

	onEvent EventHandler
}

// New builds a Handler from the router's registered pages. The live
// channel, health and metrics endpoints live under the reserved
// /_velta namespace.
func New(cfg Config, rt *router.Router, opts ...Option) *Handler {
	cfg.applyDefaults()

	h := &Handler{
		cfg:     cfg,
		log:     cfg.Logger,
		metrics: newMetrics(cfg.Registry),
		tracer:  otel.Tracer("velta/server"),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.doc = h.resolveDocument()
	h.live = newLiveHub(h.log, h.metrics, h.onEvent)

	mux := chi.NewRouter()
	mux.Use(middleware.RealIP)
	mux.Use(middleware.Recoverer)

	rt.Mount(mux, h.servePage)

	mux.Get(router.ReservedPrefix+"/live", h.live.serve)
	mux.Get(router.ReservedPrefix+"/client.js", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Write(clientdist.VeltaJS)
	})
	mux.Get(router.ReservedPrefix+"/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	mux.Method(http.MethodGet, router.ReservedPrefix+"/metrics", h.metricsHandler())

	if cfg.StaticDir != "" {
		mux.Get(cfg.StaticPrefix+"/*", h.serveStatic)
	}

	h.mux = mux
	return h
}

// Option tweaks a Handler before its routes are mounted.
type Option func(*Handler)

// WithEventHandler installs the live channel event consumer.
func WithEventHandler(fn EventHandler) Option {
	return func(h *Handler) { h.onEvent = fn }
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// Broadcast pushes patches to every connected live session and
// returns the number of sessions reached.
func (h *Handler) Broadcast(patches []Patch) (int, error) {
	return h.live.broadcast(patches)
}

// LiveSessions returns the number of connected live sessions.
func (h *Handler) LiveSessions() int {
	return h.live.sessionCount()
}

// servePage renders a matched route. The page renders fully before
// any byte is written, so render failures fall through to the error
// page with a clean response.
func (h *Handler) servePage(w http.ResponseWriter, r *http.Request, m router.MatchedRoute) {
	start := time.Now()

	spanCtx, span := h.tracer.Start(r.Context(), "velta.page",
		trace.WithAttributes(attribute.String("http.route", m.Pattern)))
	defer span.End()
	r = r.WithContext(spanCtx)

	status := http.StatusOK
	defer func() {
		if rec := recover(); rec != nil {
			status = http.StatusInternalServerError
			span.SetStatus(codes.Error, "component panic")
			h.metrics.renderErrors.WithLabelValues(m.Pattern).Inc()
			h.log.Error("component panic", "route", m.Pattern, "path", r.URL.Path, "panic", rec)
			h.errorPage(w, fmt.Sprintf("%v", rec))
		}
		span.SetAttributes(attribute.Int("http.status_code", status))
		h.metrics.renderDuration.WithLabelValues(m.Pattern).Observe(time.Since(start).Seconds())
		h.metrics.pagesTotal.WithLabelValues(m.Pattern, statusClass(status)).Inc()
	}()

	ctx := jsx.NewContext(r).
		WithParams(m.Params).
		WithLogger(h.log.With("route", m.Pattern))
	assets.With(ctx, h.cfg.Resolver)
	if h.cfg.I18n != nil {
		i18n.With(ctx, h.cfg.I18n.FromRequest(r))
	}

	err := render.Page(w, r, m.Component,
		render.WithContext(ctx),
		render.WithDocument(h.doc))
	if err != nil {
		cerr := errors.FromError(err, "V400")
		status = http.StatusInternalServerError
		span.RecordError(cerr)
		span.SetStatus(codes.Error, "render failed")
		h.metrics.renderErrors.WithLabelValues(m.Pattern).Inc()
		h.log.Error("render failed", "route", m.Pattern, "path", r.URL.Path, "error", cerr)
		h.errorPage(w, cerr.Format())
	}
}

// resolveDocument maps the document's asset references through the
// resolver. References that are already absolute stay as written.
func (h *Handler) resolveDocument() render.Document {
	doc := h.cfg.Document
	if len(doc.StyleSheets) > 0 {
		sheets := make([]string, len(doc.StyleSheets))
		for i, s := range doc.StyleSheets {
			sheets[i] = h.resolveRef(s)
		}
		doc.StyleSheets = sheets
	}
	if len(doc.Scripts) > 0 {
		scripts := make([]render.ScriptTag, len(doc.Scripts))
		copy(scripts, doc.Scripts)
		for i := range scripts {
			if scripts[i].Src != "" {
				scripts[i].Src = h.resolveRef(scripts[i].Src)
			}
		}
		doc.Scripts = scripts
	}
	if doc.ClientScript != "" {
		doc.ClientScript = h.resolveRef(doc.ClientScript)
	}
	return doc
}

func (h *Handler) resolveRef(ref string) string {
	if strings.HasPrefix(ref, "/") || strings.Contains(ref, "://") {
		return ref
	}
	return h.cfg.Resolver.Asset(ref)
}

// errorPage writes the 5xx boundary. Details only leak in dev mode.
func (h *Handler) errorPage(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", render.DefaultContentType)
	w.WriteHeader(http.StatusInternalServerError)
	if h.cfg.Dev {
		fmt.Fprintf(w, "<!DOCTYPE html>\n<html><body><h1>Internal Server Error</h1><pre>%s</pre></body></html>\n",
			html.EscapeString(detail))
		return
	}
	fmt.Fprint(w, "<!DOCTYPE html>\n<html><body><h1>Internal Server Error</h1></body></html>\n")
}

func (h *Handler) metricsHandler() http.Handler {
	if g, ok := h.cfg.Registry.(prometheus.Gatherer); ok {
		return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}

func statusClass(code int) string {
	return fmt.Sprintf("%dxx", code/100)
}
