// Package telemetry counts UI session events in a prometheus registry.
package telemetry

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	screenViews   *prometheus.CounterVec
	refusedRoutes *prometheus.CounterVec
	deviceToggles *prometheus.CounterVec
	languageSets  *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		screenViews: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smartfarm_screen_views_total",
				Help: "Screens mounted by the navigation controller.",
			},
			[]string{"screen"}),
		refusedRoutes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smartfarm_refused_navigations_total",
				Help: "Navigation requests refused or redirected.",
			},
			[]string{"reason"}),
		deviceToggles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smartfarm_device_toggles_total",
				Help: "Automation device flag flips.",
			},
			[]string{"device", "field"}),
		languageSets: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smartfarm_language_changes_total",
				Help: "Language selections made in settings.",
			},
			[]string{"language"}),
	}
	reg.MustRegister(m.screenViews, m.refusedRoutes, m.deviceToggles, m.languageSets)
	return m
}

// The recording methods accept a nil receiver so callers can run without metrics.

func (m *Metrics) ScreenViewed(screen string) {
	if m == nil {
		return
	}
	m.screenViews.WithLabelValues(screen).Inc()
}

func (m *Metrics) NavigationRefused(reason string) {
	if m == nil {
		return
	}
	m.refusedRoutes.WithLabelValues(reason).Inc()
}

func (m *Metrics) DeviceToggled(device, field string) {
	if m == nil {
		return
	}
	m.deviceToggles.WithLabelValues(device, field).Inc()
}

func (m *Metrics) LanguageChanged(lang string) {
	if m == nil {
		return
	}
	m.languageSets.WithLabelValues(lang).Inc()
}

// Serve exposes the registry on addr until ctx is done.
func Serve(ctx context.Context, addr string, gatherer prometheus.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
