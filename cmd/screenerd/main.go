package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/curve-screener/pkg/config"
	"github.com/yourusername/curve-screener/pkg/curve"
	"github.com/yourusername/curve-screener/pkg/feed"
	"github.com/yourusername/curve-screener/pkg/logger"
	"github.com/yourusername/curve-screener/pkg/metrics"
	"github.com/yourusername/curve-screener/pkg/publish"
)

const (
	appName    = "CurveScreenerDaemon"
	appVersion = "1.0.0"
)

var (
	// Command line flags
	configFile = flag.String("config", "./config/screener.yaml", "Configuration file path")
	version    = flag.Bool("version", false, "Print version and exit")
)

// daemon reevaluates the signal on a fixed interval and serves the latest
// snapshot over HTTP.
type daemon struct {
	cfg    *config.ScreenerConfig
	engine *curve.Engine
	feed   *feed.Client
	pub    *publish.Publisher
	log    *zap.Logger

	mu     sync.RWMutex
	latest *curve.Snapshot
}

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("%s version %s\n", appName, appVersion)
		os.Exit(0)
	}

	cfg, err := config.LoadScreenerConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New("screenerd", cfg.Logging.Level, cfg.Logging.Console)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	d := &daemon{
		cfg:  cfg,
		feed: feed.NewClient(cfg.Feed.BaseURL, cfg.Feed.Timeout),
		log:  log,
	}

	d.engine, err = curve.NewEngine(cfg.Engine)
	if err != nil {
		log.Fatal("failed to create engine", zap.Error(err))
	}

	if cfg.Publish.Enabled {
		d.pub, err = publish.NewPublisher(cfg.Publish.NATSAddr, cfg.Publish.Subject)
		if err != nil {
			log.Fatal("failed to connect publisher", zap.Error(err))
		}
		defer d.pub.Close()
		log.Info("publisher connected",
			zap.String("addr", cfg.Publish.NATSAddr),
			zap.String("subject", cfg.Publish.Subject))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var srv *http.Server
	if cfg.API.Enabled {
		srv = d.serveAPI()
	}

	log.Info("daemon started",
		zap.String("version", appVersion),
		zap.Duration("refresh_interval", cfg.RefreshInterval),
		zap.String("symbol_a", cfg.Feed.SymbolA),
		zap.String("symbol_b", cfg.Feed.SymbolB))

	d.run(ctx)

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}
	log.Info("daemon stopped")
}

// run evaluates once immediately, then on every tick until the context ends.
func (d *daemon) run(ctx context.Context) {
	d.evaluate(ctx)

	ticker := time.NewTicker(d.cfg.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.evaluate(ctx)
		}
	}
}

func (d *daemon) evaluate(ctx context.Context) {
	fetchCtx, cancel := context.WithTimeout(ctx, d.cfg.Feed.Timeout)
	defer cancel()

	barsA, barsB, err := d.feed.FetchPair(fetchCtx, d.cfg.Feed.SymbolA, d.cfg.Feed.SymbolB, d.cfg.Feed.WindowDays)
	if err != nil {
		metrics.FeedErrorsTotal.Inc()
		d.log.Error("bar fetch failed", zap.Error(err))
		return
	}

	snap, err := d.engine.Evaluate(barsA, barsB)
	if err != nil {
		metrics.EvaluationErrorsTotal.Inc()
		d.log.Error("evaluation failed", zap.Error(err))
		return
	}

	metrics.EvaluationsTotal.WithLabelValues(string(snap.Signal)).Inc()
	metrics.LatestZ.Set(snap.Z)
	metrics.LatestCurve.Set(snap.Curve)
	metrics.LatestATR.Set(snap.ATR)

	d.mu.Lock()
	d.latest = snap
	d.mu.Unlock()

	d.log.Info("evaluation complete",
		zap.String("date", snap.Date.Format("2006-01-02")),
		zap.Float64("curve", snap.Curve),
		zap.Float64("z", snap.Z),
		zap.Float64("atr", snap.ATR),
		zap.Bool("grind", snap.GrindRegime),
		zap.String("signal", string(snap.Signal)))

	if d.pub != nil {
		if err := d.pub.PublishSnapshot(snap); err != nil {
			d.log.Error("publish failed", zap.Error(err))
		}
	}
}

// serveAPI starts the status listener in the background.
func (d *daemon) serveAPI() *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		d.mu.RLock()
		snap := d.latest
		d.mu.RUnlock()
		if snap == nil {
			http.Error(w, "no evaluation yet", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(snap)
	})
	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", d.cfg.API.Host, d.cfg.API.Port),
		Handler: mux,
	}
	go func() {
		d.log.Info("status API listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			d.log.Error("status API failed", zap.Error(err))
		}
	}()
	return srv
}
