package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nguyentantai21042004/video-digest/internal/agent"
	"github.com/nguyentantai21042004/video-digest/internal/config"
	"github.com/nguyentantai21042004/video-digest/internal/export"
	"github.com/nguyentantai21042004/video-digest/internal/llm"
	"github.com/nguyentantai21042004/video-digest/internal/logger"
	"github.com/nguyentantai21042004/video-digest/internal/metadata"
	"github.com/nguyentantai21042004/video-digest/internal/transcript"
	"github.com/nguyentantai21042004/video-digest/internal/watcher"
	"github.com/nguyentantai21042004/video-digest/pkg/executor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	var (
		configPath  = flag.String("config", "config.yaml", "path to the YAML config file")
		videoURL    = flag.String("url", "", "video URL to summarize (or pass it as the first argument)")
		jsonOut     = flag.Bool("json", false, "print the final state as JSON")
		watch       = flag.Bool("watch", false, "watch the input folder for .url/.txt drop files")
		metricsAddr = flag.String("metrics", "", "serve Prometheus metrics on this address (overrides metrics.addr)")
		save        = flag.Bool("save", false, "save the summary as markdown in the output folder")
	)
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if errors.Is(err, config.ErrMissingAPIKey) {
			fmt.Fprintln(os.Stderr, "Missing LLM API key: set GOOGLE_API_KEY (or OPENAI_API_KEY with LLM_PROVIDER=openai) or llm.api_key in the config file")
		} else {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		}
		os.Exit(1)
	}
	if *metricsAddr != "" {
		cfg.Metrics.Addr = *metricsAddr
	}
	if *save {
		cfg.Export.Markdown = true
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "Video digest starting (llm: %s/%s, transcripts: %s)", cfg.LLM.Provider, cfg.LLM.Model, cfg.Transcript.Provider)

	app, err := newApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "Failed to initialize: %v", err)
		os.Exit(1)
	}

	if cfg.Metrics.Addr != "" {
		srv := serveMetrics(ctx, cfg.Metrics.Addr, log)
		defer shutdown(srv)
	}

	if *watch {
		if err := app.watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error(ctx, "Watcher error: %v", err)
			os.Exit(1)
		}
		log.Info(ctx, "Video digest stopped")
		return
	}

	u := *videoURL
	if u == "" {
		u = flag.Arg(0)
	}
	if u == "" {
		fmt.Fprintln(os.Stderr, "usage: summarize [flags] <video-url>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	key, state := app.agent.Run(ctx, u)
	app.save(ctx, state)

	if *jsonOut {
		err = printJSON(os.Stdout, key, state)
	} else {
		err = printResult(os.Stdout, state)
	}
	if err != nil {
		log.Error(ctx, "Failed to write output: %v", err)
	}
	if !state.Succeeded() {
		os.Exit(1)
	}
}

type app struct {
	cfg      *config.Config
	agent    agent.Agent
	exporter export.Writer
	meta     metadata.Fetcher
	logger   logger.Logger
}

func newApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*app, error) {
	tp, err := transcript.New(cfg, executor.New(), log)
	if err != nil {
		return nil, err
	}
	gen, err := llm.New(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	key := agent.UniqueKey
	if cfg.Run.KeyMode == config.KeyModeURL {
		key = agent.URLKey
	}

	a, err := agent.New(agent.Options{
		Transcripts:   tp,
		Generator:     gen,
		Languages:     cfg.Transcript.Languages,
		Key:           key,
		CheckpointTTL: cfg.Run.CheckpointTTL,
		Timeout:       cfg.Run.Timeout,
		Logger:        log,
	})
	if err != nil {
		return nil, err
	}

	var meta metadata.Fetcher
	if cfg.Metadata.YouTubeAPIKey != "" {
		meta, err = metadata.NewYouTube(ctx, cfg.Metadata.YouTubeAPIKey)
		if err != nil {
			return nil, err
		}
	}

	return &app{
		cfg:      cfg,
		agent:    a,
		exporter: export.New(cfg.Paths.Output, export.Options{Markdown: cfg.Export.Markdown, Docx: cfg.Export.Docx}, log),
		meta:     meta,
		logger:   log,
	}, nil
}

// save exports a successful run. Failures are logged only; the summary
// has already been produced.
func (a *app) save(ctx context.Context, state agent.VideoState) {
	if !state.Succeeded() || (!a.cfg.Export.Markdown && !a.cfg.Export.Docx) {
		return
	}

	var video metadata.Video
	if a.meta != nil {
		v, err := a.meta.FetchVideo(ctx, state.VideoID)
		if err != nil {
			a.logger.Warn(ctx, "Failed to fetch metadata for %s: %v", state.VideoID, err)
		} else {
			video = v
		}
	}

	if _, err := a.exporter.Write(ctx, state, video); err != nil {
		a.logger.Error(ctx, "Failed to export %s: %v", state.VideoID, err)
	}
}

func (a *app) watch(ctx context.Context) error {
	handler := func(ctx context.Context, url, source string) error {
		key, state := a.agent.Run(ctx, url)
		a.logger.Info(ctx, "Drop file %s finished as %s (run %s)", source, state.Status, key)
		a.save(ctx, state)
		if !state.Succeeded() {
			return fmt.Errorf("run %s: %s", key, state.ErrMessage())
		}
		return nil
	}

	w, err := watcher.New(a.cfg.Paths.Input, handler, a.logger, watcher.Options{MaxConcurrent: a.cfg.Performance.MaxConcurrent})
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	a.logger.Info(ctx, "Monitoring: %s", a.cfg.Paths.Input)
	a.logger.Info(ctx, "Output: %s", a.cfg.Paths.Output)
	a.logger.Info(ctx, "Press Ctrl+C to stop")
	return w.Start(ctx)
}

func serveMetrics(ctx context.Context, addr string, log logger.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Info(ctx, "Serving metrics on %s/metrics", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "Metrics server error: %v", err)
		}
	}()
	return srv
}

func shutdown(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}
