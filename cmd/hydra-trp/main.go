// Package main runs the TRP JSON-RPC bridge in front of a Hydra head.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/hydra-trp/internal/hydra"
	"github.com/goodnatureofminers/hydra-trp/internal/hydra/model"
	"github.com/goodnatureofminers/hydra-trp/internal/hydra/repository/clickhouse"
	"github.com/goodnatureofminers/hydra-trp/internal/journal"
	"github.com/goodnatureofminers/hydra-trp/internal/metrics"
	"github.com/goodnatureofminers/hydra-trp/internal/selector"
	"github.com/goodnatureofminers/hydra-trp/internal/service"
	"github.com/goodnatureofminers/hydra-trp/internal/trp"
	"github.com/goodnatureofminers/hydra-trp/pkg/broadcast"
)

var errHeadFeedEnded = errors.New("head event feed ended")

var config struct {
	ListenAddress     string        `long:"listen-address" env:"TRP_HYDRA_LISTEN_ADDRESS" description:"JSON-RPC listen address" default:":8000"`
	PermissiveCORS    bool          `long:"permissive-cors" env:"TRP_HYDRA_PERMISSIVE_CORS" description:"allow any origin, method and header"`
	WSURL             string        `long:"ws-url" env:"TRP_HYDRA_WS_URL" description:"hydra node websocket url" default:"ws://127.0.0.1:4001/?history=no"`
	HTTPURL           string        `long:"http-url" env:"TRP_HYDRA_HTTP_URL" description:"hydra node http url" default:"http://127.0.0.1:4001"`
	Network           uint8         `long:"network" env:"TRP_HYDRA_NETWORK" description:"network id (0 testnet, 1 mainnet)" default:"0"`
	MaxOptimizeRounds int           `long:"max-optimize-rounds" env:"TRP_HYDRA_MAX_OPTIMIZE_ROUNDS" description:"compiler fee optimization rounds" default:"10"`
	KeepAlive         time.Duration `long:"keepalive-interval" env:"TRP_HYDRA_KEEPALIVE_INTERVAL" description:"head ping interval" default:"30s"`
	ConfirmTimeout    time.Duration `long:"confirm-timeout" env:"TRP_HYDRA_CONFIRM_TIMEOUT" description:"wait for a tx verdict when confirm is requested" default:"30s"`
	ClickhouseDSN     string        `long:"clickhouse-dsn" env:"TRP_HYDRA_CLICKHOUSE_DSN" description:"clickhouse dsn for the event journal, empty disables it"`
	JournalFlushSize  int           `long:"journal-flush-size" env:"TRP_HYDRA_JOURNAL_FLUSH_SIZE" description:"journal batch size" default:"100"`
	JournalFlushEvery time.Duration `long:"journal-flush-interval" env:"TRP_HYDRA_JOURNAL_FLUSH_INTERVAL" description:"journal flush interval" default:"5s"`
	JournalRPS        int           `long:"journal-rps" env:"TRP_HYDRA_JOURNAL_RPS" description:"journal flushes per second" default:"10"`
	LogJSON           bool          `long:"log-json" env:"TRP_HYDRA_LOG_JSON" description:"production json logging"`
}

func main() {
	if _, err := flags.Parse(&config); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		panic("can't parse flags: " + err.Error())
	}

	logger, err := newLogger(config.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		logger.Fatal("hydra-trp stopped", zap.Error(err))
	}
	logger.Info("hydra-trp stopped")
}

func newLogger(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, logger *zap.Logger) error {
	bus := broadcast.New[model.Event](0)
	store := hydra.NewStore()

	var (
		recorder hydra.SnapshotRecorder
		jrnl     *journal.Journal
	)
	if config.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(config.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return err
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Warn("close clickhouse failed", zap.Error(err))
			}
		}()
		if err := repo.Ping(ctx); err != nil {
			return err
		}

		jrnl, err = journal.New(repo, bus, metrics.NewJournal(), journal.Config{
			FlushSize:     config.JournalFlushSize,
			FlushInterval: config.JournalFlushEvery,
			RPS:           config.JournalRPS,
		}, logger.Named("journal"))
		if err != nil {
			return err
		}
		recorder = jrnl
	}

	conn, err := hydra.Dial(ctx, config.WSURL)
	if err != nil {
		return err
	}
	adapter, err := hydra.NewAdapter(conn, store, bus, recorder, metrics.NewIngester(), logger.Named("hydra"))
	if err != nil {
		_ = conn.Close()
		return err
	}

	params, err := hydra.NewParamsClient(config.HTTPURL, config.Network, nil, metrics.NewProtocolParams())
	if err != nil {
		return err
	}
	submitter, err := hydra.NewSubmitter(adapter, bus, metrics.NewSubmitter(), config.ConfirmTimeout, logger.Named("submitter"))
	if err != nil {
		return err
	}
	ledger, err := service.NewHydraLedger(params, store, selector.New(nil), logger.Named("ledger"))
	if err != nil {
		return err
	}
	server, err := trp.NewServer(nil, ledger, submitter, adapter, metrics.NewRPCServer(), config.MaxOptimizeRounds, logger.Named("trp"))
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/", server)
	mux.Handle("/metrics", promhttp.Handler())

	c := cors.Default()
	if config.PermissiveCORS {
		c = cors.AllowAll()
	}
	httpServer := &http.Server{
		Addr:              config.ListenAddress,
		Handler:           c.Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		// submit with confirm holds the response for up to the confirmation timeout
		WriteTimeout:   config.ConfirmTimeout + 15*time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: http.DefaultMaxHeaderBytes,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := adapter.Subscribe(gctx); err != nil {
			return err
		}
		if gctx.Err() == nil {
			return errHeadFeedEnded
		}
		return nil
	})
	g.Go(func() error {
		if err := adapter.KeepAlive(gctx, config.KeepAlive); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	if jrnl != nil {
		g.Go(func() error {
			return jrnl.Run(gctx)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		logger.Info("Starting HTTP server", zap.String("addr", config.ListenAddress))
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	return g.Wait()
}
