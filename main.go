package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/samarth/walletagent/internal/agent"
	"github.com/samarth/walletagent/internal/discovery"
	"github.com/samarth/walletagent/internal/notifier"
	"github.com/samarth/walletagent/internal/payment"
	"github.com/samarth/walletagent/internal/payment/circle"
	"github.com/samarth/walletagent/internal/payment/sim"
	"github.com/samarth/walletagent/internal/planner"
	"github.com/samarth/walletagent/internal/receipts"
	receiptpg "github.com/samarth/walletagent/internal/receipts/pg"
	receiptsqlite "github.com/samarth/walletagent/internal/receipts/sqlite"
)

var (
	commit    string
	buildDate string
)

func main() {
	configPath := flag.String("config", "", "location of config file. If none is specified config will be loaded from the environment")
	flag.Parse()

	log.Printf("build info: commit: %v date: %v\n", commit, buildDate)

	var (
		cfg Config
		err error
	)
	if *configPath != "" {
		log.Printf("loading config from file %q\n", *configPath)
		err = cfg.Load(*configPath)
	} else {
		log.Println("loading config from env")
		err = cfg.LoadFromEnv()
	}
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}

	// Plan strategies, in fallback order. A missing credential drops the
	// strategy from the chain rather than erroring.
	var strategies []planner.Strategy
	if cfg.GeminiAPIKey != "" {
		gemini, err := openai.New(
			openai.WithToken(cfg.GeminiAPIKey),
			openai.WithModel(cfg.GeminiModel),
			openai.WithBaseURL(cfg.GeminiAPIURL),
		)
		if err != nil {
			log.Printf("gemini err: %v\n", err)
			os.Exit(1)
		}
		strategies = append(strategies, planner.NewLLMStrategy("gemini", gemini))
	}
	if cfg.GroqAPIKey != "" {
		groq, err := openai.New(
			openai.WithToken(cfg.GroqAPIKey),
			openai.WithModel(cfg.GroqModels[0]),
			openai.WithBaseURL(cfg.GroqAPIURL),
		)
		if err != nil {
			log.Printf("groq err: %v\n", err)
			os.Exit(1)
		}
		strategies = append(strategies, planner.NewGroqStrategy(groq, cfg.GroqModels))
	}
	if len(strategies) == 0 {
		log.Println("no AI credentials configured, plans will use the calculation fallback")
	}
	selector := planner.NewSelector(strategies...)

	paySvc, err := newPaymentService(cfg)
	if err != nil {
		log.Printf("payment err: %v\n", err)
		os.Exit(1)
	}

	store, err := newReceiptStore(cfg)
	if err != nil {
		log.Printf("receipt store err: %v\n", err)
		os.Exit(1)
	}

	var announce *notifier.Notifier
	if cfg.NotifierNsec != "" {
		announce, err = notifier.New(cfg.NotifierNsec)
		if err != nil {
			log.Printf("notifier err: %v\n", err)
			os.Exit(1)
		}
	}

	svc, err := newAgent(selector, paySvc, store, announce)
	if err != nil {
		log.Printf("agent err: %v\n", err)
		os.Exit(1)
	}

	h := handlers{
		config: cfg,
		svc:    svc,
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(metricsMiddleware)

	r.Get("/", h.handleRoot)
	r.Get("/health", h.handleHealth)
	r.Get("/payments", h.handleListPayments)
	r.Post("/pay-api", h.handlePayAPI)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	port := fmt.Sprintf(":%d", cfg.Port)

	log.Printf("agent listening on %v\n", port)

	http.ListenAndServe(port, r)
}

func newPaymentService(cfg Config) (*payment.Service, error) {
	if cfg.SimulationMode == nil || *cfg.SimulationMode {
		return payment.New(sim.New())
	}

	live, err := circle.New(cfg.CircleAPIKey)
	if err != nil {
		return nil, err
	}
	return payment.New(live)
}

func newReceiptStore(cfg Config) (receipts.Store, error) {
	switch cfg.ReceiptStore {
	case "memory":
		return receipts.NewMemory(), nil
	case "sqlite":
		return receiptsqlite.New(cfg.ReceiptDBFile)
	case "postgres":
		return receiptpg.New(cfg.ReceiptDB)
	default:
		return nil, fmt.Errorf("unknown receipt_store %q. must be 'memory', 'sqlite' or 'postgres'", cfg.ReceiptStore)
	}
}

// newAgent keeps a nil *Notifier from becoming a non-nil interface value.
func newAgent(selector *planner.Selector, paySvc *payment.Service, store receipts.Store, announce *notifier.Notifier) (*agent.Service, error) {
	if announce != nil {
		return agent.New(discovery.New(), selector, paySvc, store, announce)
	}
	return agent.New(discovery.New(), selector, paySvc, store, nil)
}
