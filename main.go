package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"Ampere/internal/calc/ampacity"
	"Ampere/internal/calc/derating"
	"Ampere/internal/calc/earthfault"
	"Ampere/internal/calc/fuse"
	"Ampere/internal/calc/impedance"
	"Ampere/internal/calc/loads"
	"Ampere/internal/calc/premium/autodesign"
	"Ampere/internal/calc/premium/batch"
	"Ampere/internal/calc/premium/importer"
	"Ampere/internal/calc/premium/recommend"
	"Ampere/internal/calc/report"
	"Ampere/internal/calc/shortcircuit"
	"Ampere/internal/calc/sizing"
	"Ampere/internal/calc/thermal"
	"Ampere/internal/evaluation"
	"Ampere/internal/ratelimit"
	"Ampere/internal/receipt"
	"Ampere/internal/repo"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Project")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, store repo.Repository, signer *receipt.Signer) {
	limiter := ratelimit.NewIPRateLimiter(rate.Limit(envFloat("RATE_LIMIT", 5)), int(envFloat("RATE_BURST", 10)))

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	ampacityH := &ampacity.Handler{}
	deratingH := &derating.Handler{}
	impedanceH := &impedance.Handler{}
	fuseH := &fuse.Handler{}
	shortcircuitH := &shortcircuit.Handler{}
	thermalH := &thermal.Handler{}
	earthfaultH := &earthfault.Handler{}
	loadsH := &loads.Handler{}
	sizingH := &sizing.Handler{}
	reportH := &report.Handler{}

	api.HandleFunc("/tools/ampacity/calc", ampacityH.Calc).Methods("POST")
	api.HandleFunc("/tools/derating/calc", deratingH.Calc).Methods("POST")
	api.HandleFunc("/tools/impedance/calc", impedanceH.Calc).Methods("POST")
	api.HandleFunc("/tools/fuse/calc", fuseH.Calc).Methods("POST")
	api.HandleFunc("/tools/fuse/families", fuseH.Families).Methods("GET")
	api.HandleFunc("/tools/fuse/chart", fuseH.Chart).Methods("POST")
	api.HandleFunc("/tools/shortcircuit/calc", shortcircuitH.Calc).Methods("POST")
	api.HandleFunc("/tools/thermal/calc", thermalH.Calc).Methods("POST")
	api.HandleFunc("/tools/earthfault/calc", earthfaultH.Calc).Methods("POST")
	api.HandleFunc("/tools/loads/calc", loadsH.Calc).Methods("POST")
	api.HandleFunc("/tools/loads/aggregate", loadsH.Aggregate).Methods("POST")
	api.HandleFunc("/tools/sizing/calc", sizingH.Calc).Methods("POST")
	api.HandleFunc("/tools/sizing/chain", sizingH.Chain).Methods("POST")
	api.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	api.HandleFunc("/tools/report/xlsx", reportH.Workbook).Methods("POST")

	autodesignH := &autodesign.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	recommendH := &recommend.Handler{}

	api.HandleFunc("/tools-premium/autodesign", autodesignH.Design).Methods("POST")
	api.HandleFunc("/tools-premium/batch", batchH.Circuits).Methods("POST")
	api.HandleFunc("/tools-premium/import", importerH.Circuits).Methods("POST")
	api.HandleFunc("/tools-premium/recommend", recommendH.Device).Methods("POST")

	evalH := &evaluation.Handler{Service: &evaluation.Service{Repo: store, Receipts: signer}}
	api.HandleFunc("/evaluations", evalH.List).Methods("GET")
	api.HandleFunc("/evaluations/circuit", evalH.Circuit).Methods("POST")
	api.HandleFunc("/evaluations/chain", evalH.Chain).Methods("POST")
	api.HandleFunc("/evaluations/{id}", evalH.Get).Methods("GET")
	api.HandleFunc("/evaluations/{id}/verify", evalH.Verify).Methods("POST")

	mux.PathPrefix("/").Handler(http.FileServer(http.Dir("./static/main")))
}

func envFloat(key string, def float64) float64 {
	if s := os.Getenv(key); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v <= 0 {
			log.Fatalf("%s must be a positive number, got %q", key, s)
		}
		return v
	}
	return def
}

// openStore picks Postgres when DATABASE_URL is set and puts Redis in
// front of it when REDIS_URL is set.
func openStore(ctx context.Context) (repo.Repository, func()) {
	var store repo.Repository = repo.NewMemory()
	closers := []func() error{}

	if url := os.Getenv("DATABASE_URL"); url != "" {
		db, err := repo.Open(url)
		if err != nil {
			log.Fatal("Database is not responding: ", err)
		}
		pg := repo.NewPostgres(db)
		if err := pg.Migrate(ctx); err != nil {
			log.Fatal("Migration failed: ", err)
		}
		store = pg
		closers = append(closers, db.Close)
		log.Println("Evaluations stored in Postgres")
	} else {
		log.Println("DATABASE_URL not set, evaluations kept in memory")
	}

	if url := os.Getenv("REDIS_URL"); url != "" {
		opts, err := redis.ParseURL(url)
		if err != nil {
			log.Fatal("Invalid REDIS_URL: ", err)
		}
		rdb := redis.NewClient(opts)
		store = repo.NewCached(store, rdb, time.Hour)
		closers = append(closers, rdb.Close)
	}

	return store, func() {
		for _, c := range closers {
			if err := c(); err != nil {
				log.Printf("close: %v", err)
			}
		}
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using the environment")
	}
	key := os.Getenv("RECEIPT_KEY")
	if key == "" {
		log.Fatal("RECEIPT_KEY environment variable is not set")
	}
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	store, closeStore := openStore(ctx)
	defer closeStore()

	mux := mux.NewRouter()
	HandleList(mux, store, &receipt.Signer{Key: []byte(key)})
	handler := CORS(mux)

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	cert, certKey := os.Getenv("TLS_CERT"), os.Getenv("TLS_KEY")
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("Starting server on %s", addr)
		var err error
		if cert != "" && certKey != "" {
			err = server.ListenAndServeTLS(cert, certKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	wg.Wait()
	log.Println("Server stopped")
}
