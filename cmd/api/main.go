package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/leadboard/internal/infra/database"
	"github.com/xavierca1/leadboard/internal/infra/http/handlers"
	custommw "github.com/xavierca1/leadboard/internal/infra/http/middleware"
	"github.com/xavierca1/leadboard/internal/infra/mail"
	"github.com/xavierca1/leadboard/internal/infra/memory"
	"github.com/xavierca1/leadboard/internal/infra/queue"
	"github.com/xavierca1/leadboard/internal/infra/session"
	"github.com/xavierca1/leadboard/internal/usecase"
)

func main() {
	godotenv.Load()

	// 1. Repositório de leads: Postgres quando configurado, senão o mock em
	// memória com seed e latência simulada (modo dev, igual ao front antigo).
	var db *sql.DB
	var leadRepo usecase.LeadRepositoryInterface

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		var err error
		db, err = database.NewDBConnection(dsn)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		leadRepo = database.NewLeadRepository(db)
	} else {
		leadRepo = memory.NewLeadRepository(memory.SeedLeads(), envDurationMs("SEED_DELAY_MS", 800))
	}

	// 2. RabbitMQ + worker de follow-up (opcionais)
	var rabbitConn *amqp.Connection
	var producer usecase.QueueProducerInterface

	if host := os.Getenv("RABBITMQ_HOST"); host != "" {
		rabbitMQ, err := queue.NewRabbitMQ(
			os.Getenv("RABBITMQ_USER"),
			os.Getenv("RABBITMQ_PASS"),
			host,
			envOr("RABBITMQ_PORT", "5672"),
		)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		rabbitConn = rabbitMQ.Conn
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		var mailSender queue.FollowUpSender
		if os.Getenv("MAIL_HOST") != "" {
			mailSender = mail.NewEmailSender(
				os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			)
		}

		worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
		go worker.Start(queue.QueueName)
	}

	// 3. Sessão: restaura ANTES de montar o router, para o gate de rotas
	// nunca decidir em cima do estado Unknown.
	store := session.NewStore(
		session.NewFileStorage(envOr("DATA_DIR", "data")),
		envOr("LOGIN_SECRET", "admin123"),
		envDurationMs("LOGIN_DELAY_MS", 500),
	)
	if err := store.Restore(); err != nil {
		log.Printf("⚠️ Sessão persistida ilegível, seguindo como anônimo: %s", err)
	}

	// 4. UseCases
	listUC := usecase.NewListLeadsUseCase(leadRepo)
	captureUC := usecase.NewCaptureLeadUseCase(leadRepo, producer)
	updateStatusUC := usecase.NewUpdateLeadStatusUseCase(leadRepo, producer)
	annotateUC := usecase.NewAnnotateLeadUseCase(leadRepo)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(listUC, captureUC, updateStatusUC, annotateUC, leadRepo)
	sessionHandler := handlers.NewSessionHandler(store)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowCredentials: true,
	}))
	r.Use(custommw.Metrics)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(custommw.RequireAnonymous(store))
		r.Post("/auth/login", sessionHandler.HandleLogin)
	})

	r.Post("/auth/logout", sessionHandler.HandleLogout)

	r.Group(func(r chi.Router) {
		r.Use(custommw.RequireSession(store))

		r.Get("/auth/me", sessionHandler.HandleMe)

		r.Route("/leads", func(r chi.Router) {
			r.Get("/", leadHandler.HandleList)
			r.Post("/", leadHandler.HandleCapture)
			r.Get("/{leadId}", leadHandler.HandleGet)
			r.Patch("/{leadId}/status", leadHandler.HandleUpdateStatus)
			r.Patch("/{leadId}/notes", leadHandler.HandleUpdateNotes)
		})
	})

	port := ":8080"
	log.Printf("🔥 Server leadboard rodando na porta %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDurationMs(key string, fallback int) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(fallback) * time.Millisecond
	}

	ms, err := strconv.Atoi(v)
	if err != nil {
		return time.Duration(fallback) * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}
