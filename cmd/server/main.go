package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/nestegg-finance/bluum-gateway/internal/adapters/bluum"
	"github.com/nestegg-finance/bluum-gateway/internal/adapters/httpapi"
	"github.com/nestegg-finance/bluum-gateway/internal/adapters/openai"
	"github.com/nestegg-finance/bluum-gateway/internal/pkg/config"
	"github.com/nestegg-finance/bluum-gateway/internal/pkg/httpserver"
	"github.com/nestegg-finance/bluum-gateway/internal/usecase"
)

func main() {
	config.LoadEnv()

	addr := config.GetEnv("HTTP_ADDR", ":8080")
	apiKey := os.Getenv("BLUUM_API_KEY")
	apiSecret := os.Getenv("BLUUM_API_SECRET")
	if apiKey == "" || apiSecret == "" {
		log.Fatal("missing BLUUM_API_KEY or BLUUM_API_SECRET")
	}

	// Adapters (infrastructure)
	vendor := bluum.NewClient(
		config.GetEnv("BLUUM_BASE_URL", "https://api.bluum.com/v1"),
		apiKey,
		apiSecret,
	)
	chatAdapter := openai.NewChatAdapter(
		os.Getenv("OPENAI_API_KEY"),
		config.GetEnv("OPENAI_MODEL", ""),
	)

	// Application services (use cases)
	handler := &httpapi.Handler{
		Accounts: vendor,
		Wealth:   vendor,
		Orders:   usecase.NewOrderService(vendor),
		Funding:  usecase.NewFundingService(vendor),
		Goals:    usecase.NewGoalService(vendor),
		Chat:     usecase.NewChatService(chatAdapter),
	}

	s := httpserver.New(addr, httpapi.NewRouter(handler))

	// Start
	go func() {
		log.Printf("Bluum gateway listening on %s", addr)
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP serve error: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop
	log.Println("Shutting down...")
	s.Stop()
}
