package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/patric-chuzhbe/todokeeper/internal/app"
	"github.com/patric-chuzhbe/todokeeper/internal/config"
	"github.com/patric-chuzhbe/todokeeper/internal/logger"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("cannot initialize application: %v", err)
	}

	if usr, ok := application.Session.CurrentUser(); ok {
		stats := application.Users.GetUserStats(usr.ID)
		logger.Log.Infof(
			"session restored for %q: %d todos (%d completed), %d categories",
			usr.Username,
			stats.TotalTodos,
			stats.CompletedTodos,
			stats.TotalCategories,
		)
	} else {
		logger.Log.Infoln("no remembered session; waiting for a UI to log in")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := application.Close(); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
