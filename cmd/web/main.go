package main

import (
	"log"
	"os"

	"github.com/minaorangina/suits/config"
	"github.com/minaorangina/suits/server"
	"github.com/minaorangina/suits/store"
)

func main() {
	cfg, err := config.Load(os.Getenv("SUITS_CONFIG"))
	if err != nil {
		log.Fatal(err.Error())
	}

	s := server.NewServer(store.NewInMemoryGameStore(), cfg)
	log.Printf("Listening on port %d...", cfg.Port)
	log.Fatal(s.ListenAndServe())
}
