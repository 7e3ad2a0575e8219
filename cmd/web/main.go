package main

import (
	"log"
	"net/http"

	"github.com/fablegame/fable/config"
	"github.com/fablegame/fable/server"
	"github.com/fablegame/fable/store"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err.Error())
	}

	s := server.NewServer(store.NewInMemoryGameStore(), cfg.Rules())

	log.Printf("Listening on %s...", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, s))
}
