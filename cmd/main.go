package main

import (
	"log"
	"net/http"

	"github.com/saeidalz13/battleship-board/api"
	"github.com/saeidalz13/battleship-board/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalln(err)
	}

	// Validate already parsed it once
	schema, _ := cfg.Schema()
	rp := api.NewRequestProcessor(cfg.GridSize, schema)

	mux := http.NewServeMux()
	mux.Handle("GET /battleship", rp)

	log.Printf("stage: %s\tgrid size: %d\tfleet: %d ships\n", cfg.Stage, cfg.GridSize, schema.Ships())
	log.Printf("Listening to port %d\n", cfg.Port)
	log.Fatalln(http.ListenAndServe(cfg.Addr(), mux))
}
