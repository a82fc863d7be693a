package main

import (
	"log"
	"os"

	"github.com/valyala/fasthttp"

	"tax-engine/internal/handler"
	"tax-engine/internal/schedule"
	"tax-engine/internal/scheduleregistry"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	set := schedule.Default()
	if path := os.Getenv("SCHEDULE_FILE"); path != "" {
		var err error
		set, err = schedule.LoadFile(path)
		if err != nil {
			log.Fatalf("Schedule file error: %v", err)
		}
		log.Printf("Loaded schedules from %s", path)
	}

	set = scheduleregistry.Resolve(set)

	// Malformed bracket data must fail here, not mid-calculation.
	if err := set.Validate(); err != nil {
		log.Fatalf("Schedule validation failed: %v", err)
	}

	log.Printf("Tax engine starting on port %s", port)
	if err := fasthttp.ListenAndServe(":"+port, handler.NewCalculationHandler(set)); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
