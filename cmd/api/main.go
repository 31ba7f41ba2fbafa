package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/randevuapp/booking-api/internal/cache"
	"github.com/randevuapp/booking-api/internal/config"
	dbpkg "github.com/randevuapp/booking-api/internal/db"
	"github.com/randevuapp/booking-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := cache.NewClient(cfg)
	slots := cache.NewAvailability(rdb)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, slots, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
