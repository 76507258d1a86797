package main

import (
	"context"
	"log"
	"time"

	"bakery-api/internal/config"
	"bakery-api/internal/database"
	"bakery-api/internal/model"
	"bakery-api/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Seeds a handful of demo customers and products for local development.
// Run against an empty database after migrations have been applied.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := zerolog.Nop()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	customerRepo := repository.NewCustomerRepository(pool, logger)
	productRepo := repository.NewProductRepository(pool, logger)

	email := "ana@example.com"
	address := "Calle Mayor 12"
	customers := []model.Customer{
		{ID: uuid.New(), Name: "Ana García", Phone: "600111222", Email: &email, Address: &address, RegisteredAt: time.Now().UTC()},
		{ID: uuid.New(), Name: "Luis Pérez", Phone: "600333444", RegisteredAt: time.Now().UTC()},
	}

	sourdough := "Slow-fermented sourdough loaf"
	products := []model.Product{
		{ID: uuid.New(), Name: "Baguette", Price: 1.50, Category: "bread", Available: true},
		{ID: uuid.New(), Name: "Sourdough", Price: 4.20, Category: "bread", Description: &sourdough, Available: true},
		{ID: uuid.New(), Name: "Croissant", Price: 1.80, Category: "pastry", Available: true},
		{ID: uuid.New(), Name: "Chocolate cake", Price: 18.00, Category: "cake", Available: true},
	}

	for i := range customers {
		if err := customerRepo.Create(ctx, &customers[i]); err != nil {
			log.Fatalf("Failed to seed customer %s: %v", customers[i].Name, err)
		}
		log.Printf("Seeded customer %s (%s)", customers[i].Name, customers[i].ID)
	}

	for i := range products {
		if err := productRepo.Create(ctx, &products[i]); err != nil {
			log.Fatalf("Failed to seed product %s: %v", products[i].Name, err)
		}
		log.Printf("Seeded product %s (%s)", products[i].Name, products[i].ID)
	}

	log.Printf("Done: %d customers, %d products", len(customers), len(products))
}
