package main

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"estimateai/internal/database"
	"estimateai/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "estimateai.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM labor_items")
	db.Exec("DELETE FROM material_items")
	db.Exec("DELETE FROM estimates")
	db.Exec("DELETE FROM templates")
	db.Exec("DELETE FROM clients")
	db.Exec("DELETE FROM users")

	// ================== USER ==================
	log.Println("Creating demo user...")

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := domain.User{
		Email:            "demo@estimateai.test",
		PasswordHash:     string(hash),
		Name:             "Dana Rivera",
		CompanyName:      "Rivera Construction",
		SubscriptionTier: domain.TierPremium,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("user create failed:", err)
	}

	// ================== CLIENTS ==================
	log.Println("Creating clients...")

	clients := []domain.Client{
		{UserID: user.ID, Name: "John Smith", Email: "john.smith@example.com", Phone: "555-0100", Address: "14 Maple St"},
		{UserID: user.ID, Name: "Sarah Johnson", Email: "sarah.j@example.com", Phone: "555-0101", Address: "22 Oak Ave"},
		{UserID: user.ID, Name: "Mike Williams", Email: "mike.w@example.com", Phone: "555-0102", Address: "8 Pine Rd"},
	}
	for i := range clients {
		if err := db.Create(&clients[i]).Error; err != nil {
			log.Fatal("client create failed:", err)
		}
	}

	// ================== TEMPLATES ==================
	log.Println("Creating templates...")

	templates := []domain.Template{
		{UserID: user.ID, Name: "Kitchen Remodel", Description: "Standard mid-range kitchen remodel", Category: "Kitchen", IsPublic: true},
		{UserID: user.ID, Name: "Bathroom Renovation", Description: "Full bathroom gut and refit", Category: "Bathroom", IsPublic: true},
		{UserID: user.ID, Name: "Deck Build", Description: "Pressure treated backyard deck", Category: "Outdoor", IsPublic: false},
	}
	for i := range templates {
		if err := db.Create(&templates[i]).Error; err != nil {
			log.Fatal("template create failed:", err)
		}
	}

	// ================== ESTIMATES ==================
	log.Println("Creating estimates...")

	kitchen := domain.Estimate{
		UserID:          user.ID,
		Title:           "Kitchen Renovation",
		Description:     "Full kitchen renovation with new drywall and paint",
		Status:          domain.EstimateDraft,
		ProfitMargin:    20,
		LocationZipcode: "94103",
		ClientID:        &clients[0].ID,
	}
	if err := db.Create(&kitchen).Error; err != nil {
		log.Fatal("estimate create failed:", err)
	}

	kitchenMaterials := []domain.MaterialItem{
		{EstimateID: kitchen.ID, Name: "Drywall", Quantity: 12, Unit: "sheet", UnitCost: 15.75, TotalCost: 189.00, Category: "Building Materials"},
		{EstimateID: kitchen.ID, Name: "Paint", Quantity: 3, Unit: "gallon", UnitCost: 35.50, TotalCost: 106.50, Category: "Finishes"},
	}
	kitchenLabor := []domain.LaborItem{
		{EstimateID: kitchen.ID, Name: "Drywall Installation", Hours: 16, RatePerHour: 35.00, TotalCost: 560.00, Category: "Labor"},
	}
	for i := range kitchenMaterials {
		db.Create(&kitchenMaterials[i])
	}
	for i := range kitchenLabor {
		db.Create(&kitchenLabor[i])
	}
	// 295.50 + 560 = 855.50 subtotal, 20% margin
	db.Model(&kitchen).Update("total_cost", 1026.60)

	bathroom := domain.Estimate{
		UserID:       user.ID,
		Title:        "Bathroom Remodel",
		Description:  "Guest bathroom refresh",
		Status:       domain.EstimatePending,
		ProfitMargin: 25,
		ClientID:     &clients[1].ID,
	}
	if err := db.Create(&bathroom).Error; err != nil {
		log.Fatal("estimate create failed:", err)
	}
	db.Create(&domain.MaterialItem{EstimateID: bathroom.ID, Name: "Tile", Quantity: 80, Unit: "sq_ft", UnitCost: 4.50, TotalCost: 360.00, Category: "Finishes"})
	db.Create(&domain.LaborItem{EstimateID: bathroom.ID, Name: "Tiling", Hours: 20, RatePerHour: 40.00, TotalCost: 800.00, Category: "Labor"})
	db.Model(&bathroom).Update("total_cost", 1450.00)

	deck := domain.Estimate{
		UserID:       user.ID,
		Title:        "Backyard Deck",
		Description:  "12x16 pressure treated deck",
		Status:       domain.EstimateAccepted,
		ProfitMargin: 20,
		ClientID:     &clients[2].ID,
	}
	if err := db.Create(&deck).Error; err != nil {
		log.Fatal("estimate create failed:", err)
	}
	db.Create(&domain.MaterialItem{EstimateID: deck.ID, Name: "Lumber (2x6)", Quantity: 48, Unit: "each", UnitCost: 8.25, TotalCost: 396.00, Category: "Building Materials"})
	db.Create(&domain.LaborItem{EstimateID: deck.ID, Name: "Framing", Hours: 24, RatePerHour: 45.00, TotalCost: 1080.00, Category: "Labor"})
	db.Model(&deck).Update("total_cost", 1771.20)

	log.Println("Seed complete.")
	log.Println("Login with demo@estimateai.test / password123")
}
