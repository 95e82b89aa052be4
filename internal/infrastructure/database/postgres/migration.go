// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/alcho-id/alcho-backend/internal/domain/analytics"
	"github.com/alcho-id/alcho-backend/internal/domain/catalog"
	"github.com/alcho-id/alcho-backend/internal/domain/order"
	"github.com/alcho-id/alcho-backend/internal/domain/product"
	"github.com/alcho-id/alcho-backend/internal/domain/user"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Dependency order: users before orders, customers before orders
	models := []interface{}{
		&user.User{},
		&user.TrustedDevice{},

		&product.Product{},

		&order.Customer{},
		&order.Order{},
		&order.OrderItem{},

		&analytics.PageView{},
		&analytics.ProductInterest{},
		&analytics.SearchEvent{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_email_active ON users(email, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_trusted_devices_user_device ON trusted_devices(user_id, device_id)",

		"CREATE INDEX IF NOT EXISTS idx_admin_products_category_active ON admin_products(category, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_admin_products_created_at ON admin_products(created_at DESC)",

		"CREATE INDEX IF NOT EXISTS idx_orders_status_created ON orders(status, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_payment_status ON orders(payment_status)",
		"CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)",

		"CREATE INDEX IF NOT EXISTS idx_page_views_path_created ON page_views(path, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_product_interests_code_action ON product_interests(product_code, action)",
		"CREATE INDEX IF NOT EXISTS idx_search_analytics_query ON search_analytics(query)",
	}

	successCount := 0
	failCount := 0

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Failed to create index: %v", err)
			failCount++
		} else {
			successCount++
		}
	}

	log.Printf("✅ Created %d indexes successfully (%d failed)", successCount, failCount)
	return nil
}

// SeedInitialData inserts initial data into the database
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := m.seedProducts(); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

// seedAdminUser creates the first admin account. Credentials come from the
// environment so production never boots with a known default.
func (m *Migration) seedAdminUser() error {
	log.Println("👤 Seeding admin user...")

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("⏭️ ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing user.User
	if err := m.db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("⏭️ Admin user already exists with ID: %d", existing.ID)
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := user.User{
		Email:    email,
		Password: string(hashed),
		Name:     "Admin",
		IsActive: true,
	}
	if err := m.db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("✅ Created admin user: %s", email)
	return nil
}

// seedProducts mirrors the storefront catalog into admin_products so the
// back-office starts with the real product list. One row per variant.
func (m *Migration) seedProducts() error {
	log.Println("🛍️ Seeding products...")

	var count int64
	m.db.Model(&product.Product{}).Count(&count)
	if count > 0 {
		log.Println("⏭️ Products already exist")
		return nil
	}

	created := 0
	for _, p := range catalog.Products() {
		for _, v := range p.Variants {
			row := product.Product{
				Name:        p.Name,
				Category:    p.Category,
				Variant:     v.PackLabel,
				Price:       v.UnitPrice,
				StockStatus: product.StockStatusInStock,
				IsActive:    true,
			}
			if err := m.db.Create(&row).Error; err != nil {
				log.Printf("⚠️ Failed to seed product %s (%s): %v", p.Name, v.PackLabel, err)
				continue
			}
			created++
		}
	}

	log.Printf("✅ Seeded %d product rows", created)
	return nil
}

// DropAllTables drops all tables (use with extreme caution)
func (m *Migration) DropAllTables() error {
	log.Println("⚠️ WARNING: Dropping all database tables...")

	// Reverse dependency order
	tables := []string{
		"search_analytics",
		"product_interests",
		"page_views",
		"order_items",
		"orders",
		"customers",
		"admin_products",
		"trusted_devices",
		"users",
	}

	for _, table := range tables {
		if err := m.db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)).Error; err != nil {
			log.Printf("⚠️ Failed to drop table %s: %v", table, err)
		} else {
			log.Printf("🗑️ Dropped table: %s", table)
		}
	}

	log.Println("✅ All tables dropped successfully")
	return nil
}

// GetTableInfo returns information about database tables
func (m *Migration) GetTableInfo() error {
	var tables []string

	if err := m.db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename").Scan(&tables).Error; err != nil {
		return err
	}

	log.Println("📊 Database Tables Information:")
	log.Println("================================")

	totalRecords := int64(0)
	for _, table := range tables {
		var count int64
		m.db.Table(table).Count(&count)
		totalRecords += count

		log.Printf("%-25s | %d records", table, count)
	}

	log.Println("================================")
	log.Printf("📈 Total records across all tables: %d", totalRecords)
	log.Printf("🗂️ Total tables: %d", len(tables))

	return nil
}
