package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"hostel-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// setupTestDB opens a fresh in-memory sqlite database standing in for MySQL.
// The pool is capped at one connection so writes serialize the way sqlite
// expects.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("setupTestDB() open failed: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("setupTestDB() pool failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Room{},
		&models.Hosteler{},
		&models.Payment{},
	); err != nil {
		t.Fatalf("setupTestDB() migrate failed: %v", err)
	}
	return db
}

func createTestRoom(t *testing.T, db *gorm.DB, number int, price float64, capacity int) *models.Room {
	t.Helper()

	room := &models.Room{
		RoomNumber:      number,
		Price:           price,
		Capacity:        capacity,
		OccupancyStatus: true,
	}
	if err := db.Create(room).Error; err != nil {
		t.Fatalf("createTestRoom() failed: %v", err)
	}
	return room
}
