// Package db はgormによるデータベース接続の初期化を提供します。
package db

import (
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pharma_backend/internal/feature/auth/domain/entity"
	"pharma_backend/internal/platform/config"
)

// OpenDB は設定に従ってデータベース接続を確立します。
// DATABASE_URLが未設定の場合はローカル開発用のSQLiteファイルにフォールバックします。
// Postgresへの接続は最大60秒までリトライします。
func OpenDB(cfg config.Config) *gorm.DB {
	var (
		gdb *gorm.DB
		err error
	)

	if cfg.DatabaseURL == "" {
		// ローカル開発用フォールバック
		gdb, err = gorm.Open(sqlite.Open("./pharma.db"), &gorm.Config{})
		if err != nil {
			log.Fatalf("sqlite open failed: %v", err)
		}
		log.Println("[INFO] DATABASE_URL not set; using local SQLite database")
	} else {
		deadline := time.Now().Add(60 * time.Second)
		for {
			gdb, err = gorm.Open(gpostgres.Open(cfg.DatabaseURL), &gorm.Config{})
			if err == nil {
				break
			}
			if time.Now().After(deadline) {
				log.Fatalf("DB connect failed after 60s: %v", err)
			}
			log.Printf("DB connect failed, retrying...: %v", err)
			time.Sleep(3 * time.Second)
		}
	}

	if cfg.RunMigrations {
		// マイグレーション（User）
		if err := gdb.AutoMigrate(&entity.User{}); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return gdb
}
