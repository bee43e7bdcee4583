package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"Voyage-App/internal/application"
	infradb "Voyage-App/internal/infrastructure/database"
	"Voyage-App/internal/infrastructure/dataset"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	if os.Getenv("DATABASE_URL") == "" {
		fmt.Println("⚠️  環境変数が設定されていません:")
		fmt.Println("必要な環境変数: DATABASE_URL")
		fmt.Println("\n.envファイルを作成するか、環境変数を設定してください")
		log.Fatal("Environment variables not set")
	}

	dataDir := os.Getenv("SEED_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	fmt.Println("Initializing PostgreSQL client...")
	postgresClient, err := infradb.NewPostgreSQLClient()
	if err != nil {
		log.Fatalf("PostgreSQLクライアント初期化失敗: %v", err)
	}
	defer postgresClient.Close()

	if err := postgresClient.HealthCheck(); err != nil {
		log.Fatalf("PostgreSQLヘルスチェック失敗: %v", err)
	}
	fmt.Println("✅ PostgreSQL connection successful!")

	seedService := application.NewSeedService(postgresClient, dataset.NewLoader(dataDir))

	summary, err := seedService.Run(context.Background())
	if err != nil {
		log.Fatalf("❌ シード処理失敗: %v", err)
	}

	fmt.Printf("✅ Seed finished: %d destinations, %d attractions, %d restaurants, %d foods, %d hotels, %d routes\n",
		summary.Destinations, summary.Attractions, summary.Restaurants, summary.Foods, summary.Hotels, summary.Routes)
}
