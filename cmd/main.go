package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"Voyage-App/internal/application"
	"Voyage-App/internal/database"
	domainrepo "Voyage-App/internal/domain/repository"
	"Voyage-App/internal/handler"
	infradb "Voyage-App/internal/infrastructure/database"
	"Voyage-App/internal/infrastructure/firestore"
	"Voyage-App/internal/repository"
	"Voyage-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	if os.Getenv("DATABASE_URL") == "" {
		fmt.Println("⚠️  環境変数が設定されていません:")
		fmt.Println("必要な環境変数: DATABASE_URL")
		fmt.Println("任意の環境変数: SUPABASE_URL, SUPABASE_ANON_KEY, FIRESTORE_PROJECT_ID")
		fmt.Println("\n.envファイルを作成するか、環境変数を設定してください")
		log.Fatal("Environment variables not set")
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

	// 読み出し側はSupabase(PostgREST)が設定されていればそちらを使う
	var catalogRead domainrepo.CatalogReadRepository
	if os.Getenv("SUPABASE_URL") != "" && os.Getenv("SUPABASE_ANON_KEY") != "" {
		supabaseClient, err := database.NewSupabaseClient()
		if err != nil {
			log.Fatalf("Supabaseクライアント初期化失敗: %v", err)
		}
		if err := supabaseClient.HealthCheck(); err != nil {
			log.Fatalf("Supabaseヘルスチェック失敗: %v", err)
		}
		fmt.Println("✅ Supabase connection successful!")
		catalogRead = repository.NewSupabaseCatalogRepository(supabaseClient)
	} else {
		catalogRead = repository.NewPostgresCatalogRepository(postgresClient)
	}

	routesService := application.NewRoutesService(repository.NewPostgresRoutesRepository(postgresClient))
	catalogService := application.NewCatalogService(catalogRead)

	routeHandler := handler.NewRouteHandler(routesService)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "Voyage-App"})
	})

	api := r.Group("/api")

	routes := api.Group("/routes")
	{
		routes.GET("", routeHandler.ListRoutes)
		routes.GET("/:id", routeHandler.GetRouteDetail)
	}

	catalog := api.Group("/")
	{
		catalog.GET("/destinations", catalogHandler.ListDestinations)
		catalog.GET("/destinations/:id", catalogHandler.GetDestination)
		catalog.GET("/attractions", catalogHandler.ListAttractions)
		catalog.GET("/attractions/nearby", catalogHandler.NearbyAttractions)
		catalog.GET("/restaurants", catalogHandler.ListRestaurants)
		catalog.GET("/foods", catalogHandler.ListFoods)
		catalog.GET("/hotels", catalogHandler.ListHotels)
	}

	// Firestoreが設定されている場合のみ問い合わせAPIを有効化する
	if projectID := os.Getenv("FIRESTORE_PROJECT_ID"); projectID != "" {
		firestoreClient, err := firestore.NewFirestoreClient(context.Background(), projectID)
		if err != nil {
			log.Fatalf("Firestore初期化失敗: %v", err)
		}
		defer firestoreClient.Close()

		inquiryRepo := repository.NewFirestoreInquiryRepository(firestoreClient.GetClient())
		inquiryHandler := handler.NewInquiryHandler(usecase.NewInquiryUseCase(inquiryRepo))

		inquiries := api.Group("/inquiries")
		{
			inquiries.POST("", inquiryHandler.SubmitInquiry)
			inquiries.GET("/:id", inquiryHandler.GetInquiry)
		}
	} else {
		fmt.Println("⚠️  FIRESTORE_PROJECT_ID未設定のため問い合わせAPIは無効です")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("Voyage-App server starting on :%s...\n", port)
	log.Fatal(r.Run(":" + port))
}
