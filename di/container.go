package di

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	mcpgo "github.com/mark3labs/mcp-go/server"

	"class-search-server/api"
	"class-search-server/api/classsearch"
	"class-search-server/config"
	"class-search-server/dao/redis"
	"class-search-server/db"
	"class-search-server/mcpserver"
	"class-search-server/normalizer"
	"class-search-server/server"
	"class-search-server/server/handlers"
	services "class-search-server/service"
	"class-search-server/vocab"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient                db.RedisClient
	RedisVocabularyDao         *redis.RedisVocabularyDAO
	VocabularyStore            *vocab.Store
	ClassSearchAPI             classsearch.ClassSearchAPI
	Normalizer                 *normalizer.Normalizer
	ClassService               *services.ClassService
	DiscoveryService           *services.DiscoveryService
	VocabularyRefresherService *services.VocabularyRefresherService
	ClassHandler               *handlers.ClassHandler
	DiscoveryHandler           *handlers.DiscoveryHandler
	MuxRouter                  *mux.Router
	Router                     *server.Router
	ClassSearchHttpServer      *server.ClassSearchHttpServer
	MCPServer                  *mcpgo.MCPServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.RedisAddress(),
		Password: config.RedisPassword(),
		DB:       config.REDIS_DB,
	})

	// Initialize Redis client
	redisClient := db.NewCacheRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	// Initialize Redis vocabulary DAO
	redisVocabularyDao := redis.NewRedisVocabularyDAO(redisClient)

	// Initialize class search API - using fixture mock outside prod
	var classSearchApiClient classsearch.ClassSearchAPI
	if env != "prod" {
		resourcesDir := filepath.Join(config.BaseDir(), config.RESOURCES_PATH_PREFIX)
		classSearchApiClient = classsearch.NewClassSearchApiClientMock(resourcesDir)
		log.Printf("Using mock class search api")
	} else {
		log.Printf("Using prod class search api")
		httpClient := api.NewHTTPClient(config.APIBaseURL())
		classSearchApiClient = classsearch.NewClassSearchApiClient(httpClient)
	}

	// Initialize vocabulary store and normalizer
	vocabularyStore := vocab.NewStore()
	norm := normalizer.NewNormalizer(vocabularyStore, config.DefaultTerm())

	// Initialize service layer
	classService := services.NewClassService(classSearchApiClient, norm)
	discoveryService := services.NewDiscoveryService(vocabularyStore)
	vocabularyRefresherService := services.NewVocabularyRefresherService(
		classSearchApiClient, redisVocabularyDao, vocabularyStore, config.DefaultTerm())

	// Initialize handlers
	classHandler := handlers.NewClassHandler(classService)
	discoveryHandler := handlers.NewDiscoveryHandler(discoveryService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(classHandler, discoveryHandler, muxRouter)

	// Initialize the HTTP and MCP servers
	classSearchHttpServer := server.NewClassSearchHttpServer(router, muxRouter)
	mcpServer := mcpserver.New(classService, discoveryService)

	return &Container{
		RedisClient:                redisClient,
		RedisVocabularyDao:         redisVocabularyDao,
		VocabularyStore:            vocabularyStore,
		ClassSearchAPI:             classSearchApiClient,
		Normalizer:                 norm,
		ClassService:               classService,
		DiscoveryService:           discoveryService,
		VocabularyRefresherService: vocabularyRefresherService,
		ClassHandler:               classHandler,
		DiscoveryHandler:           discoveryHandler,
		MuxRouter:                  muxRouter,
		Router:                     router,
		ClassSearchHttpServer:      classSearchHttpServer,
		MCPServer:                  mcpServer,
	}
}
