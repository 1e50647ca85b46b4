package main

import (
	"fmt"
	"log"

	"class-search-server/config"
	"class-search-server/di"
	"class-search-server/mcpserver"
	services "class-search-server/service"
)

func main() {
	config.LoadDotEnv()

	container := di.NewContainer(config.Env())

	fmt.Println("warm-starting vocabulary!")
	if err := container.VocabularyRefresherService.WarmStartFromCache(); err != nil {
		log.Printf("[MAIN] Vocabulary warm start failed: %v", err)
	}

	fmt.Println("refreshing vocabulary!")
	if err := container.VocabularyRefresherService.RefreshVocabularyData(); err != nil {
		log.Printf("[MAIN] Vocabulary refresh failed: %v", err)
	}
	fmt.Println("starting periodic job!")
	container.VocabularyRefresherService.StartPeriodicJob(services.RefreshInterval())

	if config.ServerMode() == "mcp" {
		fmt.Println("starting mcp server!")
		if err := mcpserver.ServeStdio(container.MCPServer); err != nil {
			log.Fatalf("[MAIN] MCP server exited: %v", err)
		}
		return
	}

	fmt.Println("starting server!")
	container.ClassSearchHttpServer.Start()
	fmt.Println("server exited!")
}
