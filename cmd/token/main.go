// Command token mints a dashboard session token signed with SECRET_KEY.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	config "github.com/maheshrc27/content-pipeline/configs"
	"github.com/maheshrc27/content-pipeline/pkg/utils"
)

func main() {
	name := flag.String("name", "editor", "operator name stored in the token")
	ttl := flag.Duration("ttl", 30*24*time.Hour, "token lifetime")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()
	if cfg.SecretKey == "" {
		log.Fatal("SECRET_KEY is not set, the dashboard does not require a token")
	}

	token, err := utils.GenerateToken(cfg.SecretKey, *name, *ttl)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}
	fmt.Println(token)
}
