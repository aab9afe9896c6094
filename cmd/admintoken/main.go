package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hasnainyaqub/Microservice-App/internal/auth"

	"github.com/joho/godotenv"
)

// Mints an ops token for the /admin routes. Requires JWT_SECRET.
func main() {
	subject := flag.String("subject", "ops", "token subject")
	role := flag.String("role", "ADMIN", "token role")
	flag.Parse()

	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	token, err := auth.GenerateToken(*subject, *role)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(token)
}
