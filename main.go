package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
)

func main() {
	// a .env file is optional when the variables are provided by the
	// environment itself (Docker, CI, etc.)
	_ = godotenv.Load()

	server, err := InitializeServer()
	if err != nil {
		log.Fatal(fmt.Sprintf("could not create server: %s", err))
	}

	err = server.Run(fmt.Sprintf(":%s", server.Port))
	if err != nil {
		log.Fatal(fmt.Sprintf("could not start server: %s", err))
	}
}
