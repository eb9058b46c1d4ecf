package main

import (
	stdLog "log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", err)
	}
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
