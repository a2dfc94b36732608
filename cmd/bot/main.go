package main

import (
	"casino_bot/internal/app"
	"log"
)

func main() {
	err := app.NewApp().Run()
	if err != nil {
		log.Fatal(err)
	}
}
