package main

import (
	"lyrics-core/internal/app"
	"lyrics-core/internal/config"
)

func main() {
	cfg := config.Load()
	app := app.New(cfg)
	app.Run()
}
