package main

import (
	"github.com/dmitrijs2005/thesisvault/internal/cli"
	"github.com/dmitrijs2005/thesisvault/internal/config"
)

func main() {
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)
	cli.Execute(app)
}
