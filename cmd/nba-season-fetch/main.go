package main

import (
	"github.com/pfrederiksen/nba-season-fetch/internal/cli"
)

func main() {
	cli.Execute()
}
