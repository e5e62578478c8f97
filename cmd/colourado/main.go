package main

import (
	"math/rand"
	"time"

	"github.com/Rafaeltheraven/colourado-iterator/cmd/colourado/commands"
)

func main() {
	rand.Seed(time.Now().UnixNano())
	commands.Execute()
}
