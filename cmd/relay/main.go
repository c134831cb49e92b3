package main

import (
	"log"
	"os"

	"github.com/agentbridge/relay"
)

func main() {
	if err := relay.Run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
