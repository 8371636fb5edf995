package main

import (
	"github.com/rs/zerolog/log"

	"iq-home/quickquote/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatal().Err(err).Msg("quickquote")
	}
}
