package main

import (
	"github.com/humanbelnik/rottenpotatoes/internal/app"
	"github.com/humanbelnik/rottenpotatoes/internal/config"
)

func main() {
	app.Go(config.Load())
}
