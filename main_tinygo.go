//go:build tinygo

package main

import (
	"sierpinski/app"
	"sierpinski/hal"
	"sierpinski/internal/log"
)

func main() {
	h := hal.New()
	log.SetSink(hal.Writer(h.Logger()))
	app.Run(h)
}
