//go:build tinygo

package main

import (
	"nanoux/app"
	"nanoux/hal"
)

func main() {
	app.Run(hal.New())
}
