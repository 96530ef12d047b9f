package main

import "flashdeck/internal/app"

func main() {
	app.Run()
}
