package main

import "github.com/mouse-blink/junitmig/cmd"

func main() {
	cmd.Execute()
}
