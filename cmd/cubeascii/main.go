// Command cubeascii renders an interactive 3x3x3 cube as shaded ASCII art.
package main

import "github.com/SeamusWaldron/cubeascii/internal/cli"

func main() {
	cli.Execute()
}
