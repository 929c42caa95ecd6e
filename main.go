package main

import "github.com/bradford-hamilton/glitchbeat/cmd"

func main() {
	cmd.Execute()
}
