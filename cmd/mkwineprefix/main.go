package main

import "github.com/Tatsh/mkwineprefix/internal/infrastructure/cli"

func main() {
	cli.Execute()
}
