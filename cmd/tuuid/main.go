package main

import "github.com/Lzww0608/tuuid/internal/cli"

func main() {
	cli.Execute()
}
