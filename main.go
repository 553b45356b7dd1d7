package main

import "github.com/hdn-james/50years-ulaw-sub000/internal/cli"

func main() {
	cli.Execute()
}
