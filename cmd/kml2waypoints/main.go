package main

import "github.com/arctanb/srtm/internal/cli"

func main() {
	cli.Execute()
}
