package main

import "pkgdetect/internal/cli"

func main() {
	cli.Execute()
}
