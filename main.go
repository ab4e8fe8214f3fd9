package main

import "github.com/seosites/seosites/backend/go-api/internal/cli"

func main() {
	cli.Execute()
}
