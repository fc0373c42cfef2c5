package main

import "github.com/sirapobp/regtable/internal/cli"

func main() {
	cli.Execute()
}
