package main

import (
	"github.com/ivolee/stockdash/internal/cli"
)

func main() {
	cli.Run()
}
