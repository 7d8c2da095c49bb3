package main

import "sales-insights/internal/cli"

func main() {
	cli.Execute()
}
