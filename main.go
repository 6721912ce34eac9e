package main

import "github.com/yeremiapane/ecommerce-api/cmd"

func main() {
	cmd.Execute()
}
