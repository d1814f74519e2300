package main

import "github.com/rechati/decomment/cmd"

func main() {
	cmd.Execute()
}
