package main

import "github.com/tjx666/abracadabra/cmd"

func main() {
	cmd.Execute()
}
