package main

import "foodorder/cmd"

func main() {
	cmd.Execute()
}
