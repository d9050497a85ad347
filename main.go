package main

import "order-management/cmd"

func main() {
	cmd.Execute()
}
