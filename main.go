package main

import "github.com/jsphweid/midirect/cmd"

func main() {
	cmd.Execute()
}
