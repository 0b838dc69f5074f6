package main

import "github.com/wasabi0522/zprs/cmd"

func main() {
	cmd.Execute()
}
