package main

import "github.com/akyaiy/luci-ifctl/cmd"

func main() {
	cmd.Execute()
}
