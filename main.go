package main

import "github.com/nexushr/hr-management/cmd"

func main() {
	cmd.Execute()
}
