package main

import "github.com/nikhilmn/fintrack/cmd"

func main() {
	cmd.Execute()
}
