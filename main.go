package main

import "github.com/ValentinKolb/ooKV/cmd"

func main() {
	cmd.Execute()
}
