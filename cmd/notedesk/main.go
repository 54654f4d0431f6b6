package main

import "fmt"

func main() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
	}
}
