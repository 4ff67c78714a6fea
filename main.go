/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/lwaldron/repath/cmd"

func main() {
	cmd.Execute()
}
