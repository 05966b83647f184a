package main

import (
	cmd "github.com/NotACat1/WeatherTerminal/internal/cli"
)

func main() {
	cmd.Execute()
}
