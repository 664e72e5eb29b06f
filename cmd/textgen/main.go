package main

import (
	textgen "github.com/hhkbp2/textgen"
)

func main() {
	textgen.Main()
}
