package main

import (
	"fmt"
	"log"
	"os"

	"github.com/popkit/qrsvg"
)

func main() {
	code, err := qrsvg.New("https://example.com")
	if err != nil {
		log.Fatal(err.Error())
	}

	code.ModuleSize = 8

	writeToFile("qr.svg", code.SVG(false))
	writeToFile("qr-dark.svg", code.SVG(true))

	fmt.Printf("version=%d mask=%d\n", code.VersionNumber, code.Mask)
	fmt.Print(code.String())
}

func writeToFile(fileName string, data []byte) {
	if err := os.WriteFile(fileName, data, os.FileMode(0644)); err != nil {
		log.Fatal(err.Error())
	}
}
