package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("starting")
	os.Exit(1) // want "avoid direct os.Exit call in main function of main package"
}

func helper() {
	// Вне функции main вызов допустим
	os.Exit(2)
}
