// souschef is an offline recipe manager and cooking companion.
//
// Usage:
//
//	souschef [command]
package main

import "github.com/joho/godotenv"

func main() {
	_ = godotenv.Load()
	Execute()
}
