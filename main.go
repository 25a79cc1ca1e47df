package main

import "pkgscope/internal/pkgscope"

func main() {
	pkgscope.Main()
}
