// Command hcz compresses and decompresses files with a Huffman coding tree.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hcz:", err)
		os.Exit(1)
	}
}
