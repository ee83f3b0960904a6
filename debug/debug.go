package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Feed   bool
	Indent bool
	Embed  bool
	LSP    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Feed = boolEnv("TDOC_DEBUG_FEED")
	d.Indent = boolEnv("TDOC_DEBUG_INDENT")
	d.Embed = boolEnv("TDOC_DEBUG_EMBED")
	d.LSP = boolEnv("TDOC_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Feed() bool {
	return d.Feed
}
func Indent() bool {
	return d.Indent
}
func Embed() bool {
	return d.Embed
}
func LSP() bool {
	return d.LSP
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
