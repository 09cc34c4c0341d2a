package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Align bool
	Cache bool
	RPC   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Align = boolEnv("DOCDIFF_DEBUG_ALIGN")
	d.Cache = boolEnv("DOCDIFF_DEBUG_CACHE")
	d.RPC = boolEnv("DOCDIFF_DEBUG_RPC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Align() bool {
	return d.Align
}
func Cache() bool {
	return d.Cache
}
func RPC() bool {
	return d.RPC
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
