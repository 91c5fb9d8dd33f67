package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Match     bool
	Reconcile bool
	RPC       bool
}

var d *debug

func init() {
	d = &debug{}
	d.Match = boolEnv("TW_DEBUG_MATCH")
	d.Reconcile = boolEnv("TW_DEBUG_RECONCILE")
	d.RPC = boolEnv("TW_DEBUG_RPC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Match() bool {
	return d.Match
}
func Reconcile() bool {
	return d.Reconcile
}
func RPC() bool {
	return d.RPC
}
