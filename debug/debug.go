package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse     bool
	Normalize bool
	Patch     bool
	Eval      bool
	Match     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("QT_DEBUG_PARSE")
	d.Normalize = boolEnv("QT_DEBUG_NORMALIZE")
	d.Patch = boolEnv("QT_DEBUG_PATCH")
	d.Eval = boolEnv("QT_DEBUG_EVAL")
	d.Match = boolEnv("QT_DEBUG_MATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Normalize() bool {
	return d.Normalize
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}
func Match() bool {
	return d.Match
}
