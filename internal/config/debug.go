package config

import (
	"os"
	"strconv"
)

// IsDebug reports whether DOCBOT_DEBUG holds a true boolean ("1", "true").
func IsDebug() bool {
	v, _ := strconv.ParseBool(os.Getenv("DOCBOT_DEBUG"))
	return v
}
