//go:build tools

package rendezvous

// Pin the version of staticcheck used to check this module.
import _ "honnef.co/go/tools/cmd/staticcheck"
