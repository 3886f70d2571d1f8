//go:build reverbdebug

package buffer

const boundsChecks = true
