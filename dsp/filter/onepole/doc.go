// Package onepole provides first-order low-pass and high-pass filters
// designed with the bilinear transform.
package onepole
