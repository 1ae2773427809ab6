// Package server serves translations over HTTP.
package server
