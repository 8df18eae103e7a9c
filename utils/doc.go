// Package utils provides internal utility functions for the position logger.
//
// It contains time formatting helpers shared by the file sink and the health
// endpoint.
package utils
