// Package menu holds the dish records the annotation engine consumes and the
// margin tier classification that drives badge colors and labels.
package menu
