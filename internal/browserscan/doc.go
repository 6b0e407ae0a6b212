// Package browserscan measures the disk footprint of browser data
// directories.
//
// It walks each configured category root with fastwalk, sums file sizes,
// and emits incremental progress events so that console and HTTP reporters
// can render the scan live.
package browserscan
