// Package match pairs dish records with detected text regions.
//
// Score is the pure similarity function; All and Exclusive are the two
// matching policies built on it. All is the default: each dish independently
// takes its best-scoring region above the threshold, and nothing stops two
// dishes from selecting the same region. Exclusive is the stricter
// alternative for callers that want each region claimed at most once.
//
// A dish without a qualifying region is silently absent from the output.
// That is policy, not failure: menus routinely contain dishes the OCR pass
// could not read.
package match
