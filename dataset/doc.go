// Package dataset loads the captured sample table and the device name lists
// that drive a response matrix measurement.
//
// A [Table] is an immutable set of equally long float64 columns addressed by
// header name. Tables are read from CSV where the first record holds the
// headers and each following record is one acquisition sample. Missing cells
// are kept as NaN and reported through a [QualityWarning]; structural
// problems fail the load with a [LoadError].
package dataset
