// Package spectrum provides the spectral primitives used by the response
// matrix measurement: a reusable forward DFT of real sequences, magnitude
// spectra, bin/frequency mapping and residual RMS.
//
// Frequencies follow the unit sample spacing convention: bin k of an N-point
// transform maps to k/N cycles per sample for k < ceil(N/2) and to (k-N)/N
// otherwise, so the upper half of the spectrum holds negative frequencies.
package spectrum
