// Package orm estimates an orbit response matrix from simultaneously
// recorded corrector (actuator) and BPM (sensor) excitation signals.
//
// One analysis run walks five stages, each a pure function of its inputs and
// the sample table:
//
//  1. [ResolveDevices] maps raw device names onto "<name>(R)" columns, drops
//     dead (all-zero) sensors and splits the rest into horizontal and
//     vertical planes.
//  2. [ExtractPeak] finds the dominant non-DC bin of a signal.
//  3. [EstimateErrors] turns what remains of each spectrum after removing the
//     excitation tones into an RMS noise figure per device.
//  4. [BuildResponseMatrix] divides the sensor magnitude at each actuator's
//     frequency by that actuator's peak magnitude.
//  5. [PropagateErrors] carries the noise figures through R = Ab/Ac to a
//     per-entry uncertainty.
//
// [Analyzer.Run] executes all stages with every device transformed exactly
// once and returns the outputs as a [Result]. Nothing is cached between runs.
package orm
