// Package experiment runs repeated percolation trials over one network.
//
// A Runner gives each trial its own Process, built by a factory, and its own
// random source seeded from the Runner's base seed plus the trial index, so a
// batch is reproducible whatever the worker count. Trials run in parallel
// under an errgroup limit; the first failing trial cancels the rest.
//
// Summarise folds the trials' samples into one Point per (depth, context, p),
// giving the mean and largest GCC observed there.
package experiment
