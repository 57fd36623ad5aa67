// Package orchestrator wires every other package into the end-to-end
// run a DTA invocation performs: load settings and network, load or
// generate demand and columns, find user equilibrium, optionally run the
// mesoscopic simulation, then write whichever output files the
// settings' enable flags select.
//
// A single Handle struct owns every table for the lifetime of a run;
// its exported methods are the phase breakdown (ReadSettings,
// ReadNetwork, FindUE, RunSimulation, Output*), with columns either
// loaded from a previous run's columns.csv or generated from demand,
// never both.
package orchestrator
