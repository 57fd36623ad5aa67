// Package output projects solved state into the three result shapes a
// DTA run reports: per-(link, period) UE performance, per-(link,
// time-slice) DTA performance aggregated from a simulation.Recording,
// and per-agent trajectories. It produces plain row structs; writing
// them to CSV is package iocsv's job.
package output
