// Package model holds the small, load-once reference tables shared by
// every downstream package: AgentType, DemandPeriod, and the OD Key that
// indexes the column pool. Tables are built once by the loader and
// referenced everywhere else by index, never by pointer or name, after
// load.
package model
