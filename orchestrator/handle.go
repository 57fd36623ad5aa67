package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"opendta/column"
	"opendta/iocsv"
	"opendta/metrics"
	"opendta/model"
	"opendta/network"
	"opendta/settings"
	"opendta/simulation"
	"opendta/ue"
)

// Handle owns every table a run operates on: the physical network, the
// agent-type and demand-period lookup tables, the OD demand matrix, the
// column pool, the decoded settings, and — once run — the simulation
// engine. Each exported method is one pipeline phase; RunAll strings
// them together in order.
type Handle struct {
	Settings *settings.Settings

	Net        *network.Network
	AgentTypes []model.AgentType
	Periods    []model.DemandPeriod
	Demand     map[model.ODKey]float64
	Pool       *column.Pool

	Engine *simulation.Engine

	periodIdx map[string]int
	agentIdx  map[string]int
}

// New returns an empty Handle. ReadSettings must be called before any
// other method.
func New() *Handle {
	return &Handle{}
}

// UsesExistingColumns reports the settings' uses_existing_columns flag.
func (h *Handle) UsesExistingColumns() bool {
	return h.Settings != nil && h.Settings.UsesExistingColumns
}

// EnablesSimulation reports the settings' simulation.enable flag.
func (h *Handle) EnablesSimulation() bool {
	return h.Settings != nil && h.Settings.Simulation.Enable
}

// EnablesOutput reports the settings' output.enable flag.
func (h *Handle) EnablesOutput() bool {
	return h.Settings != nil && h.Settings.Output.Enable
}

// ReadSettings decodes settings.yml from dir and builds the agent-type
// and demand-period lookup tables from it.
func (h *Handle) ReadSettings(dir string) error {
	s, err := settings.Load(filepath.Join(dir, "settings.yml"))
	if err != nil {
		return err
	}
	h.Settings = s

	h.AgentTypes = make([]model.AgentType, len(s.AgentTypes))
	h.agentIdx = make(map[string]int, len(s.AgentTypes))
	for i, rec := range s.AgentTypes {
		h.AgentTypes[i] = model.AgentType{
			Name: rec.Name, Index: i, VOT: rec.VOT, PCE: rec.PCE, FlowType: rec.FlowType,
		}
		h.agentIdx[rec.Name] = i
	}

	h.Periods = make([]model.DemandPeriod, len(s.DemandPeriods))
	h.periodIdx = make(map[string]int, len(s.DemandPeriods))
	for i, rec := range s.DemandPeriods {
		start, end, err := settings.ParseTimePeriod(rec.TimePeriod)
		if err != nil {
			return err
		}
		h.Periods[i] = model.DemandPeriod{Label: rec.Period, Index: i, StartMinute: start, EndMinute: end}
		h.periodIdx[rec.Period] = i
	}
	return nil
}

// ReadNetwork decodes node.csv and link.csv from dir and resolves
// agent-type masks and per-period link state. ReadSettings must run
// first. Connector synthesis is deferred to FinalizeNetwork so demand
// can still register zones that no node belongs to.
func (h *Handle) ReadNetwork(dir string) error {
	nodeFile, err := os.Open(filepath.Join(dir, "node.csv"))
	if err != nil {
		return err
	}
	defer nodeFile.Close()
	nodes, err := iocsv.ReadNodes(nodeFile)
	if err != nil {
		return err
	}

	linkFile, err := os.Open(filepath.Join(dir, "link.csv"))
	if err != nil {
		return err
	}
	defer linkFile.Close()
	links, err := iocsv.ReadLinks(linkFile)
	if err != nil {
		return err
	}

	net, err := network.NewFromRecords(nodes, links)
	if err != nil {
		return err
	}
	h.Net = net

	names := make([]string, len(h.AgentTypes))
	for i, at := range h.AgentTypes {
		names[i] = at.Name
	}
	if err := h.Net.ResolveAgentMasks(names); err != nil {
		return err
	}
	h.Net.AllocatePeriods(len(h.Periods))
	return nil
}

// FinalizeNetwork runs connector synthesis, once every zone id — whether
// declared by node.csv or only ever referenced by demand — is known.
func (h *Handle) FinalizeNetwork() error {
	return h.Net.Finalize()
}

// ReadDemands loads every settings.DemandFiles entry from dir and folds
// each row into the OD demand matrix, keyed by (origin zone, destination
// zone, period, agent type). Multiple files contributing to the same OD
// key accumulate by summation. Zones referenced by a demand file but not
// by node.csv are registered here, before FinalizeNetwork runs.
func (h *Handle) ReadDemands(dir string) error {
	if h.Demand == nil {
		h.Demand = make(map[model.ODKey]float64)
	}
	for _, df := range h.Settings.DemandFiles {
		pIdx, ok := h.periodIdx[df.Period]
		if !ok {
			return fmt.Errorf("%w: demand period %q", ErrUnknownReference, df.Period)
		}
		aIdx, ok := h.agentIdx[strings.ToLower(df.AgentType)]
		if !ok {
			return fmt.Errorf("%w: agent type %q", ErrUnknownReference, df.AgentType)
		}

		f, err := os.Open(filepath.Join(dir, df.FileName))
		if err != nil {
			return err
		}
		rows, err := iocsv.ReadDemand(f)
		f.Close()
		if err != nil {
			return err
		}

		for _, r := range rows {
			oZone := h.Net.AddZone(r.OriginZoneID)
			dZone := h.Net.AddZone(r.DestZoneID)
			key := model.ODKey{Origin: oZone, Destination: dZone, Period: pIdx, AgentType: aIdx}
			h.Demand[key] += r.Volume
		}
	}
	return nil
}

// LoadColumns decodes columns.csv from dir directly into the column
// pool, skipping column generation entirely (settings
// uses_existing_columns). FinalizeNetwork must already have run, since
// columns reference zone/node/link ids.
func (h *Handle) LoadColumns(dir string) error {
	f, err := os.Open(filepath.Join(dir, "columns.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	h.Pool = column.NewPool(len(h.Net.Zones))
	return iocsv.ReadColumns(f, h.Net, h.Periods, h.AgentTypes, h.Pool)
}

// FindUE runs the UE solver to completion using settings'
// assignment.column_generation_num / column_update_num. If Pool was
// already populated by LoadColumns, column generation iterations still
// run on top of the loaded pool (mixing loaded columns with further
// generation is allowed; it only skips the initial demand-driven
// bootstrap).
func (h *Handle) FindUE() error {
	cfg := ue.DefaultConfig()
	cfg.ColumnGenNum = h.Settings.Assignment.ColumnGenerationNum
	cfg.ColumnOptNum = h.Settings.Assignment.ColumnUpdateNum
	if h.Settings.Assignment.ThreadNums > 0 {
		cfg.ThreadNums = h.Settings.Assignment.ThreadNums
	}
	cfg.OnIterationDone = metrics.ColumnGenDuration.Observe

	solver := ue.NewSolver(h.Net, h.AgentTypes, h.Periods, h.Demand, cfg)
	if h.Pool != nil {
		solver.Pool = h.Pool
	}
	if err := solver.Run(context.Background()); err != nil {
		return err
	}
	h.Pool = solver.Pool
	return nil
}
