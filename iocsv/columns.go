package iocsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"opendta/column"
	"opendta/model"
	"opendta/network"
)

var columnsHeader = []string{
	"o_zone_id", "d_zone_id", "period", "agent_type",
	"volume", "travel_time", "node_path", "link_path",
}

// WriteColumns emits one row per column across every OD key in pool:
// OD key, volume, travel time, node-id path, link-id path. Rows are
// written in pool.Keys() order, so re-reading the file and re-writing
// it reproduces byte-identical output.
func WriteColumns(w io.Writer, net *network.Network, periods []model.DemandPeriod, agentTypes []model.AgentType, pool *column.Pool) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columnsHeader); err != nil {
		return err
	}
	for _, key := range pool.Keys() {
		cv, _ := pool.Get(key)
		oZone := net.Zones[key.Origin].ID
		dZone := net.Zones[key.Destination].ID
		period := periods[key.Period].Label
		agentType := agentTypes[key.AgentType].Name

		for _, c := range cv.Columns {
			nodeIDs := make([]string, len(c.Nodes))
			for i, ni := range c.Nodes {
				nodeIDs[i] = net.Nodes[ni].ID
			}
			linkIDs := make([]string, len(c.Links))
			for i, li := range c.Links {
				linkIDs[i] = net.Links[li].ID
			}
			record := []string{
				oZone, dZone, period, agentType,
				strconv.FormatFloat(c.Volume, 'g', -1, 64),
				strconv.FormatFloat(c.TravelTime, 'g', -1, 64),
				strings.Join(nodeIDs, ";"),
				strings.Join(linkIDs, ";"),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadColumns decodes a columns.csv file written by WriteColumns back into
// pool, resolving zone/period/agent-type/node/link names against net,
// periods, and agentTypes. Each OD key's total demand Q is the sum of its
// rows' volumes. Used by the uses_existing_columns load path to skip
// column generation entirely.
func ReadColumns(r io.Reader, net *network.Network, periods []model.DemandPeriod, agentTypes []model.AgentType, pool *column.Pool) error {
	periodIdx := make(map[string]int, len(periods))
	for i, p := range periods {
		periodIdx[p.Label] = i
	}
	agentIdx := make(map[string]int, len(agentTypes))
	for i, a := range agentTypes {
		agentIdx[a.Name] = i
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	h, err := readHeader(cr)
	if err != nil {
		return err
	}

	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		rr := row{h: h, fields: fields}

		oZoneID, err := rr.str("o_zone_id")
		if err != nil {
			return err
		}
		dZoneID, err := rr.str("d_zone_id")
		if err != nil {
			return err
		}
		periodLabel, err := rr.str("period")
		if err != nil {
			return err
		}
		agentTypeName, err := rr.str("agent_type")
		if err != nil {
			return err
		}
		volume, err := rr.float("volume")
		if err != nil {
			return err
		}
		tt, err := rr.float("travel_time")
		if err != nil {
			return err
		}
		nodePath, _ := rr.str("node_path")
		linkPath, _ := rr.str("link_path")

		oZone, ok := net.ZoneIndexOf(oZoneID)
		if !ok {
			return fmt.Errorf("%w: unknown o_zone_id %q", ErrMalformedRow, oZoneID)
		}
		dZone, ok := net.ZoneIndexOf(dZoneID)
		if !ok {
			return fmt.Errorf("%w: unknown d_zone_id %q", ErrMalformedRow, dZoneID)
		}
		pIdx, ok := periodIdx[periodLabel]
		if !ok {
			return fmt.Errorf("%w: unknown period %q", ErrMalformedRow, periodLabel)
		}
		aIdx, ok := agentIdx[agentTypeName]
		if !ok {
			return fmt.Errorf("%w: unknown agent_type %q", ErrMalformedRow, agentTypeName)
		}

		nodes, err := resolveNodePath(net, nodePath)
		if err != nil {
			return err
		}
		links, err := resolveLinkPath(net, linkPath)
		if err != nil {
			return err
		}

		key := model.ODKey{Origin: oZone, Destination: dZone, Period: pIdx, AgentType: aIdx}
		cv := pool.GetOrCreate(key, 0)
		c, _ := cv.AddOrMerge(nodes, links)
		c.Volume = volume
		c.TravelTime = tt
		cv.Q += volume
	}
	return nil
}

func resolveNodePath(net *network.Network, s string) ([]network.NodeIndex, error) {
	if s == "" {
		return nil, nil
	}
	toks := strings.Split(s, ";")
	out := make([]network.NodeIndex, len(toks))
	for i, tok := range toks {
		n, ok := net.NodeByID(tok)
		if !ok {
			return nil, fmt.Errorf("%w: unknown node_id %q in node_path", ErrMalformedRow, tok)
		}
		out[i] = n.Index
	}
	return out, nil
}

func resolveLinkPath(net *network.Network, s string) ([]network.LinkIndex, error) {
	if s == "" {
		return nil, nil
	}
	toks := strings.Split(s, ";")
	out := make([]network.LinkIndex, len(toks))
	for i, tok := range toks {
		l, ok := net.LinkByID(tok)
		if !ok {
			return nil, fmt.Errorf("%w: unknown link_id %q in link_path", ErrMalformedRow, tok)
		}
		out[i] = l.Index
	}
	return out, nil
}
