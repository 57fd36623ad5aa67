package iocsv

import (
	"encoding/csv"
	"io"
	"strings"

	"opendta/network"
)

// ReadNodes decodes node.csv: node_id, zone_id (optional), x_coord, y_coord.
func ReadNodes(r io.Reader) ([]network.NodeRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	h, err := readHeader(cr)
	if err != nil {
		return nil, err
	}

	var out []network.NodeRecord
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rr := row{h: h, fields: fields}
		id, err := rr.str("node_id")
		if err != nil {
			return nil, err
		}
		out = append(out, network.NodeRecord{
			ID:     id,
			ZoneID: rr.strOpt("zone_id", ""),
			X:      rr.floatOpt("x_coord", 0),
			Y:      rr.floatOpt("y_coord", 0),
		})
	}
	return out, nil
}

// ReadLinks decodes link.csv: link_id, from_node_id, to_node_id, length,
// lanes, free_speed, capacity, allowed_uses (comma-list or "all"), optional
// VDF_alpha/VDF_beta.
func ReadLinks(r io.Reader) ([]network.LinkRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	h, err := readHeader(cr)
	if err != nil {
		return nil, err
	}

	var out []network.LinkRecord
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rr := row{h: h, fields: fields}

		id, err := rr.str("link_id")
		if err != nil {
			return nil, err
		}
		from, err := rr.str("from_node_id")
		if err != nil {
			return nil, err
		}
		to, err := rr.str("to_node_id")
		if err != nil {
			return nil, err
		}
		length, err := rr.float("length")
		if err != nil {
			return nil, err
		}
		freeSpeed, err := rr.float("free_speed")
		if err != nil {
			return nil, err
		}
		capacity, err := rr.float("capacity")
		if err != nil {
			return nil, err
		}

		rec := network.LinkRecord{
			ID:          id,
			FromNodeID:  from,
			ToNodeID:    to,
			Length:      length,
			Lanes:       rr.intOpt("lanes", 1),
			FreeSpeed:   freeSpeed,
			Capacity:    capacity,
			AllowedUses: parseAllowedUses(rr.strOpt("allowed_uses", "all")),
		}
		if s := rr.strOpt("VDF_alpha", ""); s != "" {
			v := rr.floatOpt("VDF_alpha", 0)
			rec.AlphaBPR = &v
		}
		if s := rr.strOpt("VDF_beta", ""); s != "" {
			v := rr.floatOpt("VDF_beta", 0)
			rec.BetaBPR = &v
		}
		out = append(out, rec)
	}
	return out, nil
}

func parseAllowedUses(raw string) []string {
	if raw == "" {
		return []string{"all"}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// DemandRow is one decoded row of a demand.csv file: an OD zone pair and
// its volume. The demand period and agent type it belongs to come from
// settings.DemandFileRecord, not from the file itself.
type DemandRow struct {
	OriginZoneID string
	DestZoneID   string
	Volume       float64
}

// ReadDemand decodes a demand.csv file: o_zone_id, d_zone_id, volume.
func ReadDemand(r io.Reader) ([]DemandRow, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	h, err := readHeader(cr)
	if err != nil {
		return nil, err
	}

	var out []DemandRow
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rr := row{h: h, fields: fields}
		o, err := rr.str("o_zone_id")
		if err != nil {
			return nil, err
		}
		d, err := rr.str("d_zone_id")
		if err != nil {
			return nil, err
		}
		vol, err := rr.float("volume")
		if err != nil {
			return nil, err
		}
		out = append(out, DemandRow{OriginZoneID: o, DestZoneID: d, Volume: vol})
	}
	return out, nil
}
