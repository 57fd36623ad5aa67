package metrics

import (
	"io"

	"github.com/prometheus/common/expfmt"
)

// Dump writes every registered metric in Prometheus's text exposition
// format to w (the metrics.prom output file, an optional diagnostic
// artifact of a run).
func Dump(w io.Writer) error {
	families, err := Registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
