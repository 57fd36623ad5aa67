package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Load decodes the YAML settings file at path. SetConfigFile gets the
// full path rather than a base name plus AddConfigPath: viper resolves
// an explicit SetConfigFile directly and never falls back to
// AddConfigPath, so the base-name form silently ignores the directory
// whenever the caller's working directory differs from it.
func Load(path string) (*Settings, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")

	if err := vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	s := &Settings{}
	if err := vp.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	for i := range s.AgentTypes {
		s.AgentTypes[i].Name = strings.ToLower(s.AgentTypes[i].Name)
	}
	for i := range s.DemandFiles {
		s.DemandFiles[i].AgentType = strings.ToLower(s.DemandFiles[i].AgentType)
	}
	s.Simulation.TrafficFlowModel = strings.ToLower(s.Simulation.TrafficFlowModel)

	return s, nil
}

// ParseTimePeriod parses a "HHMM_HHMM" token into start/end
// minute-of-day values. Returns ErrInvalidConfiguration on any
// malformed token.
func ParseTimePeriod(token string) (startMinute, endMinute int, err error) {
	parts := strings.Split(token, "_")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: time_period %q", ErrInvalidConfiguration, token)
	}
	start, err1 := parseHHMM(parts[0])
	end, err2 := parseHHMM(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, fmt.Errorf("%w: time_period %q", ErrInvalidConfiguration, token)
	}
	if start < 0 || end > 1440 || start >= end {
		return 0, 0, fmt.Errorf("%w: time_period %q out of range", ErrInvalidConfiguration, token)
	}
	return start, end, nil
}

func parseHHMM(s string) (int, error) {
	if len(s) != 4 {
		return 0, fmt.Errorf("%w: %q is not HHMM", ErrInvalidConfiguration, s)
	}
	hh, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0, err
	}
	mm, err := strconv.Atoi(s[2:])
	if err != nil {
		return 0, err
	}
	return hh*60 + mm, nil
}
