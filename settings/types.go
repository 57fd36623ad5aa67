package settings

// Assignment holds the UE solver's outer-iteration counts and
// parallelism cap.
type Assignment struct {
	ColumnGenerationNum int `mapstructure:"column_generation_num"`
	ColumnUpdateNum     int `mapstructure:"column_update_num"`

	// ThreadNums sizes the parallel worker pool over origin zones during
	// TDSP; 0 (the YAML-absent zero value) means fully serial.
	ThreadNums int `mapstructure:"thread_nums"`
}

// Simulation holds the mesoscopic simulation's enable flag and knobs.
type Simulation struct {
	Enable             bool    `mapstructure:"enable"`
	ResolutionInSecond float64 `mapstructure:"resolution_in_second"`
	DurationInMinute   float64 `mapstructure:"duration_in_minute"`
	TrafficFlowModel   string  `mapstructure:"traffic_flow_model"`
}

// Output holds the per-result-file enable flags; each output CSV is
// written only when its flag is set and the phase that produces its
// data actually ran.
type Output struct {
	Enable                 bool `mapstructure:"enable"`
	SaveLinkPerformanceDTA bool `mapstructure:"save_link_performance_dta"`
	SaveLinkPerformanceUE  bool `mapstructure:"save_link_performance_ue"`
	SaveTrajectory         bool `mapstructure:"save_trajectory"`
	SaveUEPathFlow         bool `mapstructure:"save_ue_path_flow"`
}

// DemandPeriodRecord is one demand_periods[*] entry: a period label and
// its "HHMM_HHMM" time-of-day window.
type DemandPeriodRecord struct {
	Period     string `mapstructure:"period"`
	TimePeriod string `mapstructure:"time_period"`
}

// AgentTypeRecord is one agent_types[*] entry.
type AgentTypeRecord struct {
	Name     string  `mapstructure:"name"`
	VOT      float64 `mapstructure:"vot"`
	PCE      float64 `mapstructure:"pce"`
	FlowType bool    `mapstructure:"flow_type"`
}

// DemandFileRecord is one demand_files[*] entry, tying a demand.csv file
// to the demand period and agent type it populates.
type DemandFileRecord struct {
	FileName  string `mapstructure:"file_name"`
	Period    string `mapstructure:"period"`
	AgentType string `mapstructure:"agent_type"`
}

// Settings is the fully decoded settings file.
type Settings struct {
	UsesExistingColumns bool `mapstructure:"uses_existing_columns"`

	Assignment Assignment `mapstructure:"assignment"`
	Simulation Simulation `mapstructure:"simulation"`
	Output     Output     `mapstructure:"output"`

	DemandPeriods []DemandPeriodRecord `mapstructure:"demand_periods"`
	AgentTypes    []AgentTypeRecord    `mapstructure:"agent_types"`
	DemandFiles   []DemandFileRecord   `mapstructure:"demand_files"`
}
