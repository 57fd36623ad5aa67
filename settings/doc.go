// Package settings decodes the run's structured key-value settings
// file with spf13/viper: a fresh viper.New() per load, SetConfigFile,
// SetConfigType, ReadInConfig, then Unmarshal into plain structs.
package settings
