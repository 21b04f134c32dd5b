/*
Package config provides configuration loading for the meridian toolkit.

Configuration is a single YAML file with sections for logging, parsing
policy, the watch service, and the parse registry. Loading applies defaults,
then optional MERIDIAN_* environment overrides, then validates the result:

	cfg, err := config.LoadConfig("meridian.yaml")
	if err != nil {
		log.Fatal(err)
	}

Environment variables follow MERIDIAN_SECTION_FIELD, e.g.
MERIDIAN_WATCH_PATH or MERIDIAN_LOGGING_LEVEL, and always win over the file.
*/
package config
