// Package config assembles the service configuration from defaults, an
// optional .env file, an optional YAML file and the environment.
//
// Every package owns its Config type. Its yaml tags name the YAML keys, nested
// under the section names of Config, and its env tags name the environment
// variables:
//
//	# config.yaml, selected with CONFIG_FILE=config.yaml
//	planner:
//	  llm_enabled: true
//	  timeout: 8s
//	api:
//	  max_limit: 200
//
//	AI_LLM_ENABLED=false AI_MAX_LIMIT=50 ./inventory-query
//
// Environment variables override the file. Some variables feed more than one
// section, e.g. AI_MAX_LIMIT sets both planner.max_limit and api.max_limit.
package config
