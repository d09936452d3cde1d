// Package config provides configuration parsing for vinspect.
//
// The configuration is stored in vinspect.yaml in the working directory.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	adapter:
//	  includeKeyProp: true
//	  includeRefProp: false
//	render:
//	  stash: symbol        # property (default) or symbol
//	  sanitizeRawHTML: true
//	output:
//	  format: yaml         # text (default) or yaml
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	a := adapter.New(cfg.AdapterOptions()...)
package config
