// Package config provides configuration parsing for the reflow CLI.
//
// The configuration is stored in reflow.json. This package handles
// loading, saving, and validating configuration. Every field is
// optional; missing fields take the defaults below.
//
// # Configuration File Structure
//
//	{
//	  "bench": {
//	    "sizes": [100, 1000],
//	    "iterations": 50,
//	    "scenarios": ["append", "reverse", "shuffle", "swap", "clear"],
//	    "seed": 1
//	  },
//	  "render": {
//	    "diagnostics": false,
//	    "logLevel": "info"
//	  },
//	  "metrics": {
//	    "namespace": "reflow"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Sizes:", cfg.Bench.Sizes)
package config
