/*
Package config loads kernel configuration from YAML or JSON.

# File Loading

	cfg, err := config.FromFile("multicore.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	cores := facade.New(cfg.Options(nil)...)
	for _, key := range cfg.Cores {
	    cores.Facade(key)
	}

A file looks like:

	log_level: debug
	log_format: json
	metrics: true
	tracing: true
	cores: [shell, editor]

Missing keys keep their Default values. Unknown keys are an error.

# Observability

metrics and tracing switch the kernel from no-op recorders to the
OpenTelemetry implementations in package observability. Both use the global
providers, so install them before calling Options.
*/
package config
