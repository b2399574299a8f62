// Package config loads the hxattr configuration used by the CLI and the
// preview server.
//
// The configuration lives in hxattr.json (comments and trailing commas are
// allowed) or hxattr.yaml. Missing fields get defaults; a missing file means
// all defaults.
//
// # Configuration File Structure
//
//	{
//	  "server": {"host": "localhost", "port": 7331, "shutdownTimeout": "5s"},
//	  "htmx": {"scriptURL": "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"},
//	  "metrics": {"enabled": true, "namespace": "hxattr", "path": "/metrics"},
//	  "tracing": {"enabled": false, "tracerName": "hxattr"},
//	  "websocket": {"readBufferSize": 1024, "writeBufferSize": 1024, "maxMessageSize": 4096, "history": 20},
//	  "log": {"level": "info", "format": "text"}
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//	fmt.Println("Listening on", cfg.URL())
package config
