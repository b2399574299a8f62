// Package errors provides coded, user-facing errors for the hxattr CLI and
// preview server.
//
// Each code is registered with a category, a short message and, where it
// helps, a detail and a hint:
//
//   - E100-E119: configuration files
//   - E120-E139: command line arguments
//   - E140-E159: the preview server
//
// # Usage
//
//	err := errors.New(errors.ErrConfigPort).
//	    WithLocation("hxattr.yaml", 3, 0).
//	    WithSuggestion("Use a port between 1 and 65535")
//
//	fmt.Println(err.Format())
//	// ERROR E102: Invalid server port
//	//
//	//   hxattr.yaml:3
//	//
//	//        1 │ server:
//	//        2 │   host: localhost
//	//   →    3 │   port: 70000
//	//
//	//   server.port must be between 1 and 65535.
//	//
//	//   Hint: Use a port between 1 and 65535
//
// HxError implements Unwrap, so errors.Is and errors.As see through it.
package errors
