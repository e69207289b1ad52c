// Package errors provides the structured, coded errors raised by reflow.
//
// Every error carries a code from a registry, a category and a short
// message. Invariant and misuse errors are raised with panic because they
// indicate a programming error; config and CLI errors are returned.
//
// # Categories
//
//   - invariant: internal consistency was violated (index out of range,
//     host child not found)
//   - misuse: the API was called with arguments it cannot serve
//   - diagnostics: violations detected only when diagnostics are enabled
//   - config: reflow.json could not be loaded or is invalid
//   - cli: bad command line input
//
// # Usage
//
//	err := errors.New("R001").
//	    WithField("index", 7).
//	    WithField("length", 3)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR R001: Index out of range
//	//
//	//   index:  7
//	//   length: 3
//	//
//	//   Positions must lie within [-1, length].
//
// Errors recovered from a panic can be matched with the standard library:
//
//	var re *errors.Error
//	if stderrors.As(err, &re) && re.Code == "R001" { ... }
package errors
